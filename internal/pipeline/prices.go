package pipeline

import (
	"fmt"

	"github.com/theirongolddev/guestlist/internal/model"
)

// PriceSummer produces a formatted price total for contacts, optionally
// restricted to one tag (tag == "" means all contacts).
type PriceSummer interface {
	SumPrices(contacts []model.Contact, tag string) (string, error)
}

// PriceTotaller sums the stored price of every matching contact.
type PriceTotaller struct {
	Currency string // symbol prefixed to amounts, "$" when empty
}

// SumPrices implements PriceSummer.
func (p PriceTotaller) SumPrices(contacts []model.Contact, tag string) (string, error) {
	total, err := TotalPrice(FilterByTag(contacts, tag))
	if err != nil {
		return "", err
	}

	currency := p.Currency
	if currency == "" {
		currency = "$"
	}
	if tag == "" {
		return fmt.Sprintf("Total price of all contacts: %s%s", currency, total), nil
	}
	return fmt.Sprintf("Total price of contacts tagged %s: %s%s", tag, currency, total), nil
}

// TotalPrice adds up the prices of contacts. The first unparseable price
// aborts the sum.
func TotalPrice(contacts []model.Contact) (model.Money, error) {
	var total model.Money
	for _, c := range contacts {
		m, err := model.ParsePrice(c.Price)
		if err != nil {
			return model.Money{}, fmt.Errorf("price of %s: %w", c.Name, err)
		}
		total, err = total.CheckedAdd(m)
		if err != nil {
			return model.Money{}, fmt.Errorf("adding price of %s: %w", c.Name, err)
		}
	}
	return total, nil
}

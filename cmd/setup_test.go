package cmd

import (
	"testing"

	"github.com/theirongolddev/guestlist/internal/config"
	"github.com/theirongolddev/guestlist/internal/source"
)

func TestSetupSeed(t *testing.T) {
	saved := flagFile
	t.Cleanup(func() { flagFile = saved })
	flagFile = source.DefaultPath

	t.Run("unset data file stays empty", func(t *testing.T) {
		t.Setenv("GUESTLIST_DATA_FILE", "")
		_, dataFile := setupSeed(config.DefaultConfig())
		if dataFile != "" {
			t.Errorf("dataFile = %q, want empty", dataFile)
		}
	})

	t.Run("configured data file", func(t *testing.T) {
		t.Setenv("GUESTLIST_DATA_FILE", "")
		c := config.DefaultConfig()
		c.General.DataFile = "/srv/book.json"
		next, dataFile := setupSeed(c)
		if dataFile != "/srv/book.json" {
			t.Errorf("dataFile = %q, want /srv/book.json", dataFile)
		}
		if next != c {
			t.Errorf("setupSeed changed the config: %+v", next)
		}
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("GUESTLIST_DATA_FILE", "/tmp/env.json")
		_, dataFile := setupSeed(config.DefaultConfig())
		if dataFile != "/tmp/env.json" {
			t.Errorf("dataFile = %q, want /tmp/env.json", dataFile)
		}
	})
}

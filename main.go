package main

import "github.com/theirongolddev/guestlist/cmd"

func main() {
	cmd.Execute()
}

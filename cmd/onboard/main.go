package main

import (
	"os"

	"github.com/Umidjon1990/tolovnazorat-bot/cmd/onboard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

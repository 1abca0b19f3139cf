package main

import (
	"os"

	"github.com/SscSPs/contabilidad_app/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Same .env the server reads, so opening balances and JWT_SECRET agree.
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

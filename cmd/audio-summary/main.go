package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/audio-summary-service/internal/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: no .env file loaded, using process environment")
	}

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

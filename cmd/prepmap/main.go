package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/amishk599/prepmap/internal/model"
)

func main() {
	// .env is optional; a missing file is not worth mentioning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not read .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, model.ErrMissingCredential) {
			fmt.Fprintln(os.Stderr, "hint: export GEMINI_API_KEY, set ai.api_key, or pass --offline")
		}
		os.Exit(1)
	}
}

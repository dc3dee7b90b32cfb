package main

import (
	"fmt"
	"os"

	"github.com/Dorantes98/movie-info-search/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return ui.NewApp().Execute()
}

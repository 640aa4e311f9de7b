package main

import (
	"fmt"
	"os"

	_ "settle/internal/sims/seating"
	_ "settle/internal/sims/tiles"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

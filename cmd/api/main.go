package main

import (
	"os"

	_ "github.com/jhoicas/client-api/docs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

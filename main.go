package main

import (
	"log"
	"os"

	"github.com/bacheca-dev/bacheca/cmd"
	"github.com/bacheca-dev/bacheca/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

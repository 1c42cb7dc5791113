package main

import (
	"log"

	"github.com/monginis/export-api/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		log.Fatalf("error while running the server %v", err)
	}
}

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/juju-prompt/config"
	"github.com/grovetools/juju-prompt/juju"
)

func main() {
	schemaBytes, err := config.GenerateSchema("juju", &juju.Config{})
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	// Define the output directory and ensure it exists.
	outputDir := "schema/definitions"
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	outputPath := filepath.Join(outputDir, "juju.schema.json")
	if err := os.WriteFile(outputPath, append(schemaBytes, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated juju schema at %s", outputPath)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/diagscope/diagscope/internal/index"
	"github.com/diagscope/diagscope/pkg/schema"
)

func main() {
	var (
		outputDir = flag.String("output", "docs", "Output directory for generated schemas")
	)
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	generator := schema.NewGenerator()

	schemaJSON, err := generator.GenerateJSONSchema(index.IndexFile{})
	if err != nil {
		log.Fatalf("Failed to generate schema for IndexFile: %v", err)
	}

	jsonFile := filepath.Join(*outputDir, "index-file.schema.json")
	if err := os.WriteFile(jsonFile, []byte(schemaJSON), 0644); err != nil {
		log.Fatalf("Failed to write JSON schema: %v", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", jsonFile)

	yamlFile := filepath.Join(*outputDir, "index-example.yaml")
	if err := os.WriteFile(yamlFile, []byte(exampleIndexYAML()), 0644); err != nil {
		log.Fatalf("Failed to write YAML example: %v", err)
	}

	fmt.Printf("Generated YAML example: %s\n", yamlFile)
}

func exampleIndexYAML() string {
	return `# Diagnostic index example
# A publishing run emits one of these per catalog; the API server and the
# filter CLI load it as-is.

name: "cmip6-historical-diagnostics"
generated_at: "2026-08-01T12:00:00Z"
diagnostics:
  - id: "7d5e0f46-9c3b-4a1d-8b6e-2f1a3c5d7e9f"
    plot: "plots/tas_global_mean.png"
    caption: "Global mean near-surface air temperature, 1850-2014"
    facets:
      title: "Global Mean Temperature"
      variable: "tas"
      model: "CESM2"
      experiment: "historical"
      realm: "atmos"
  - id: "3b9c1d27-5e8f-4a6b-9c0d-1e2f3a4b5c6d"
    plot: "plots/pr_seasonal_bias.png"
    caption: "Precipitation bias against GPCP, DJF mean"
    facets:
      title: "Precipitation Seasonal Bias"
      variable: "pr"
      model: "CESM2"
      experiment: "historical"
      season: "DJF"
      reference: "GPCP"
`
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	catalogPath := flag.String("catalog", "", "Path to catalog.yaml")
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	flag.Parse()

	if *catalogPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: step-catgen -catalog <path> -output <dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*catalogPath, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(catalogPath, outputDir string) error {
	cat, err := LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	outputs := []struct {
		file string
		gen  func(*RawCatalog) (string, error)
	}{
		{"commands_gen.go", GenerateCommands},
		{"responses_gen.go", GenerateResponses},
	}
	for _, o := range outputs {
		code, err := o.gen(cat)
		if err != nil {
			return fmt.Errorf("generating %s: %w", o.file, err)
		}
		outPath := filepath.Join(outputDir, o.file)
		if err := writeFormatted(outPath, code); err != nil {
			return fmt.Errorf("writing %s: %w", o.file, err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

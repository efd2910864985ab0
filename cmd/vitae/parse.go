package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/vitae"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a résumé into structured JSON",
	Long:  "Parse a résumé document and print the structured result as JSON, or write it to a file with --out.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var (
	parseOutputFile  string
	parsePhoneRegion string
	parseOCRLanguage string
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parsePhoneRegion, "phone-region", "US", "Region for phone number formatting")
	parseCmd.Flags().StringVar(&parseOCRLanguage, "ocr-language", "", "Tesseract language for scanned documents")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	p := vitae.Open(args[0]).WithPhoneRegion(parsePhoneRegion)
	if parseOCRLanguage != "" {
		p = p.WithOCR(parseOCRLanguage)
	}

	resume, err := p.Parse()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/vitae"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report which parser capabilities are available",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	setup := vitae.CheckSetup()

	fmt.Printf("PDF engine:       %s\n", setup.Engine)
	fmt.Printf("Formats:          %s\n", strings.Join(setup.Formats, ", "))
	fmt.Printf("OCR:              %s\n", yesNo(setup.OCR))
	fmt.Printf("pdftotext:        %s\n", yesNo(setup.Pdftotext))
	fmt.Printf("Phone formatting: %s\n", yesNo(setup.PhoneFormatting))

	if !setup.OCR {
		fmt.Println("\nScanned-image support is off. Rebuild with -tags ocr to enable it.")
	}
	return nil
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

// Package commands contains the CLI commands registered on the PocketBase
// root command.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"elik/config"
	"elik/services"
)

// NewQuoteCommand returns the `quote` command. It reads a calculation as
// JSON (a file or "-" for stdin), prints the summary and writes the export
// document into the output directory.
func NewQuoteCommand(cfg *config.Config) *cobra.Command {
	var (
		input  string
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a calculation file and export it as a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := readCalculation(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			if err := calc.ValidateForExport(); err != nil {
				return fmt.Errorf("quote: %w", err)
			}

			opts := services.RenderOptions{
				Title:      cfg.DocumentTitle,
				FilePrefix: cfg.FilePrefix,
				Format:     format,
				Now:        time.Now(),
			}
			doc, data, err := services.Export(calc, opts)
			if err != nil {
				return fmt.Errorf("quote: %w", err)
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("quote: create output dir: %w", err)
			}
			path := filepath.Join(outDir, doc.Filename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("quote: write %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Celkem bez DPH: %s\n", services.FormatCZK(doc.Summary.PreTaxTotal))
			fmt.Fprintf(out, "DPH %d%%:       %s\n", services.VATPercent, services.FormatCZK(doc.Summary.Tax))
			fmt.Fprintf(out, "Celkem s DPH:   %s\n", services.FormatCZK(doc.Summary.TaxInclusiveTotal))
			fmt.Fprintf(out, "Uloženo: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", `calculation JSON file ("-" reads stdin)`)
	cmd.Flags().StringVarP(&format, "format", "f", services.FormatPDF, "export format: pdf, xlsx or txt")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")

	return cmd
}

func readCalculation(stdin io.Reader, input string) (services.Calculation, error) {
	var r io.Reader = stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return services.Calculation{}, fmt.Errorf("quote: open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var calc services.Calculation
	if err := json.NewDecoder(r).Decode(&calc); err != nil {
		return services.Calculation{}, fmt.Errorf("quote: decode calculation: %w", err)
	}
	calc.AssignIDs()
	return calc, nil
}

package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/db"
	"github.com/freshnutrients/agrichat/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import <products.csv>",
	Short: "Import the product catalog from a CSV export",
	Long: `Imports catalog rows from a CSV file. The first row must be a header;
recognized columns are product_name, crop, application, application_type,
growth_stage, problem, m_intervention, directions, label, msds, tech_doc
and notes. Unknown columns are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening CSV: %w", err)
	}
	defer f.Close()

	rows, err := readProductCSV(f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No product rows found.")
		return nil
	}

	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := catalog.NewStore(database)
	ctx := context.Background()

	reporter := progress.NewReporter()
	reporter.Start("Importing products", len(rows))

	imported := 0
	for i, p := range rows {
		if err := store.Insert(ctx, p); err != nil {
			reporter.Finish()
			return fmt.Errorf("inserting row %d (%s): %w", i+2, p.ProductName, err)
		}
		imported++
		reporter.Update(imported, p.ProductName)
	}
	reporter.Finish()

	fmt.Printf("Imported %d products into %s\n", imported, cfg.Database.Path)
	return nil
}

// readProductCSV parses catalog rows, mapping columns by header name.
// Rows without a product name are skipped.
func readProductCSV(r io.Reader) ([]catalog.Product, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		key = strings.ReplaceAll(key, " ", "_")
		cols[key] = i
	}
	if _, ok := cols["product_name"]; !ok {
		return nil, fmt.Errorf("CSV is missing the product_name column")
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var products []catalog.Product
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		p := catalog.Product{
			ProductName:     field(record, "product_name"),
			Crop:            field(record, "crop"),
			Application:     field(record, "application"),
			ApplicationType: field(record, "application_type"),
			GrowthStage:     field(record, "growth_stage"),
			Problem:         field(record, "problem"),
			MIntervention:   field(record, "m_intervention"),
			Directions:      field(record, "directions"),
			Label:           field(record, "label"),
			MSDS:            field(record, "msds"),
			TechDoc:         field(record, "tech_doc"),
			Notes:           field(record, "notes"),
		}
		if p.ProductName == "" {
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

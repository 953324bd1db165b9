package cmd

import (
	"strings"
	"testing"
)

func TestReadProductCSV(t *testing.T) {
	input := `product_name,crop,application_type,problem,directions,ignored
AfriKelp Plus,Tomatoes & Vegetables,Foliar Application,Plant Nutrition,//www.freshnutrients.org/afrikelp.pdf,x
Soft Cal,Citrus,Soil Application,Soil Acidity,,
,Maize,,,,
`

	products, err := readProductCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readProductCSV: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 products (nameless row skipped), got %d", len(products))
	}

	first := products[0]
	if first.ProductName != "AfriKelp Plus" {
		t.Errorf("product name = %q", first.ProductName)
	}
	if first.Crop != "Tomatoes & Vegetables" {
		t.Errorf("crop = %q", first.Crop)
	}
	if first.ApplicationType != "Foliar Application" {
		t.Errorf("application type = %q", first.ApplicationType)
	}
	if first.Directions != "//www.freshnutrients.org/afrikelp.pdf" {
		t.Errorf("directions = %q", first.Directions)
	}

	if products[1].ProductName != "Soft Cal" || products[1].Problem != "Soil Acidity" {
		t.Errorf("second product = %+v", products[1])
	}
}

func TestReadProductCSVHeaderVariants(t *testing.T) {
	// Headers with spaces and mixed case map to the same columns.
	input := "Product Name,Growth Stage\nCalsap,Flowering\n"

	products, err := readProductCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readProductCSV: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].GrowthStage != "Flowering" {
		t.Errorf("growth stage = %q", products[0].GrowthStage)
	}
}

func TestReadProductCSVMissingNameColumn(t *testing.T) {
	input := "crop,problem\nMaize,Soil Acidity\n"

	if _, err := readProductCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for missing product_name column")
	}
}

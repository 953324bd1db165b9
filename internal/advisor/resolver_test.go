package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/intent"
)

// fakeCatalog answers resolver queries from a fixed slice, recording the
// calls it receives.
type fakeCatalog struct {
	products []catalog.Product
	calls    []string
	fail     bool
}

func (f *fakeCatalog) SearchByName(_ context.Context, pattern string, _ int) ([]catalog.Product, error) {
	f.calls = append(f.calls, "name:"+pattern)
	if f.fail {
		return nil, errors.New("catalog down")
	}
	var out []catalog.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(pattern)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalog) SearchByCriteria(_ context.Context, c catalog.Criteria) ([]catalog.Product, error) {
	f.calls = append(f.calls, "criteria:"+c.Problem+"/"+c.Crop+"/"+c.ApplicationType)
	if f.fail {
		return nil, errors.New("catalog down")
	}
	var out []catalog.Product
	for _, p := range f.products {
		if c.Problem != "" && !strings.Contains(strings.ToLower(p.Problem), strings.ToLower(c.Problem)) {
			continue
		}
		if c.Crop != "" && !strings.Contains(strings.ToLower(p.Crop), strings.ToLower(c.Crop)) {
			continue
		}
		if c.ApplicationType != "" && !strings.Contains(strings.ToLower(p.ApplicationType), strings.ToLower(c.ApplicationType)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalog) SearchByText(_ context.Context, pattern string, _ int) ([]catalog.Product, error) {
	f.calls = append(f.calls, "text:"+pattern)
	if f.fail {
		return nil, errors.New("catalog down")
	}
	var out []catalog.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Crop), strings.ToLower(pattern)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ProductName: "Calsap", Crop: "Tomatoes & Vegetables", ApplicationType: "Foliar", Problem: "Plant Nutrition"},
		{ProductName: "Calsap", Crop: "Potatoes", ApplicationType: "Soil", Problem: "Soil Acidity"},
		{ProductName: "Soft Cal", Crop: "Potatoes", ApplicationType: "Soil", Problem: "Soil Acidity"},
		{ProductName: "Fresh P", Crop: "Potatoes", ApplicationType: "Soil", Problem: "Soil Salinity"},
		{ProductName: "Soft Cal", Crop: "Potatoes", ApplicationType: "Soil", Problem: "Soil Salinity"},
		{ProductName: "AfriKelp Plus", Crop: "Maize & Wheat", ApplicationType: "Foliar", Problem: "Plant Nutrition"},
	}
}

func TestResolveProductNameShortCircuits(t *testing.T) {
	fc := &fakeCatalog{products: testProducts()}
	r := NewResolver(fc, nil)

	res := r.Resolve(context.Background(), intent.ExtractedContext{
		ProductName: "Calsap",
		Problem:     "Plant Nutrition",
	})
	if len(res.Products) != 2 {
		t.Fatalf("got %d products, want 2 Calsap rows", len(res.Products))
	}
	for _, p := range res.Products {
		if p.ProductName != "Calsap" {
			t.Errorf("got product %q, want only Calsap", p.ProductName)
		}
	}
	if len(fc.calls) != 1 || !strings.HasPrefix(fc.calls[0], "name:") {
		t.Errorf("calls = %v, want a single name search", fc.calls)
	}
}

func TestResolveProblemWithFilters(t *testing.T) {
	fc := &fakeCatalog{products: testProducts()}
	r := NewResolver(fc, nil)

	res := r.Resolve(context.Background(), intent.ExtractedContext{
		Problem:  "Soil Acidity",
		CropType: "Potatoes",
	})
	if len(res.Products) != 2 {
		t.Fatalf("got %d products, want 2", len(res.Products))
	}
	if res.PHUnified {
		t.Error("PHUnified set for a directional problem")
	}
}

func TestResolveGenericPHUnifiesBothDirections(t *testing.T) {
	fc := &fakeCatalog{products: testProducts()}
	r := NewResolver(fc, nil)

	res := r.Resolve(context.Background(), intent.ExtractedContext{
		Problem:  intent.ProblemPHGeneric,
		PHIssues: true,
		CropType: "Potatoes",
	})
	if !res.PHUnified {
		t.Fatal("PHUnified not set")
	}
	// Soft Cal appears under both acidity and salinity but must be listed
	// once; Calsap and Fresh P once each.
	if len(res.Products) != 3 {
		t.Fatalf("got %d products, want 3 after problem-blind dedup: %+v", len(res.Products), res.Products)
	}
	names := map[string]int{}
	for _, p := range res.Products {
		names[p.ProductName]++
	}
	if names["Soft Cal"] != 1 {
		t.Errorf("Soft Cal appears %d times, want 1", names["Soft Cal"])
	}
	if len(fc.calls) != 2 {
		t.Errorf("calls = %v, want acidity and salinity queries", fc.calls)
	}
}

func TestResolveCropAloneReturnsNothing(t *testing.T) {
	fc := &fakeCatalog{products: testProducts()}
	r := NewResolver(fc, nil)

	res := r.Resolve(context.Background(), intent.ExtractedContext{CropType: "Potatoes"})
	if len(res.Products) != 0 {
		t.Fatalf("got %d products for crop alone, want none", len(res.Products))
	}
	if len(fc.calls) != 0 {
		t.Errorf("calls = %v, want no catalog queries", fc.calls)
	}
}

func TestResolveCropWithApplicationFallsBackToText(t *testing.T) {
	fc := &fakeCatalog{products: testProducts()}
	r := NewResolver(fc, nil)

	res := r.Resolve(context.Background(), intent.ExtractedContext{
		CropType:        "Potatoes",
		ApplicationType: "Water",
	})
	// No potato rows use water application, so the criteria query misses
	// and the text fallback returns every potato row.
	if len(res.Products) == 0 {
		t.Fatal("got no products, want text fallback hits")
	}
	if len(fc.calls) != 2 || !strings.HasPrefix(fc.calls[1], "text:") {
		t.Errorf("calls = %v, want criteria then text fallback", fc.calls)
	}
}

func TestResolveProblemMissKeepsProblemFilterOnCropQuery(t *testing.T) {
	fc := &fakeCatalog{products: testProducts()}
	r := NewResolver(fc, nil)

	// No potato rows carry this problem: the problem query misses, the
	// crop query must stay problem-filtered (so it misses too) and the
	// text fallback answers.
	res := r.Resolve(context.Background(), intent.ExtractedContext{
		CropType: "Potatoes",
		Problem:  "Shelf life management",
	})
	if len(res.Products) == 0 {
		t.Fatal("got no products, want text fallback hits")
	}
	for _, p := range res.Products {
		if p.Crop != "Potatoes" {
			t.Errorf("got crop %q from text fallback, want Potatoes", p.Crop)
		}
	}
	want := []string{
		"criteria:Shelf life management/Potatoes/",
		"criteria:Shelf life management/Potatoes/",
		"text:Potatoes",
	}
	if len(fc.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fc.calls, want)
	}
	for i := range want {
		if fc.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, fc.calls[i], want[i])
		}
	}
}

func TestResolveGenericPHEmptyFallsThroughToCrop(t *testing.T) {
	fc := &fakeCatalog{products: testProducts()}
	r := NewResolver(fc, nil)

	// No acidity or salinity rows exist for maize, so both directional
	// queries miss and the crop branch's text fallback answers.
	res := r.Resolve(context.Background(), intent.ExtractedContext{
		CropType: "Maize & Wheat",
		Problem:  intent.ProblemPHGeneric,
		PHIssues: true,
	})
	if len(res.Products) != 1 || res.Products[0].ProductName != "AfriKelp Plus" {
		t.Fatalf("got %+v, want the maize row via text fallback", res.Products)
	}
	if res.PHUnified {
		t.Error("PHUnified set on products that did not come from the pH queries")
	}
	if len(fc.calls) != 4 || !strings.HasPrefix(fc.calls[3], "text:") {
		t.Errorf("calls = %v, want two pH queries, a crop query and the text fallback", fc.calls)
	}
}

func TestResolveApplicationAlone(t *testing.T) {
	fc := &fakeCatalog{products: testProducts()}
	r := NewResolver(fc, nil)

	res := r.Resolve(context.Background(), intent.ExtractedContext{ApplicationType: "Foliar"})
	if len(res.Products) != 2 {
		t.Fatalf("got %d products, want 2 foliar rows", len(res.Products))
	}
}

func TestResolveCatalogErrorDegradesToEmpty(t *testing.T) {
	fc := &fakeCatalog{products: testProducts(), fail: true}
	r := NewResolver(fc, nil)

	res := r.Resolve(context.Background(), intent.ExtractedContext{Problem: "Soil Acidity"})
	if len(res.Products) != 0 {
		t.Fatalf("got %d products from a failing catalog, want none", len(res.Products))
	}
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	rows := []catalog.Product{
		{ProductName: "Calsap", Crop: "Potatoes", Problem: "Soil Acidity", Notes: "first"},
		{ProductName: "Calsap", Crop: "Potatoes", Problem: "Soil Acidity", Notes: "dup"},
		{ProductName: "Calsap", Crop: "Potatoes", Problem: "Soil Salinity"},
	}
	full := dedupe(rows, true)
	if len(full) != 2 {
		t.Fatalf("dedupe with problem: got %d, want 2", len(full))
	}
	if full[0].Notes != "first" {
		t.Errorf("dedupe kept %q, want first occurrence", full[0].Notes)
	}
	blind := dedupe(rows, false)
	if len(blind) != 1 {
		t.Fatalf("dedupe without problem: got %d, want 1", len(blind))
	}
}

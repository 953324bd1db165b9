package prompt

import (
	"fmt"
	"strings"

	"github.com/freshnutrients/agrichat/internal/catalog"
)

// FormatProducts renders catalog rows as numbered plain-text entries for
// context injection. Timing questions flag rows that carry documents, so
// the model points the farmer at schedules instead of guessing.
func FormatProducts(products []catalog.Product, timingQuestion bool) string {
	if len(products) == 0 {
		return "No specific products found for this query."
	}

	var entries []string
	for i, p := range products {
		lines := []string{
			fmt.Sprintf("%d. %s", i+1, orDefault(p.ProductName, "Unknown Product")),
			"   Crop: " + orDefault(p.Crop, "Not specified"),
			"   Application: " + orDefault(p.Application, "Not specified"),
			"   Growth Stage: " + orDefault(p.GrowthStage, "Not specified"),
			"   Problem: " + orDefault(p.Problem, "Not specified"),
		}
		if p.Notes != "" {
			lines = append(lines, "   Notes: "+p.Notes)
		}
		if timingQuestion && (p.Directions != "" || p.TechDoc != "" || p.Label != "") {
			lines = append(lines, "   TIMING INFORMATION AVAILABLE in documents")
		}

		var docs []string
		if p.Directions != "" {
			label := "Product Directions"
			if timingQuestion {
				label = "Application Directions"
			}
			docs = append(docs, label+" - "+FixDocumentURL(p.Directions))
		}
		if p.Label != "" {
			docs = append(docs, "Product Label - "+FixDocumentURL(p.Label))
		}
		if p.MSDS != "" {
			docs = append(docs, "Safety Data - "+FixDocumentURL(p.MSDS))
		}
		if p.TechDoc != "" {
			docs = append(docs, "Technical Document - "+FixDocumentURL(p.TechDoc))
		}
		if len(docs) > 0 {
			lines = append(lines, "   Documents:")
			for _, doc := range docs {
				lines = append(lines, "   - "+doc)
			}
		}

		entries = append(entries, strings.Join(lines, "\n"))
	}
	return strings.Join(entries, "\n\n")
}

// FixDocumentURL repairs protocol-relative links as stored in the
// catalog ("//www.example.org/doc.pdf") into absolute https URLs.
func FixDocumentURL(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/freshnutrients/agrichat/internal/advisor"
	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/intent"
	"github.com/freshnutrients/agrichat/internal/prompt"
)

// handleSearchProducts searches the catalog by name first, then by free text.
func (s *Server) handleSearchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	products, err := s.catalog.SearchByName(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(products) == 0 {
		products, err = s.catalog.SearchByText(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
		}
	}

	if len(products) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No products found for %q.", query)), nil
	}

	return mcp.NewToolResultText(formatProducts(products)), nil
}

// handleRecommendProducts runs the full recommendation pipeline on a single
// message: context extraction, catalog resolution and sufficiency.
func (s *Server) handleRecommendProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	overrides := map[string]string{}
	if crop := request.GetString("crop", ""); crop != "" {
		overrides["crop_type"] = crop
	}
	if problem := request.GetString("problem", ""); problem != "" {
		overrides["problem"] = problem
	}
	if app := request.GetString("application_type", ""); app != "" {
		overrides["application_type"] = app
	}

	extracted := intent.ApplyOverrides(intent.Extract(message), overrides)
	resolution := s.resolver.Resolve(ctx, extracted)
	assessment := advisor.Evaluate(extracted)

	var sb strings.Builder
	sb.WriteString("# Recommendation\n\n")
	sb.WriteString(formatContext(extracted))

	sb.WriteString(fmt.Sprintf("\nScenario: %s (confidence %.2f)\n", assessment.Scenario, assessment.Confidence))
	if !assessment.Sufficient && assessment.FollowUp != "" {
		sb.WriteString(fmt.Sprintf("\nMore detail needed. Ask the farmer:\n%s\n", assessment.FollowUp))
	}
	if resolution.PHUnified {
		sb.WriteString("\nNote: products below cover both soil acidity and soil salinity; the right one depends on a pH test.\n")
	}

	if len(resolution.Products) == 0 {
		sb.WriteString("\nNo matching products in the catalog.\n")
	} else {
		sb.WriteString("\n")
		sb.WriteString(formatProducts(resolution.Products))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleListCrops returns the distinct crops present in the catalog.
func (s *Server) handleListCrops(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crops, err := s.catalog.Crops(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing crops failed: %v", err)), nil
	}
	if len(crops) == 0 {
		return mcp.NewToolResultText("The catalog has no crops yet. Import products with `agrichat import`."), nil
	}
	return mcp.NewToolResultText("Crops covered by the catalog:\n- " + strings.Join(crops, "\n- ")), nil
}

// handleListProblems returns the distinct problem categories in the catalog.
func (s *Server) handleListProblems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	problems, err := s.catalog.Problems(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing problems failed: %v", err)), nil
	}
	if len(problems) == 0 {
		return mcp.NewToolResultText("The catalog has no problem categories yet. Import products with `agrichat import`."), nil
	}
	return mcp.NewToolResultText("Problem categories covered by the catalog:\n- " + strings.Join(problems, "\n- ")), nil
}

// formatProducts renders catalog rows as text for AI agent consumption.
func formatProducts(products []catalog.Product) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d product(s):\n", len(products)))

	for i, p := range products {
		sb.WriteString(fmt.Sprintf("\n--- Product %d: %s ---\n", i+1, p.ProductName))
		if p.Crop != "" {
			sb.WriteString(fmt.Sprintf("Crop: %s\n", p.Crop))
		}
		if p.ApplicationType != "" {
			sb.WriteString(fmt.Sprintf("Application Type: %s\n", p.ApplicationType))
		}
		if p.GrowthStage != "" {
			sb.WriteString(fmt.Sprintf("Growth Stage: %s\n", p.GrowthStage))
		}
		if p.Problem != "" {
			sb.WriteString(fmt.Sprintf("Problem: %s\n", p.Problem))
		}
		if p.Notes != "" {
			sb.WriteString(fmt.Sprintf("Notes: %s\n", p.Notes))
		}
		if p.Directions != "" {
			sb.WriteString(fmt.Sprintf("Directions: %s\n", prompt.FixDocumentURL(p.Directions)))
		}
		if p.Label != "" {
			sb.WriteString(fmt.Sprintf("Label: %s\n", prompt.FixDocumentURL(p.Label)))
		}
	}

	return sb.String()
}

// formatContext renders the extracted context as a short bullet list.
func formatContext(c intent.ExtractedContext) string {
	var sb strings.Builder
	sb.WriteString("Understood context:\n")
	if c.ProductName != "" {
		sb.WriteString(fmt.Sprintf("- Product: %s\n", c.ProductName))
	}
	if c.CropType != "" {
		sb.WriteString(fmt.Sprintf("- Crop: %s\n", c.CropType))
	}
	if c.Problem != "" {
		sb.WriteString(fmt.Sprintf("- Problem: %s\n", c.Problem))
	}
	if c.ApplicationType != "" {
		sb.WriteString(fmt.Sprintf("- Application: %s\n", c.ApplicationType))
	}
	if c.TimingQuestion {
		sb.WriteString("- Asking about application timing\n")
	}
	if c.IsEmpty() {
		sb.WriteString("- (nothing recognized)\n")
	}
	return sb.String()
}

// Package prompt assembles the system prompt for the advice model: the
// assistant persona and formatting rules, the matched catalog rows, the
// farmer's accumulated context and per-scenario response guidance.
package prompt

import (
	"fmt"
	"strings"

	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/intent"
)

// Input carries everything the builder folds into one system prompt.
// Scenario, MissingFields and FollowUp come from the sufficiency
// assessment; Products and PHUnified from catalog resolution.
type Input struct {
	Context       intent.ExtractedContext
	Products      []catalog.Product
	PHUnified     bool
	Scenario      string
	Confidence    float64
	MissingFields []string
	FollowUp      string
}

// Scenario names, mirrored from the sufficiency assessment.
const (
	scenarioProductDirect  = "product_direct"
	scenarioProblemAndCrop = "problem_and_crop"
	scenarioProblemFocused = "problem_focused"
	scenarioCropOnly       = "crop_only"
)

const systemPromptBase = `You are FreshNutrients Assistant, an expert agricultural advisor specializing in FreshNutrients products.

YOUR ROLE:
- Provide practical farming advice using FreshNutrients products
- Give clear, friendly recommendations in conversational language
- Help farmers choose the right products for their crops

BOUNDARIES:
- ONLY discuss FreshNutrients products
- NEVER recommend competitor products
- Stay focused on farming and agriculture
- Never give legal advice

FORMATTING RULES:
- NEVER use asterisks (*) for any reason
- Transform technical product data into friendly farming advice
- Use ## for main section headings and ### for product names
- Use bullet points for lists within sections and line breaks after headings
- Write like a helpful gardening expert, not a database
- Do NOT show context analysis or technical metadata to users
- Find the document URLs in the context and output them with "Document Name - https://..." format, keeping URLs exactly as shown

PRODUCT CONTEXT:
%s`

const contextTemplate = `
RELEVANT FRESHNUTRIENTS PRODUCTS:
%s

USER FARMING CONTEXT:
%s
`

const safetyGuidelines = `
IMPORTANT SAFETY REMINDERS:
- Always follow product label instructions
- Use appropriate protective equipment
- Consider local weather and soil conditions
- Consult with local agricultural extension services for regional advice
`

// BuildSystem assembles the complete system prompt for one chat turn.
func BuildSystem(in Input) string {
	userContext := formatUserContext(in.Context)
	if in.Context.TimingQuestion {
		userContext += "\n\n" + timingGuidance(len(in.Products))
	} else {
		userContext += "\n\n" + scenarioGuidance(in)
	}

	contextSection := fmt.Sprintf(contextTemplate,
		FormatProducts(in.Products, in.Context.TimingQuestion),
		userContext)

	return fmt.Sprintf(systemPromptBase, contextSection) + "\n" + safetyGuidelines
}

func formatUserContext(c intent.ExtractedContext) string {
	var parts []string
	if c.CropType != "" {
		parts = append(parts, "- Target Crop: "+c.CropType)
	}
	if c.Location != "" {
		parts = append(parts, "- Location: "+c.Location)
	}
	if c.ApplicationType != "" {
		parts = append(parts, "- Application Type: "+c.ApplicationType)
	}
	if c.Problem != "" {
		parts = append(parts, "- Problem: "+c.Problem)
	}
	if c.GrowthStage != "" {
		parts = append(parts, "- Growth Stage: "+c.GrowthStage)
	}
	if len(parts) == 0 {
		return "General farming inquiry"
	}
	return strings.Join(parts, "\n")
}

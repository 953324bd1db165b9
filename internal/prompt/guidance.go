package prompt

import (
	"fmt"
	"strings"
)

// timingGuidance forces the fixed response shape for timing questions:
// the catalog stores schedules in documents, not rows, so the model must
// route the farmer to documentation instead of inventing intervals.
func timingGuidance(productCount int) string {
	return fmt.Sprintf(`TIMING QUESTION DETECTED - SPECIAL RESPONSE FORMAT REQUIRED

CRITICAL INSTRUCTIONS FOR TIMING QUESTIONS:
You MUST respond in this exact format:

1. START your response with: "For detailed application timing information, please check the documentation for the following products that match your criteria:"

2. Then list ALL %d products showing:
   - Product name, crop, application details, growth stage, problem
   - Emphasize documentation links for timing information
   - Include all available links: Directions, Labels, Technical Documents

3. END with: "These product documents contain specific timing schedules, application frequencies, and seasonal recommendations for optimal results."

DO NOT show technical instructions or error messages to the user. Follow the format above exactly.`, productCount)
}

// scenarioGuidance picks the response guidance block for the current
// recommendation scenario.
func scenarioGuidance(in Input) string {
	if len(in.Products) == 0 {
		return noProductsGuidance(in)
	}
	if in.PHUnified {
		return phUnifiedGuidance(len(in.Products))
	}

	switch in.Scenario {
	case scenarioProductDirect:
		return fmt.Sprintf(`PRODUCT DIRECT REQUEST:
- User requested specific product information
- Products available: %d matching products found

RESPONSE GUIDANCE:
1. Present the specific FreshNutrients product(s) they asked about
2. Include complete product details, benefits, and application instructions
3. Include all document links for the product
4. Use the friendly format from your main instructions`, len(in.Products))

	case scenarioCropOnly:
		return fmt.Sprintf(`CROP ONLY PROVIDED:
- User mentioned crop but no specific problem or application method
- Products available: %d general crop products found
- Prompt message: %s

RESPONSE GUIDANCE:
1. Show available FreshNutrients products for their crop
2. Include the prompt message to ask for more specific details
3. Explain that knowing their specific problem or application method will help provide better recommendations
4. Use the friendly format from your main instructions`, len(in.Products), in.FollowUp)

	case scenarioProblemFocused:
		return fmt.Sprintf(`PROBLEM FOCUSED REQUEST:
- User specified a problem but no crop
- Products available: %d problem-solving products found
- Prompt message: %s

RESPONSE GUIDANCE:
1. Present all %d FreshNutrients products that address their problem
2. Include complete details and application instructions for each product
3. Include the prompt message to ask for crop information for more targeted recommendations
4. Use the friendly format from your main instructions`, len(in.Products), in.FollowUp, len(in.Products))

	case scenarioProblemAndCrop:
		return fmt.Sprintf(`OPTIMAL CONTEXT PROVIDED:
- User specified both problem and crop
- Products available: %d targeted products found
- Information completeness: %.0f%%

RESPONSE GUIDANCE:
1. Present all %d FreshNutrients products that match their criteria
2. Include complete details, benefits, and application instructions
3. Include all document links for each product
4. If multiple products are suitable, explain the differences to help the user choose
5. Use the friendly format from your main instructions`, len(in.Products), in.Confidence*100, len(in.Products))

	default:
		missing := make([]string, 0, len(in.MissingFields))
		for _, field := range in.MissingFields {
			missing = append(missing, titleWords(field))
		}
		followUp := in.FollowUp
		if followUp == "" {
			followUp = "Could you provide more details about what you need help with?"
		}
		guidance := fmt.Sprintf(`CONTEXT ANALYSIS:
- Scenario: %s
- Information completeness: %.0f%%
- Products available: %d matching products found
- Prompt message: %s

RESPONSE GUIDANCE:
1. Present available FreshNutrients products that match the user's criteria
2. Include the prompt message to ask for additional helpful details
3. Use the friendly format from your main instructions
4. Include all document links for each product`, in.Scenario, in.Confidence*100, len(in.Products), followUp)
		if len(missing) > 0 {
			guidance += "\n- Missing information: " + strings.Join(missing, ", ")
		}
		return guidance
	}
}

func phUnifiedGuidance(productCount int) string {
	return fmt.Sprintf(`pH ISSUES DETECTED - UNIFIED SOLUTION:
- User mentioned pH concerns (could be acidic or alkaline soil)
- Products available: %d pH-balancing products found
- These products work for both low pH (acidic) and high pH (alkaline/salty) soil conditions

RESPONSE GUIDANCE:
1. START with: "Great news! I found FreshNutrients products that help balance soil pH whether your soil is too acidic (low pH) or too alkaline (high pH)."

2. Present the products clearly explaining their dual-purpose nature:
   - Mention that these products work for both acidic and alkaline soil conditions
   - Explain how they help buffer and balance soil pH naturally
   - Include application instructions and timing

3. OPTIONALLY add education: "Whether your soil shows signs of acidity (stunted growth, nutrient lockout) or alkalinity (salty/crusty appearance), these products will help restore proper pH balance."

4. Include all document links for each product
5. Use the friendly format from your main instructions`, productCount)
}

func noProductsGuidance(in Input) string {
	followUp := in.FollowUp
	if followUp == "" {
		followUp = "To provide the best product recommendation, could you tell me what specific problem you're trying to solve?"
	}
	return fmt.Sprintf(`NO PRODUCTS FOUND - PROVIDE HELPFUL GUIDANCE:

Scenario: %s
Prompt: %s

Respond with a friendly message that:
1. Acknowledges their inquiry about farming/soil/plant needs
2. Uses the specific prompt message to guide them toward providing helpful information
3. Mentions that FreshNutrients has products for many different crops and problems
4. Keeps the conversation focused on what they need help with

DO NOT mention technical details, database searches, or system information. Keep it conversational and helpful.

EXAMPLE: "I'd be happy to help you find the right FreshNutrients products! %s FreshNutrients has specialized products to help address various farming challenges."`, in.Scenario, followUp, followUp)
}

// titleWords turns a snake_case field name into spaced Title Case.
func titleWords(field string) string {
	words := strings.Split(field, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

package advisor

import "github.com/freshnutrients/agrichat/internal/intent"

// Recommendation scenarios, from strongest to weakest signal.
const (
	ScenarioProductDirect   = "product_direct"
	ScenarioProblemAndCrop  = "problem_and_crop"
	ScenarioProblemFocused  = "problem_focused"
	ScenarioCropOnly        = "crop_only"
	ScenarioApplicationOnly = "application_only"
	ScenarioInsufficient    = "insufficient"
)

// Assessment says whether the accumulated context supports a product
// recommendation, and if not, what to ask the farmer next.
type Assessment struct {
	Sufficient    bool     `json:"sufficient"`
	Scenario      string   `json:"scenario"`
	Confidence    float64  `json:"confidence"`
	MissingFields []string `json:"missing_fields,omitempty"`
	FollowUp      string   `json:"follow_up,omitempty"`
}

// Evaluate classifies the context into one of the recommendation
// scenarios. The checks run in priority order and the first hit wins: a
// direct product mention needs nothing else, a problem carries enough to
// recommend even without a crop, a crop alone does not.
func Evaluate(c intent.ExtractedContext) Assessment {
	switch {
	case c.ProductName != "":
		return Assessment{
			Sufficient: true,
			Scenario:   ScenarioProductDirect,
			Confidence: 1.0,
		}
	case c.CropType != "" && c.Problem == "" && c.ApplicationType == "":
		return Assessment{
			Sufficient:    false,
			Scenario:      ScenarioCropOnly,
			Confidence:    0.33,
			MissingFields: []string{"problem", "application_type"},
			FollowUp:      "I see you mentioned a crop. To provide the best recommendation, could you tell me what specific problem you're trying to solve or what application method you plan to use?",
		}
	case c.Problem != "" && c.CropType == "":
		return Assessment{
			Sufficient:    true,
			Scenario:      ScenarioProblemFocused,
			Confidence:    0.67,
			MissingFields: []string{"crop_type"},
			FollowUp:      "I can show you products for this problem. For more targeted recommendations, what crop are you working with?",
		}
	case c.Problem != "" && c.CropType != "":
		return Assessment{
			Sufficient: true,
			Scenario:   ScenarioProblemAndCrop,
			Confidence: 1.0,
		}
	case c.ApplicationType != "" && c.Problem == "":
		return Assessment{
			Sufficient:    false,
			Scenario:      ScenarioApplicationOnly,
			Confidence:    0.33,
			MissingFields: []string{"problem"},
			FollowUp:      "I see you mentioned an application method. What specific problem are you trying to solve?",
		}
	default:
		return Assessment{
			Sufficient:    false,
			Scenario:      ScenarioInsufficient,
			Confidence:    0.0,
			MissingFields: []string{"problem"},
			FollowUp:      "To help you find the right products, could you tell me what problem you're trying to solve with your crops?",
		}
	}
}

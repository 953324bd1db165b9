package intent

// Canonical problem labels as stored in the product catalog.
const (
	ProblemPlantNutrition       = "Plant Nutrition"
	ProblemFertilizerEfficiency = "Fertilizer Efficiency"
	ProblemSoilHealth           = "Soil Health"
	ProblemSoilSalinity         = "Soil Salinity"
	ProblemSoilAcidity          = "Soil Acidity"
	ProblemIrrigationEfficiency = "Irrigation efficiency"
	ProblemShelfLife            = "Shelf life management"

	// ProblemPHGeneric marks a pH mention whose polarity (acidic or
	// alkaline) is still unknown. It never matches a catalog row directly;
	// the resolver expands it into both soil-acidity and soil-salinity
	// queries.
	ProblemPHGeneric = "pH Issues"
)

// Canonical application types.
const (
	ApplicationFoliar = "Foliar"
	ApplicationSoil   = "Soil"
	ApplicationWater  = "Water"
)

// ExtractedContext is the sparse structured reading of one message.
// String fields use "" for "not detected"; at most one crop and one
// problem is ever set per message.
type ExtractedContext struct {
	ProductName     string `json:"product_name,omitempty"`
	CropType        string `json:"crop_type,omitempty"`
	ApplicationType string `json:"application_type,omitempty"`
	Problem         string `json:"problem,omitempty"`

	// PHIssues is set when a generic pH mention was detected, independent
	// of whether Problem resolved to a specific label.
	PHIssues bool `json:"ph_issues,omitempty"`

	TimingQuestion bool   `json:"timing_question,omitempty"`
	QuestionType   string `json:"question_type,omitempty"`

	// Location and GrowthStage are never extracted from text; they arrive
	// only through caller-supplied overrides and survive merging so the
	// prompt can use them.
	Location    string `json:"location,omitempty"`
	GrowthStage string `json:"growth_stage,omitempty"`
}

// IsEmpty reports whether no field is set.
func (c ExtractedContext) IsEmpty() bool {
	return c == ExtractedContext{}
}

// Merge folds from onto c using per-field overwrite: a field present in
// from replaces the value in c, an absent field never erases one. The
// operation is idempotent.
func Merge(c, from ExtractedContext) ExtractedContext {
	if from.ProductName != "" {
		c.ProductName = from.ProductName
	}
	if from.CropType != "" {
		c.CropType = from.CropType
	}
	if from.ApplicationType != "" {
		c.ApplicationType = from.ApplicationType
	}
	if from.Problem != "" {
		c.Problem = from.Problem
	}
	if from.PHIssues {
		c.PHIssues = true
	}
	if from.TimingQuestion {
		c.TimingQuestion = true
	}
	if from.QuestionType != "" {
		c.QuestionType = from.QuestionType
	}
	if from.Location != "" {
		c.Location = from.Location
	}
	if from.GrowthStage != "" {
		c.GrowthStage = from.GrowthStage
	}
	return c
}

// ApplyOverrides folds caller-supplied structured fields onto c with
// unconditional overwrite: a present key replaces the field even when the
// extracted value is non-empty. Unknown keys are ignored.
func ApplyOverrides(c ExtractedContext, overrides map[string]string) ExtractedContext {
	for key, value := range overrides {
		switch key {
		case "product_name":
			c.ProductName = value
		case "crop_type":
			c.CropType = value
		case "application_type":
			c.ApplicationType = value
		case "problem":
			c.Problem = value
		case "location":
			c.Location = value
		case "growth_stage":
			c.GrowthStage = value
		}
	}
	return c
}

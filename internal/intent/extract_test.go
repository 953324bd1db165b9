package intent

import "testing"

func TestExtractProducts(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Tell me about Calsap", "Calsap"},
		{"does afrikelp plus work on maize?", "AfriKelp Plus"},
		{"I heard about kelp plus", "AfriKelp Plus"},
		{"what is AfriKelp+ used for", "AfriKelp Plus"},
		{"blac mag dosage", "BlaC-Mag"},
		{"BlacMag for tomatoes", "BlaC-Mag"},
		{"can I use aqua-mate with drip lines", "AquaMate"},
		{"my crops look unhealthy", ""},
	}
	for _, tt := range tests {
		got := Extract(tt.message)
		if got.ProductName != tt.want {
			t.Errorf("Extract(%q).ProductName = %q, want %q", tt.message, got.ProductName, tt.want)
		}
	}
}

func TestExtractCrops(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"my tomatoes have yellow leaves", "Tomatoes & Vegetables"},
		{"growing veggie gardens", "Tomatoes & Vegetables"},
		{"potato storage advice", "Potatoes"},
		{"we farm maize and wheat", "Maize & Wheat"},
		{"corn planting season", "Maize & Wheat"},
		{"apple orchard spraying", "Deciduous Fruit"},
		{"my citrus trees", "Deciduous Fruit"},
		{"macadamia trees in limpopo", "Macadamias & Avos (Other Subtropicals)"},
		{"avos are dropping fruit", "Macadamias & Avos (Other Subtropicals)"},
		{"pecan orchard fertility", "Pecan Nuts"},
		{"my nut trees", "Pecan Nuts"},
		{"nuts dropping early", "Pecan Nuts"},
		{"tobacco seedbeds", "Field Tobacco"},
		{"seedlings in the nursery", "Seedlings (Tobacco included)"},
		{"soybean field", "Soyas and other legumes"},
		{"green beans", "Soyas and other legumes"},
		{"grass for grazing", "Grass pastures"},
		{"lettuce heads are small", "Lettuce"},
		{"onions bulbing", "Onions"},
		{"I need nutrition advice", ""},
		{"spearmint harvest", ""},
	}
	for _, tt := range tests {
		got := Extract(tt.message)
		if got.CropType != tt.want {
			t.Errorf("Extract(%q).CropType = %q, want %q", tt.message, got.CropType, tt.want)
		}
	}
}

// Crop words must match on word boundaries only: "cornflower" is not corn
// and "appealing" is not an apple.
func TestExtractCropWordBoundaries(t *testing.T) {
	for _, message := range []string{
		"the cornflower bed", "an appealing offer", "walnut-free snacks",
	} {
		if got := Extract(message).CropType; got != "" {
			t.Errorf("Extract(%q).CropType = %q, want no crop from embedded word", message, got)
		}
	}
}

func TestExtractApplicationType(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"foliar feeding schedule", "Foliar"},
		{"when should I spray", "Foliar"},
		{"the leaves are curling", "Foliar"},
		{"soil application rates", "Soil"},
		{"root drench before planting", "Soil"},
		{"apply through irrigation", "Water"},
		{"hydroponic lettuce setup", "Water"},
		{"tell me about your company", ""},
	}
	for _, tt := range tests {
		got := Extract(tt.message)
		if got.ApplicationType != tt.want {
			t.Errorf("Extract(%q).ApplicationType = %q, want %q", tt.message, got.ApplicationType, tt.want)
		}
	}
}

// The foliar bucket precedes soil and water, so a message touching
// several buckets keeps the first one.
func TestExtractApplicationFirstBucketWins(t *testing.T) {
	got := Extract("should I spray the leaves or drench the soil with water")
	if got.ApplicationType != "Foliar" {
		t.Errorf("ApplicationType = %q, want Foliar", got.ApplicationType)
	}
}

func TestExtractProblems(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"nutrient deficiency in my maize", "Plant Nutrition"},
		{"I want a feeding program", "Plant Nutrition"},
		{"improve efficiency of my fertilizer", "Fertilizer Efficiency"},
		{"pest control options", "Soil Health"},
		{"disease prevention for tomatoes", "Soil Health"},
		{"irrigation efficiency is poor", "Irrigation efficiency"},
		{"shelf life of my produce", "Shelf life management"},
		{"post harvest handling", "Shelf life management"},
		{"what products do you sell", ""},
	}
	for _, tt := range tests {
		got := Extract(tt.message)
		if got.Problem != tt.want {
			t.Errorf("Extract(%q).Problem = %q, want %q", tt.message, got.Problem, tt.want)
		}
	}
}

func TestExtractPHWinsOverProblemScan(t *testing.T) {
	tests := []struct {
		message     string
		wantProblem string
		wantGeneric bool
	}{
		{"my soil is too acidic", ProblemSoilAcidity, false},
		{"sour soil after years of fertilizer", ProblemSoilAcidity, false},
		{"alkaline soil in the west block", ProblemSoilSalinity, false},
		{"salty soil near the dam", ProblemSoilSalinity, false},
		{"the ph is high this year", ProblemSoilSalinity, false},
		{"how do I test soil ph", ProblemPHGeneric, true},
		{"my ph meter broke", ProblemPHGeneric, true},
		{"ph balance for tomatoes", ProblemPHGeneric, true},
	}
	for _, tt := range tests {
		got := Extract(tt.message)
		if got.Problem != tt.wantProblem {
			t.Errorf("Extract(%q).Problem = %q, want %q", tt.message, got.Problem, tt.wantProblem)
		}
		if got.PHIssues != tt.wantGeneric {
			t.Errorf("Extract(%q).PHIssues = %v, want %v", tt.message, got.PHIssues, tt.wantGeneric)
		}
	}
}

// "phosphate" and similar words contain "ph" but must not trip the
// generic pH pattern.
func TestExtractPHNeedsWordBoundary(t *testing.T) {
	got := Extract("phosphate levels in my soil")
	if got.PHIssues {
		t.Errorf("Extract(phosphate...) set PHIssues, want false")
	}
	if got.Problem == ProblemPHGeneric {
		t.Errorf("Extract(phosphate...) classified as %q", got.Problem)
	}
}

func TestExtractTiming(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"when should I apply calsap", true},
		{"how often do I spray", true},
		{"two weeks apart or three?", true},
		{"what is the application rate", false},
	}
	for _, tt := range tests {
		got := Extract(tt.message)
		if got.TimingQuestion != tt.want {
			t.Errorf("Extract(%q).TimingQuestion = %v, want %v", tt.message, got.TimingQuestion, tt.want)
		}
		if tt.want && got.QuestionType != "timing" {
			t.Errorf("Extract(%q).QuestionType = %q, want timing", tt.message, got.QuestionType)
		}
	}
}

func TestExtractCombined(t *testing.T) {
	got := Extract("When should I do a foliar spray of AfriKelp Plus on my acidic tomato soil?")
	want := ExtractedContext{
		ProductName:     "AfriKelp Plus",
		CropType:        "Tomatoes & Vegetables",
		ApplicationType: "Foliar",
		Problem:         ProblemSoilAcidity,
		TimingQuestion:  true,
		QuestionType:    "timing",
	}
	if got != want {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtractDeterministic(t *testing.T) {
	message := "spray soil water foliar tomato potato acid soil alkaline"
	first := Extract(message)
	for i := 0; i < 10; i++ {
		if got := Extract(message); got != first {
			t.Fatalf("Extract not deterministic: %+v vs %+v", got, first)
		}
	}
}

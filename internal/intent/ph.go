package intent

import (
	"regexp"
	"strings"
)

// phHighIndicators point at an alkaline or saline condition; phLowIndicators
// at an acidic one. Both lists are substring-matched.
var phHighIndicators = []string{
	"alkaline", "alkalinity", "high ph", "ph too high", "ph is high",
	"salty soil", "salt problems", "high salinity", "lime needs",
	"ph above", "ph over", "basic soil",
}

var phLowIndicators = []string{
	"acidic", "acidity", "acid soil", "low ph", "ph too low", "ph is low",
	"sour soil", "ph below", "ph under", "acidic soil",
}

// phGenericPatterns catch pH mentions that carry no direction, such as
// "what is my soil ph" or "ph testing".
var phGenericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bph\b`),
	regexp.MustCompile(`\bph level\b`),
	regexp.MustCompile(`\bph levels\b`),
	regexp.MustCompile(`\bph balance\b`),
	regexp.MustCompile(`\bph imbalance\b`),
	regexp.MustCompile(`\bph testing\b`),
	regexp.MustCompile(`\bph meter\b`),
	regexp.MustCompile(`\bsoil ph\b`),
	regexp.MustCompile(`\bph adjustment\b`),
}

// ClassifyPH inspects a lowercased message for pH-related language.
// Directional wording wins: high-pH indicators map to Soil Salinity and
// low-pH indicators to Soil Acidity. A pH mention with no direction
// returns ProblemPHGeneric. Messages without any pH signal return "".
func ClassifyPH(lower string) string {
	for _, indicator := range phHighIndicators {
		if strings.Contains(lower, indicator) {
			return ProblemSoilSalinity
		}
	}
	for _, indicator := range phLowIndicators {
		if strings.Contains(lower, indicator) {
			return ProblemSoilAcidity
		}
	}
	for _, pattern := range phGenericPatterns {
		if pattern.MatchString(lower) {
			return ProblemPHGeneric
		}
	}
	return ""
}

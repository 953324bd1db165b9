// Package intent turns free-form farmer messages into the sparse
// structured context the recommendation pipeline runs on: product
// mentions, a single crop, an application method, a problem category and
// timing intent. Matching is keyword and regex driven; every table is
// ordered and the first hit wins, so extraction is deterministic.
package intent

import "strings"

// Extract reads one message and returns its structured context. Fields
// the message says nothing about stay zero.
func Extract(message string) ExtractedContext {
	lower := strings.ToLower(message)
	ctx := ExtractedContext{}

	for _, variant := range productVariants {
		if strings.Contains(lower, variant.keyword) {
			ctx.ProductName = variant.canonical
			break
		}
	}

	ctx.CropType = extractCrop(lower)

	for _, bucket := range applicationBuckets {
		if containsAny(lower, bucket.keywords) {
			ctx.ApplicationType = bucket.label
			break
		}
	}

	// pH language is classified before the generic problem scan and wins
	// outright when present, so "acidic soil" never falls through to a
	// weaker keyword bucket.
	if ph := ClassifyPH(lower); ph != "" {
		ctx.Problem = ph
		if ph == ProblemPHGeneric {
			ctx.PHIssues = true
		}
	} else {
		for _, bucket := range problemBuckets {
			if containsAny(lower, bucket.keywords) {
				ctx.Problem = bucket.label
				break
			}
		}
	}

	if containsAny(lower, timingKeywords) {
		ctx.TimingQuestion = true
		ctx.QuestionType = "timing"
	}

	return ctx
}

func extractCrop(lower string) string {
	if nutsPattern.MatchString(lower) {
		return "Pecan Nuts"
	}
	for i, pattern := range cropPatterns {
		if pattern.MatchString(lower) {
			word := cropWords[i]
			if canon, ok := cropCanon[word]; ok {
				return canon
			}
			return capitalize(word)
		}
	}
	return ""
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

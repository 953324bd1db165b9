package intent

import "regexp"

// The keyword tables below are ordered; matching is always first-hit-wins
// so more specific variants must precede their prefixes ("afrikelp plus"
// before "afrikelp", "soybeans" before "soybean").

type productVariant struct {
	keyword   string
	canonical string
}

var productVariants = []productVariant{
	{"afrikelp plus", "AfriKelp Plus"},
	{"afrikelp", "AfriKelp Plus"},
	{"kelp plus", "AfriKelp Plus"},
	{"afrikelp+", "AfriKelp Plus"},
	{"blac-mag", "BlaC-Mag"},
	{"blacmag", "BlaC-Mag"},
	{"blac mag", "BlaC-Mag"},
	{"aquamate", "AquaMate"},
	{"aqua mate", "AquaMate"},
	{"aqua-mate", "AquaMate"},
	{"calsap", "Calsap"},
}

// cropWords is scanned in order with word-boundary matching; the first hit
// becomes the message's single crop.
var cropWords = []string{
	"soybeans", "soybean",
	"macadamias", "macadamia",
	"avocados", "avocado",
	"seedlings", "seedling",
	"pecans", "pecan",
	"subtropicals", "subtropical",
	"tomatoes", "tomato",
	"potatoes", "potato",
	"tobacco",
	"maize", "corn", "wheat",
	"lettuce", "cabbage",
	"onions", "onion",
	"carrots", "carrot",
	"spinach",
	"apples", "apple",
	"pears", "pear",
	"peaches", "peach",
	"plums", "plum",
	"cherries", "cherry",
	"grapes", "grape",
	"oranges", "orange",
	"lemons", "lemon",
	"grass", "pasture",
	"barley", "citrus", "deciduous", "nursery",
	"transplants", "transplant",
	"vegetables", "veggie",
	"fruits", "fruit",
	"avos",
	"soyas", "soya",
	"legumes", "legume",
	"beans", "bean",
	"peas", "pea",
}

var cropPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(cropWords))
	for i, word := range cropWords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return patterns
}()

// nutsPattern is checked before the crop list: a bare "nut"/"nuts" mention
// refers to pecans in this catalog.
var nutsPattern = regexp.MustCompile(`\b(nuts|nut)\b`)

// cropCanon maps a matched crop word to its catalog category. Words
// absent from the map fall back to simple capitalization.
var cropCanon = map[string]string{
	"vegetables": "Tomatoes & Vegetables",
	"veggie":     "Tomatoes & Vegetables",
	"tomato":     "Tomatoes & Vegetables",
	"tomatoes":   "Tomatoes & Vegetables",

	"potato":   "Potatoes",
	"potatoes": "Potatoes",

	"grass":   "Grass pastures",
	"pasture": "Grass pastures",

	"tobacco": "Field Tobacco",

	"maize": "Maize & Wheat",
	"corn":  "Maize & Wheat",
	"wheat": "Maize & Wheat",

	"apple":     "Deciduous Fruit",
	"apples":    "Deciduous Fruit",
	"pear":      "Deciduous Fruit",
	"pears":     "Deciduous Fruit",
	"peach":     "Deciduous Fruit",
	"peaches":   "Deciduous Fruit",
	"plum":      "Deciduous Fruit",
	"plums":     "Deciduous Fruit",
	"cherry":    "Deciduous Fruit",
	"cherries":  "Deciduous Fruit",
	"grape":     "Deciduous Fruit",
	"grapes":    "Deciduous Fruit",
	"citrus":    "Deciduous Fruit",
	"orange":    "Deciduous Fruit",
	"oranges":   "Deciduous Fruit",
	"lemon":     "Deciduous Fruit",
	"lemons":    "Deciduous Fruit",
	"deciduous": "Deciduous Fruit",
	"fruit":     "Deciduous Fruit",
	"fruits":    "Deciduous Fruit",

	"macadamia":    "Macadamias & Avos (Other Subtropicals)",
	"macadamias":   "Macadamias & Avos (Other Subtropicals)",
	"avocado":      "Macadamias & Avos (Other Subtropicals)",
	"avocados":     "Macadamias & Avos (Other Subtropicals)",
	"avos":         "Macadamias & Avos (Other Subtropicals)",
	"subtropical":  "Macadamias & Avos (Other Subtropicals)",
	"subtropicals": "Macadamias & Avos (Other Subtropicals)",

	"pecan":  "Pecan Nuts",
	"pecans": "Pecan Nuts",

	"seedling":    "Seedlings (Tobacco included)",
	"seedlings":   "Seedlings (Tobacco included)",
	"nursery":     "Seedlings (Tobacco included)",
	"transplant":  "Seedlings (Tobacco included)",
	"transplants": "Seedlings (Tobacco included)",

	"soya":     "Soyas and other legumes",
	"soyas":    "Soyas and other legumes",
	"soybean":  "Soyas and other legumes",
	"soybeans": "Soyas and other legumes",
	"legume":   "Soyas and other legumes",
	"legumes":  "Soyas and other legumes",
	"bean":     "Soyas and other legumes",
	"beans":    "Soyas and other legumes",
	"pea":      "Soyas and other legumes",
	"peas":     "Soyas and other legumes",
}

type applicationBucket struct {
	label    string
	keywords []string
}

var applicationBuckets = []applicationBucket{
	{ApplicationFoliar, []string{"foliar", "spray", "spraying", "leaf", "leaves"}},
	{ApplicationSoil, []string{"soil", "ground", "root", "roots", "planting"}},
	{ApplicationWater, []string{"water", "irrigation", "irrigate", "hydroponic"}},
}

type problemBucket struct {
	label    string
	keywords []string
}

var problemBuckets = []problemBucket{
	{ProblemPlantNutrition, []string{
		"plant nutrition", "nutrient deficiency", "nutrients needed",
		"feeding program", "npk requirements", "nutritional needs", "nutrition of",
	}},
	{ProblemFertilizerEfficiency, []string{
		"fertilizer efficiency", "efficient fertilizer",
		"effectiveness of fertilizer", "improve efficiency",
	}},
	{ProblemSoilHealth, []string{
		"disease control", "disease prevention", "fungus control",
		"pest control", "pest management", "health problems", "soil health",
	}},
	{ProblemSoilSalinity, []string{
		"soil salinity", "salt problems", "salty soil", "high salinity",
		"alkaline soil", "alkaline", "high ph", "ph too high",
	}},
	{ProblemSoilAcidity, []string{
		"soil acidity", "acid soil", "acidic soil", "low ph", "ph too low", "sour soil",
	}},
	{ProblemIrrigationEfficiency, []string{
		"irrigation efficiency", "water efficiency", "watering efficiency",
		"irrigation problems",
	}},
	{ProblemShelfLife, []string{
		"shelf life", "storage life", "preservation", "post harvest",
	}},
}

var timingKeywords = []string{
	"timing", "when should", "what time", "schedule", "frequency",
	"interval", "how often", "application timing", "spray timing",
	"fertilizer timing", "season", "seasonal", "before planting",
	"after planting", "during growing", "monthly", "weekly", "daily",
	"days apart", "weeks apart", "months apart", "how many times",
}

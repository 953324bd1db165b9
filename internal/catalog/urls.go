package catalog

// BaseURL is the public product site used when a product has no
// dedicated page.
const BaseURL = "https://freshnutrients.org"

// productURLs maps catalog product names to their webpage URLs.
var productURLs = map[string]string{
	"AfriKelp Plus":    "https://www.freshnutrients.org/our-products/afrikelp",
	"Calsap":           "https://www.freshnutrients.org/our-products/calsap",
	"FreshBugs Quorum": "https://www.freshnutrients.org/our-products/freshbugs-quorum",
	"Fresh P":          "https://www.freshnutrients.org/our-products/fresh-p",
	"Soft Cal":         "https://www.freshnutrients.org/our-products/softcal",
	"Soft Zinc":        "https://www.freshnutrients.org/our-products/soft-zn",
}

// ProductURL returns the webpage URL for a product name, falling back to
// the base site for products without a dedicated page.
func ProductURL(name string) string {
	if url, ok := productURLs[name]; ok {
		return url
	}
	return BaseURL
}

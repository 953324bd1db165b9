package catalog

// Product is a single row of the product catalog. A product may appear in
// several rows, once per crop/application/growth-stage combination.
type Product struct {
	ProductName     string `json:"product_name"`
	Crop            string `json:"crop"`
	Application     string `json:"application"`
	ApplicationType string `json:"application_type"`
	GrowthStage     string `json:"growth_stage"`
	Problem         string `json:"problem"`
	MIntervention   string `json:"m_intervention,omitempty"`
	Directions      string `json:"directions,omitempty"`
	Label           string `json:"label,omitempty"`
	MSDS            string `json:"msds,omitempty"`
	TechDoc         string `json:"tech_doc,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// Criteria filters a catalog search. Empty fields are not applied; matching
// is case-insensitive substring, not exact.
type Criteria struct {
	Crop            string
	ApplicationType string
	Problem         string
	Limit           int
}

// IsZero reports whether no filter field is set.
func (c Criteria) IsZero() bool {
	return c.Crop == "" && c.ApplicationType == "" && c.Problem == ""
}

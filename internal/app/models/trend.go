package models

// Curve is the learning-curve difficulty of a technology
type Curve string

const (
	CurveEasy   Curve = "Easy"
	CurveMedium Curve = "Medium"
	CurveHard   Curve = "Hard"
)

// TechStat is the adoption and demand of one technology, both 0-100
type TechStat struct {
	Name     string `json:"name"`
	Adoption int    `json:"adoption"`
	Demand   int    `json:"demand"`
	Curve    Curve  `json:"curve"`
}

// GrowthPoint is one year of the aggregated industry growth index
type GrowthPoint struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

// IndustryTrend is the technology-adoption catalogue shown on the trends view
type IndustryTrend struct {
	Stable     []string      `json:"stable"`
	Growing    []string      `json:"growing"`
	Emerging   []string      `json:"emerging"`
	Stats      []TechStat    `json:"stats"`
	GrowthData []GrowthPoint `json:"growthData"`
}

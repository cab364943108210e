// Package trends supplies the technology-adoption catalogue and renders it as charts.
package trends

import (
	"context"

	"github.com/yigit/curricuforge/internal/app/models"
)

// Provider returns the current industry trend catalogue
type Provider interface {
	Trends(ctx context.Context) (models.IndustryTrend, error)
}

// StaticProvider serves a fixed catalogue
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (*StaticProvider) Trends(context.Context) (models.IndustryTrend, error) {
	return Catalogue(), nil
}

// Catalogue returns a fresh copy of the built-in trend data
func Catalogue() models.IndustryTrend {
	return models.IndustryTrend{
		Stable:   []string{"Python", "AWS", "React", "PostgreSQL"},
		Growing:  []string{"Kubernetes", "TensorFlow", "Flutter", "LangChain"},
		Emerging: []string{"Rust", "Web3", "Edge Computing", "Quantum Computing"},
		Stats: []models.TechStat{
			{Name: "Python", Adoption: 95, Demand: 98, Curve: models.CurveEasy},
			{Name: "AWS", Adoption: 88, Demand: 92, Curve: models.CurveMedium},
			{Name: "React", Adoption: 90, Demand: 85, Curve: models.CurveMedium},
			{Name: "Kubernetes", Adoption: 65, Demand: 80, Curve: models.CurveHard},
			{Name: "TensorFlow", Adoption: 60, Demand: 75, Curve: models.CurveHard},
			{Name: "Rust", Adoption: 30, Demand: 55, Curve: models.CurveHard},
		},
		GrowthData: []models.GrowthPoint{
			{Year: "2018", Value: 40},
			{Year: "2019", Value: 45},
			{Year: "2020", Value: 55},
			{Year: "2021", Value: 70},
			{Year: "2022", Value: 85},
			{Year: "2023", Value: 92},
			{Year: "2024", Value: 98},
		},
	}
}

// MarketShare is one slice of the market distribution chart
type MarketShare struct {
	Name  string
	Value float64
	Color string
}

// MarketDistribution splits the market across the stable, growing and emerging tiers
func MarketDistribution() []MarketShare {
	return []MarketShare{
		{Name: "Stable", Value: 45, Color: "#4f46e5"},
		{Name: "Growing", Value: 35, Color: "#10b981"},
		{Name: "Emerging", Value: 20, Color: "#f59e0b"},
	}
}

// Empty is the catalogue shown when the provider fails
func Empty() models.IndustryTrend {
	return models.IndustryTrend{
		Stable:     []string{},
		Growing:    []string{},
		Emerging:   []string{},
		Stats:      []models.TechStat{},
		GrowthData: []models.GrowthPoint{},
	}
}

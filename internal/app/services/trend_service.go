package services

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/app/trends"
)

// TrendService defines the industry trend operations
type TrendService interface {
	GetTrends(ctx context.Context) models.IndustryTrend
	RenderChart(ctx context.Context, name string) ([]byte, error)
}

// trendServiceImpl implements the TrendService interface
type trendServiceImpl struct {
	provider trends.Provider
	charts   *trends.ChartRenderer
	logger   zerolog.Logger
}

// NewTrendService creates a new trend service instance
func NewTrendService(provider trends.Provider, charts *trends.ChartRenderer, logger zerolog.Logger) TrendService {
	return &trendServiceImpl{
		provider: provider,
		charts:   charts,
		logger:   logger.With().Str("component", "trend_service").Logger(),
	}
}

// GetTrends never fails: a provider error is logged and an empty
// catalogue returned in its place
func (s *trendServiceImpl) GetTrends(ctx context.Context) models.IndustryTrend {
	t, err := s.provider.Trends(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load industry trends, serving empty catalogue")
		return trends.Empty()
	}
	return t
}

// RenderChart draws the named chart as PNG
func (s *trendServiceImpl) RenderChart(ctx context.Context, name string) ([]byte, error) {
	kind, err := trends.ParseChart(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.charts.Render(&buf, kind, s.GetTrends(ctx)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

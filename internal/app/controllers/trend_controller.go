package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/curricuforge/internal/app/services"
	"github.com/yigit/curricuforge/internal/middleware"
)

// TrendController serves the industry trend catalogue
type TrendController struct {
	trendService services.TrendService
}

// NewTrendController creates a new TrendController
func NewTrendController(trendService services.TrendService) *TrendController {
	return &TrendController{
		trendService: trendService,
	}
}

// GetIndustryTrends returns the trend catalogue
// @Summary Industry trends
// @Description Returns technology adoption statistics. The body is the raw catalogue, not wrapped in the response envelope.
// @Tags trends
// @Produce json
// @Success 200 {object} models.IndustryTrend "Trend catalogue"
// @Router /industry-trends [get]
func (c *TrendController) GetIndustryTrends(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.trendService.GetTrends(ctx.Request.Context()))
}

// GetChart renders a trend chart
// @Summary Industry trend chart
// @Description Renders the growth line chart, the adoption/demand bar chart or the market distribution donut
// @Tags trends
// @Produce image/png
// @Param chart path string true "Chart file" Enums(growth.png, adoption.png, market.png)
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} dto.ErrorResponse "Unknown chart"
// @Router /industry-trends/charts/{chart} [get]
func (c *TrendController) GetChart(ctx *gin.Context) {
	name := strings.TrimSuffix(ctx.Param("chart"), ".png")

	png, err := c.trendService.RenderChart(ctx.Request.Context(), name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", "public, max-age=300")
	ctx.Data(http.StatusOK, "image/png", png)
}

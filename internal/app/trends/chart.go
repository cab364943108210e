package trends

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// ChartKind selects a trend chart
type ChartKind string

const (
	ChartGrowth   ChartKind = "growth"
	ChartAdoption ChartKind = "adoption"
	ChartMarket   ChartKind = "market"
)

// ParseChart validates a chart name
func ParseChart(name string) (ChartKind, error) {
	switch ChartKind(name) {
	case ChartGrowth, ChartAdoption, ChartMarket:
		return ChartKind(name), nil
	}
	return "", fmt.Errorf("%w: chart %q", apperrors.ErrUnsupportedFormat, name)
}

const (
	chartPadLeft   = 60.0
	chartPadRight  = 30.0
	chartPadTop    = 50.0
	chartPadBottom = 60.0
)

// ChartRenderer draws trend charts as PNG images
type ChartRenderer struct {
	Width  int
	Height int
	font   *truetype.Font
}

// NewChartRenderer parses the embedded Go font once; faces are created per render
func NewChartRenderer(width, height int) (*ChartRenderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart font: %w", err)
	}
	return &ChartRenderer{Width: width, Height: height, font: f}, nil
}

func (r *ChartRenderer) face(size float64) font.Face {
	return truetype.NewFace(r.font, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
}

// Render writes the chart of kind for t as PNG
func (r *ChartRenderer) Render(w io.Writer, kind ChartKind, t models.IndustryTrend) error {
	dc := gg.NewContext(r.Width, r.Height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	switch kind {
	case ChartGrowth:
		r.title(dc, "Industry Growth Index")
		r.growth(dc, t.GrowthData)
	case ChartAdoption:
		r.title(dc, "Adoption vs Demand")
		r.adoption(dc, t.Stats)
	case ChartMarket:
		r.title(dc, "Market Distribution")
		r.market(dc, MarketDistribution())
	default:
		return fmt.Errorf("%w: chart %q", apperrors.ErrUnsupportedFormat, kind)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func (r *ChartRenderer) title(dc *gg.Context, s string) {
	dc.SetFontFace(r.face(18))
	dc.SetHexColor("#1e1b4b")
	dc.DrawStringAnchored(s, float64(r.Width)/2, chartPadTop/2, 0.5, 0.5)
}

// plot returns the drawing area and draws the 0-100 axis with gridlines
func (r *ChartRenderer) plot(dc *gg.Context) (x0, y0, w, h float64) {
	x0, y0 = chartPadLeft, float64(r.Height)-chartPadBottom
	w = float64(r.Width) - chartPadLeft - chartPadRight
	h = float64(r.Height) - chartPadTop - chartPadBottom

	dc.SetFontFace(r.face(11))
	dc.SetLineWidth(1)
	for v := 0; v <= 100; v += 25 {
		y := y0 - h*float64(v)/100
		dc.SetHexColor("#e5e7eb")
		dc.DrawLine(x0, y, x0+w, y)
		dc.Stroke()
		dc.SetHexColor("#6b7280")
		dc.DrawStringAnchored(strconv.Itoa(v), x0-8, y, 1, 0.5)
	}
	dc.SetHexColor("#9ca3af")
	dc.DrawLine(x0, y0, x0+w, y0)
	dc.Stroke()
	return x0, y0, w, h
}

func (r *ChartRenderer) noData(dc *gg.Context) {
	dc.SetHexColor("#6b7280")
	dc.DrawStringAnchored("No data", float64(r.Width)/2, float64(r.Height)/2, 0.5, 0.5)
}

func (r *ChartRenderer) growth(dc *gg.Context, points []models.GrowthPoint) {
	x0, y0, w, h := r.plot(dc)
	if len(points) == 0 {
		r.noData(dc)
		return
	}

	at := func(i int) (float64, float64) {
		x := x0 + w/2
		if len(points) > 1 {
			x = x0 + w*float64(i)/float64(len(points)-1)
		}
		return x, y0 - h*clamp(points[i].Value)/100
	}

	dc.SetHexColor("#4f46e5")
	dc.SetLineWidth(3)
	for i := range points {
		x, y := at(i)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	for i, p := range points {
		x, y := at(i)
		dc.SetHexColor("#4f46e5")
		dc.DrawCircle(x, y, 4)
		dc.Fill()
		dc.SetHexColor("#374151")
		dc.DrawStringAnchored(p.Year, x, y0+16, 0.5, 0.5)
	}
}

func (r *ChartRenderer) adoption(dc *gg.Context, stats []models.TechStat) {
	x0, y0, w, h := r.plot(dc)
	if len(stats) == 0 {
		r.noData(dc)
		return
	}

	group := w / float64(len(stats))
	bar := group * 0.3
	for i, s := range stats {
		gx := x0 + group*float64(i) + group*0.2

		dc.SetHexColor("#4f46e5")
		ah := h * clamp(float64(s.Adoption)) / 100
		dc.DrawRectangle(gx, y0-ah, bar, ah)
		dc.Fill()

		dc.SetHexColor("#10b981")
		dh := h * clamp(float64(s.Demand)) / 100
		dc.DrawRectangle(gx+bar, y0-dh, bar, dh)
		dc.Fill()

		dc.SetHexColor("#374151")
		dc.DrawStringAnchored(s.Name, gx+bar, y0+16, 0.5, 0.5)
	}

	// legend
	lx := x0 + w - 170
	dc.SetHexColor("#4f46e5")
	dc.DrawRectangle(lx, chartPadTop-8, 12, 12)
	dc.Fill()
	dc.SetHexColor("#374151")
	dc.DrawStringAnchored("Adoption", lx+18, chartPadTop-2, 0, 0.5)
	dc.SetHexColor("#10b981")
	dc.DrawRectangle(lx+90, chartPadTop-8, 12, 12)
	dc.Fill()
	dc.SetHexColor("#374151")
	dc.DrawStringAnchored("Demand", lx+108, chartPadTop-2, 0, 0.5)
}

// donutLayout returns the centre and the ring radii of the market chart
func (r *ChartRenderer) donutLayout() (cx, cy, inner, outer float64) {
	cx = float64(r.Width) / 2
	cy = chartPadTop + (float64(r.Height)-chartPadTop-chartPadBottom)/2
	outer = math.Min(float64(r.Width), float64(r.Height)-chartPadTop-chartPadBottom) / 2
	return cx, cy, outer * 0.6, outer
}

func (r *ChartRenderer) market(dc *gg.Context, shares []MarketShare) {
	total := 0.0
	for _, s := range shares {
		total += s.Value
	}
	if total <= 0 {
		r.noData(dc)
		return
	}

	cx, cy, inner, outer := r.donutLayout()
	gap := gg.Radians(2.5)
	start := -math.Pi / 2
	for _, s := range shares {
		sweep := 2 * math.Pi * s.Value / total
		if s.Value > 0 {
			dc.SetHexColor(s.Color)
			dc.NewSubPath()
			dc.MoveTo(cx, cy)
			dc.DrawArc(cx, cy, outer, start+gap, start+sweep-gap)
			dc.ClosePath()
			dc.Fill()
		}
		start += sweep
	}
	dc.SetHexColor("#ffffff")
	dc.DrawCircle(cx, cy, inner)
	dc.Fill()

	// legend
	dc.SetFontFace(r.face(12))
	lx := cx - float64(len(shares))*45
	ly := float64(r.Height) - chartPadBottom/2
	for i, s := range shares {
		x := lx + float64(i)*90
		dc.SetHexColor(s.Color)
		dc.DrawRectangle(x, ly-6, 12, 12)
		dc.Fill()
		dc.SetHexColor("#374151")
		dc.DrawStringAnchored(fmt.Sprintf("%s %.0f%%", s.Name, 100*s.Value/total), x+18, ly, 0, 0.5)
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

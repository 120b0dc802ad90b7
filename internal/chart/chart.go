// Package chart renders analysis plots with gonum/plot and shows them.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"HedgeLens/internal/model"
)

// Figure size used by Save.
const (
	Width  = 10 * vg.Inch
	Height = 5 * vg.Inch
)

var fitColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}

func seriesXYs(s *model.PriceSeries) plotter.XYs {
	pts := make(plotter.XYs, len(s.Bars))
	for i, b := range s.Bars {
		pts[i].X = float64(b.Time.Unix())
		pts[i].Y = b.Close
	}
	return pts
}

// PricePlot draws both raw closing-price series against time.
func PricePlot(a *model.Analysis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s and %s Closing Prices", a.Series1.Symbol, a.Series2.Symbol)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price"
	p.X.Tick.Marker = plot.TimeTicks{Format: model.DateLayout}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range []*model.PriceSeries{a.Series1, a.Series2} {
		line, err := plotter.NewLine(seriesXYs(s))
		if err != nil {
			return nil, fmt.Errorf("price line %s: %w", s.Symbol, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.2)
		p.Add(line)
		p.Legend.Add(s.Symbol, line)
	}
	return p, nil
}

// ReturnsPlot scatters returns2 against returns1 and overlays the fitted line.
func ReturnsPlot(a *model.Analysis) (*plot.Plot, error) {
	s1, s2 := a.Request.Symbol1, a.Request.Symbol2
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Daily Returns: %s vs %s", s2, s1)
	p.X.Label.Text = fmt.Sprintf("%s daily return", s1)
	p.Y.Label.Text = fmt.Sprintf("%s daily return", s2)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(a.Returns1))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := range a.Returns1 {
		pts[i].X = a.Returns1[i]
		pts[i].Y = a.Returns2[i]
		minX = math.Min(minX, pts[i].X)
		maxX = math.Max(maxX, pts[i].X)
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("returns scatter: %w", err)
	}
	sc.GlyphStyle.Color = plotutil.Color(0)
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)
	p.Legend.Add("Daily returns", sc)

	reg := a.Regression
	fit := plotter.NewFunction(func(x float64) float64 { return reg.Slope*x + reg.Intercept })
	fit.XMin, fit.XMax = minX, maxX
	fit.Color = fitColor
	fit.Width = vg.Points(1.5)
	p.Add(fit)
	p.Legend.Add(fmt.Sprintf("y = %.2fx + %.4f", reg.Slope, reg.Intercept), fit)
	return p, nil
}

// SinePlot draws sin(x) sampled at 100 points over [0, 2π].
func SinePlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = "Look, a Sine function"
	fn := plotter.NewFunction(math.Sin)
	fn.XMin, fn.XMax = 0, 2*math.Pi
	fn.Samples = 100
	fn.Color = plotutil.Color(0)
	p.Add(fn)
	p.X.Min, p.X.Max = 0, 2*math.Pi
	p.Y.Min, p.Y.Max = -1.1, 1.1
	return p
}

// Save writes p to dir/name.format and returns the path. The format is
// any extension gonum/plot understands, such as png, svg or pdf.
func Save(p *plot.Plot, dir, name, format string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create plot dir: %w", err)
	}
	path := filepath.Join(dir, FileName(name)+"."+strings.TrimPrefix(format, "."))
	if err := p.Save(Width, Height, path); err != nil {
		return "", fmt.Errorf("save plot %s: %w", path, err)
	}
	return path, nil
}

// FileName replaces characters that are unsafe in file names, such as the
// caret in index tickers.
func FileName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

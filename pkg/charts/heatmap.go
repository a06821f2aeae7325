package charts

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/trendlens/trendlens/pkg/dataset"
)

// Heatmap layout constants, in pixels.
const (
	heatmapMargin    = 80
	heatmapTitlePad  = 40
	heatmapColorLow  = 0xff3b4cc0 // blue, r = -1
	heatmapColorHigh = 0xffb40426 // red, r = +1
)

// renderHeatmap draws the pairwise correlation matrix of the numeric columns
// as an annotated grid. Requires at least two numeric columns.
func renderHeatmap(d *dataset.Dataset, c dataset.Classification, opts Options) ([]byte, Outcome, error) {
	if !c.HasNumeric(2) {
		return nil, OutcomeSkippedInsufficientNumeric, nil
	}

	m := dataset.Correlations(d, c)
	n := len(m.Columns)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(fmt.Sprintf("Heatmap - %s", d.Source()),
		float64(opts.Width)/2, heatmapTitlePad/2, 0.5, 0.5)

	gridW := float64(opts.Width) - 2*heatmapMargin
	gridH := float64(opts.Height) - heatmapTitlePad - 2*heatmapMargin
	cellW := gridW / float64(n)
	cellH := gridH / float64(n)
	x0 := float64(heatmapMargin)
	y0 := float64(heatmapTitlePad + heatmapMargin)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := x0 + float64(j)*cellW
			y := y0 + float64(i)*cellH
			v := m.Values[i][j]

			r, g, b := corrColor(v)
			dc.SetRGB(r, g, b)
			dc.DrawRectangle(x, y, cellW, cellH)
			dc.Fill()

			label := "NaN"
			if !math.IsNaN(v) {
				label = fmt.Sprintf("%.2f", v)
			}
			if math.Abs(v) > 0.6 {
				dc.SetRGB(1, 1, 1)
			} else {
				dc.SetRGB(0.1, 0.1, 0.1)
			}
			dc.DrawStringAnchored(label, x+cellW/2, y+cellH/2, 0.5, 0.5)
		}
	}

	// Grid lines.
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(1)
	for k := 0; k <= n; k++ {
		dc.DrawLine(x0+float64(k)*cellW, y0, x0+float64(k)*cellW, y0+gridH)
		dc.DrawLine(x0, y0+float64(k)*cellH, x0+gridW, y0+float64(k)*cellH)
	}
	dc.Stroke()

	// Column labels on the top and left edges.
	dc.SetRGB(0.1, 0.1, 0.1)
	for k, name := range m.Columns {
		dc.DrawStringAnchored(name, x0+(float64(k)+0.5)*cellW, y0-12, 0.5, 0.5)
		dc.DrawStringAnchored(name, x0-8, y0+(float64(k)+0.5)*cellH, 1, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return fault(KindHeatmap, err)
	}
	return buf.Bytes(), OutcomeRendered, nil
}

// corrColor maps a correlation in [-1, 1] to a coolwarm-style color:
// blue for -1, white for 0, red for +1. NaN maps to gray.
func corrColor(v float64) (r, g, b float64) {
	if math.IsNaN(v) {
		return 0.8, 0.8, 0.8
	}
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	lr, lg, lb := unpackRGB(heatmapColorLow)
	hr, hg, hb := unpackRGB(heatmapColorHigh)
	if v < 0 {
		t := -v
		return lerp(1, lr, t), lerp(1, lg, t), lerp(1, lb, t)
	}
	t := v
	return lerp(1, hr, t), lerp(1, hg, t), lerp(1, hb, t)
}

// unpackRGB splits a 0xAARRGGBB constant into [0, 1] components.
func unpackRGB(c uint32) (r, g, b float64) {
	return float64((c >> 16) & 0xff) / 255,
		float64((c >> 8) & 0xff) / 255,
		float64(c & 0xff) / 255
}

// lerp interpolates between a and b by t in [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

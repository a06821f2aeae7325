package charts

import (
	"bytes"

	"github.com/fogleman/gg"
)

// blankCanvas renders a white canvas with a centered title and a thin border.
// Used as the degraded form of the overview charts.
func blankCanvas(title string, width, height int) ([]byte, error) {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, float64(width)-1, float64(height)-1)
	dc.Stroke()

	dc.SetRGB(0.4, 0.4, 0.4)
	dc.DrawStringAnchored(title, float64(width)/2, float64(height)/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package report

import (
	"strings"
	"testing"

	"github.com/trendlens/trendlens/pkg/moments"
)

func TestText(t *testing.T) {
	m := moments.Moments{Mean: 23.456, StdDev: 4.821, Skewness: 1.5, ExcessKurtosis: -0.25}
	s := moments.ShapeOf(m)

	got := Text("mpg", m, s)
	want := "For the attribute mpg:\n" +
		"Mean = 23.46, Standard Deviation = 4.82, Skewness = 1.50, and Excess Kurtosis = -0.25.\n" +
		"The data is right-skewed and platykurtic."

	if got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestTextDeterministic(t *testing.T) {
	m := moments.Moments{Mean: 1, StdDev: 2, Skewness: 0, ExcessKurtosis: 0}
	s := moments.ShapeOf(m)
	if Text("x", m, s) != Text("x", m, s) {
		t.Error("Text must be deterministic for identical input")
	}
}

func TestTextSymmetrical(t *testing.T) {
	m := moments.Moments{}
	got := Text("v", m, moments.ShapeOf(m))
	if !strings.Contains(got, "symmetrical and mesokurtic") {
		t.Errorf("zero moments should read symmetrical/mesokurtic, got %q", got)
	}
}

func TestStyledSameWording(t *testing.T) {
	m := moments.Moments{Mean: 10, StdDev: 2, Skewness: -1, ExcessKurtosis: 3}
	s := moments.ShapeOf(m)

	styled := Styled("price", m, s)
	for _, want := range []string{"For the attribute price:", "10.00", "-1.00", "left-skewed", "leptokurtic"} {
		if !strings.Contains(styled, want) {
			t.Errorf("Styled output missing %q", want)
		}
	}
}

package moments

// Qualitative labels for the skew direction of a distribution.
const (
	SkewRight   = "right-skewed"
	SkewLeft    = "left-skewed"
	SkewNone    = "symmetrical"
	KurtHeavy   = "leptokurtic"
	KurtLight   = "platykurtic"
	KurtNeutral = "mesokurtic"
)

// Shape is the qualitative description of a distribution derived from its
// moments.
type Shape struct {
	Skew     string
	Kurtosis string
}

// ShapeOf maps a (skewness, excess kurtosis) pair to qualitative labels.
//
// The classification thresholds sit exactly at zero with no tolerance band:
// a skewness of exactly 0.0 is symmetrical even though floating-point noise
// rarely produces one in practice.
func ShapeOf(m Moments) Shape {
	s := Shape{Skew: SkewNone, Kurtosis: KurtNeutral}
	switch {
	case m.Skewness > 0:
		s.Skew = SkewRight
	case m.Skewness < 0:
		s.Skew = SkewLeft
	}
	switch {
	case m.ExcessKurtosis > 0:
		s.Kurtosis = KurtHeavy
	case m.ExcessKurtosis < 0:
		s.Kurtosis = KurtLight
	}
	return s
}

package domain

// Band classifies a readiness score into one of four display tiers.
type Band string

const (
	BandExcellent        Band = "excellent"
	BandGood             Band = "good"
	BandModerate         Band = "moderate"
	BandNeedsImprovement Band = "needs improvement"
)

// BandFor maps a 0-100 readiness score onto its tier. Boundaries are
// inclusive at 80, 60 and 40.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandModerate
	default:
		return BandNeedsImprovement
	}
}

// Label returns the band's display form.
func (b Band) Label() string {
	switch b {
	case BandExcellent:
		return "EXCELLENT"
	case BandGood:
		return "GOOD"
	case BandModerate:
		return "MODERATE"
	default:
		return "NEEDS IMPROVEMENT"
	}
}

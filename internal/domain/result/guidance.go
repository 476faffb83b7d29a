package result

import "github.com/cogwell/cogniscreen/internal/domain/scoring"

// Guidance is the presentation copy shown with a risk level. RiskScore is the
// representative 0-100 risk gauge position for the level.
type Guidance struct {
	Level           scoring.Level `json:"level"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	RiskScore       int           `json:"risk_score"`
	Recommendations []string      `json:"recommendations"`
}

// GuidanceFor returns the guidance copy for a risk level. Unknown levels fall
// back to moderate.
func GuidanceFor(level scoring.Level) Guidance {
	switch level {
	case scoring.LevelLow:
		return Guidance{
			Level:       scoring.LevelLow,
			Title:       "Low Risk",
			Description: "Your assessment results indicate healthy cognitive function.",
			RiskScore:   25,
			Recommendations: []string{
				"Continue maintaining a healthy lifestyle",
				"Stay mentally active with puzzles and learning",
				"Consider a follow-up assessment in 12 months",
			},
		}
	case scoring.LevelHigh:
		return Guidance{
			Level:       scoring.LevelHigh,
			Title:       "Higher Risk",
			Description: "Your results suggest patterns that warrant medical attention.",
			RiskScore:   75,
			Recommendations: []string{
				"Consult with a healthcare professional soon",
				"Share these results with your doctor",
				"Consider comprehensive cognitive evaluation",
				"Stay connected with family and caregivers",
			},
		}
	default:
		return Guidance{
			Level:       scoring.LevelModerate,
			Title:       "Moderate Risk",
			Description: "Some patterns suggest potential cognitive changes worth monitoring.",
			RiskScore:   42,
			Recommendations: []string{
				"Schedule a consultation with your healthcare provider",
				"Consider a follow-up assessment in 3-6 months",
				"Engage in regular cognitive exercises",
				"Maintain social connections and physical activity",
			},
		}
	}
}

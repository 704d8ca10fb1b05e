package taxonomy

// Band is one proficiency level on the four-step cognitive scale used across
// the skill matrix. Intensity grows with cognitive demand and is the value
// every threshold comparison works on.
type Band struct {
	Code        string
	Label       string
	Description string
	Intensity   int
}

var (
	Conceptual = Band{
		Code:        "CU",
		Label:       "Conceptual",
		Description: "Can the candidate define and explain concepts?",
		Intensity:   1,
	}
	Application = Band{
		Code:        "AP",
		Label:       "Application",
		Description: "Can the candidate implement code directly in a standard scenario?",
		Intensity:   2,
	}
	Analysis = Band{
		Code:        "AS",
		Label:       "Analysis",
		Description: "Can the candidate compare approaches and identify components and relationships?",
		Intensity:   3,
	}
	Evaluation = Band{
		Code:        "EV",
		Label:       "Evaluation",
		Description: "Can the candidate justify trade-offs and evaluate competing solutions?",
		Intensity:   4,
	}
)

// Bands returns all four bands in ascending cognitive order.
func Bands() []Band {
	return []Band{Conceptual, Application, Analysis, Evaluation}
}

// BandKeywords pairs a band with the lowercased substrings that resolve to it.
type BandKeywords struct {
	Band     Band
	Keywords []string
}

// matchOrder is evaluated top to bottom, highest cognitive level first, so a
// short code like "ap" can never shadow a higher label such as "evaluation".
var matchOrder = []BandKeywords{
	{Band: Evaluation, Keywords: []string{"ev", "evaluation", "expert", "advanced+", "advanced +"}},
	{Band: Analysis, Keywords: []string{"as", "analysis", "advanced", "upper intermediate", "upper-intermediate", "high"}},
	{Band: Application, Keywords: []string{"ap", "application", "intermediate", "medium", "moderate"}},
	{Band: Conceptual, Keywords: []string{"cu", "conceptual", "beginner", "basic", "low", "foundational"}},
}

// KeywordTable exposes the classification table in match priority order so
// tests can enumerate every keyword against its expected band.
func KeywordTable() []BandKeywords {
	out := make([]BandKeywords, 0, len(matchOrder))
	for _, e := range matchOrder {
		keys := make([]string, len(e.Keywords))
		copy(keys, e.Keywords)
		out = append(out, BandKeywords{Band: e.Band, Keywords: keys})
	}
	return out
}

package taxonomy

import "strings"

type Kind int

const (
	// Absent means no raw value was supplied for the cell.
	Absent Kind = iota
	// Unresolved means a raw value was supplied but matched no band.
	Unresolved
	// Resolved means the raw value mapped to a concrete band.
	Resolved
)

// Outcome is the result of classifying one raw proficiency label. The raw
// text is carried for unresolved values so the operator still sees them.
type Outcome struct {
	Kind Kind
	Band Band
	Raw  string
}

func (o Outcome) IsResolved() bool {
	return o.Kind == Resolved
}

// Classify maps a free-text proficiency label onto a band. It is total:
// blank input is Absent, unmatched input is Unresolved with the original
// text preserved, and it never errors.
func Classify(raw string) Outcome {
	n := strings.ToLower(strings.TrimSpace(raw))
	if n == "" {
		return Outcome{Kind: Absent}
	}
	for _, e := range matchOrder {
		for _, k := range e.Keywords {
			if strings.Contains(n, k) {
				return Outcome{Kind: Resolved, Band: e.Band, Raw: raw}
			}
		}
	}
	return Outcome{Kind: Unresolved, Raw: raw}
}

// ClassifyValue handles nullable source cells; a nil value is Absent.
func ClassifyValue(raw *string) Outcome {
	if raw == nil {
		return Outcome{Kind: Absent}
	}
	return Classify(*raw)
}

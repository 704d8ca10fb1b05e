package insight

import (
	"sort"

	"placement-intel/internal/domain/matrix"
	"placement-intel/internal/domain/taxonomy"
)

// DisplayCap bounds each insight list for the dashboard panels. The
// aggregation rules themselves are unbounded; callers truncate with Capped.
const DisplayCap = 4

// MinRoster is the smallest company selection comparative insights are
// defined for.
const MinRoster = 2

// MaxRoster is the largest selection the dashboard compares at once.
const MaxRoster = 5

type MustHave struct {
	Skill     matrix.SkillDefinition `json:"skill"`
	Intensity int                    `json:"intensity"`
}

type Niche struct {
	Skill   matrix.SkillDefinition `json:"skill"`
	Company string                 `json:"company"`
}

type Insights struct {
	HighStakes []matrix.SkillDefinition `json:"high_stakes"`
	MustHaves  []MustHave               `json:"must_haves"`
	Niches     []Niche                  `json:"niches"`
}

// SkillStat summarizes one skill across the roster, used by the matrix view.
type SkillStat struct {
	Skill              matrix.SkillDefinition `json:"skill"`
	ActiveCount        int                    `json:"active_count"`
	HighIntensityCount int                    `json:"high_intensity_count"`
	AverageIntensity   float64                `json:"average_intensity"`
}

// Analyze computes the three strategic insight sets over the selected roster.
// A roster below two companies or an empty catalog yields empty sets; that is
// a defined result, not an error. Order: High Stakes follows catalog order,
// Must-Haves sort by intensity count descending with catalog-order ties.
func Analyze(skills []matrix.SkillDefinition, roster []matrix.CompanyRow) Insights {
	out := Insights{
		HighStakes: make([]matrix.SkillDefinition, 0),
		MustHaves:  make([]MustHave, 0),
		Niches:     make([]Niche, 0),
	}
	if len(roster) < MinRoster {
		return out
	}

	majority := (len(roster) + 1) / 2

	for _, skill := range skills {
		outcomes := classifyAcross(skill, roster)

		active := 0
		highIntensity := 0
		for _, o := range outcomes {
			if !o.IsResolved() {
				continue
			}
			active++
			if o.Band.Intensity >= taxonomy.Analysis.Intensity {
				highIntensity++
			}
		}
		if active == 0 {
			continue
		}

		if active == len(roster) {
			out.HighStakes = append(out.HighStakes, skill)
		}

		if highIntensity >= majority {
			out.MustHaves = append(out.MustHaves, MustHave{Skill: skill, Intensity: highIntensity})
		}

		if active == 1 {
			for i, o := range outcomes {
				if !o.IsResolved() {
					continue
				}
				if o.Band.Intensity >= taxonomy.Analysis.Intensity {
					out.Niches = append(out.Niches, Niche{Skill: skill, Company: roster[i].CompanyName})
				}
				break
			}
		}
	}

	sort.SliceStable(out.MustHaves, func(i, j int) bool {
		return out.MustHaves[i].Intensity > out.MustHaves[j].Intensity
	})

	return out
}

// Capped truncates each set to the display bound without recomputing.
func (in Insights) Capped() Insights {
	return Insights{
		HighStakes: capSkills(in.HighStakes),
		MustHaves:  in.MustHaves[:minInt(len(in.MustHaves), DisplayCap)],
		Niches:     in.Niches[:minInt(len(in.Niches), DisplayCap)],
	}
}

// Stats produces per-skill roster summaries for the matrix view. The average
// is over resolved bands only and guards the empty case: no active company
// means 0, never NaN.
func Stats(skills []matrix.SkillDefinition, roster []matrix.CompanyRow) []SkillStat {
	out := make([]SkillStat, 0, len(skills))
	for _, skill := range skills {
		stat := SkillStat{Skill: skill}
		sum := 0
		for _, o := range classifyAcross(skill, roster) {
			if !o.IsResolved() {
				continue
			}
			stat.ActiveCount++
			sum += o.Band.Intensity
			if o.Band.Intensity >= taxonomy.Analysis.Intensity {
				stat.HighIntensityCount++
			}
		}
		if stat.ActiveCount > 0 {
			stat.AverageIntensity = float64(sum) / float64(stat.ActiveCount)
		}
		out = append(out, stat)
	}
	return out
}

func classifyAcross(skill matrix.SkillDefinition, roster []matrix.CompanyRow) []taxonomy.Outcome {
	outcomes := make([]taxonomy.Outcome, len(roster))
	for i, row := range roster {
		raw, ok := matrix.ResolveSkillValue(row, skill)
		if !ok {
			outcomes[i] = taxonomy.Outcome{Kind: taxonomy.Absent}
			continue
		}
		outcomes[i] = taxonomy.Classify(raw)
	}
	return outcomes
}

func capSkills(s []matrix.SkillDefinition) []matrix.SkillDefinition {
	return s[:minInt(len(s), DisplayCap)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

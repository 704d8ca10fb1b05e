package insight

import (
	"testing"

	"placement-intel/internal/domain/matrix"
)

func strPtr(s string) *string { return &s }

func skill(id int64, name, key string) matrix.SkillDefinition {
	return matrix.SkillDefinition{ID: id, Name: name, ShortKey: key}
}

func row(name string, levels map[string]*string) matrix.CompanyRow {
	return matrix.CompanyRow{CompanyName: name, Levels: levels}
}

func TestAnalyze_RosterOfOneIsEmpty(t *testing.T) {
	skills := []matrix.SkillDefinition{skill(1, "Coding", "coding")}
	roster := []matrix.CompanyRow{row("Acme", map[string]*string{"coding": strPtr("Advanced")})}

	got := Analyze(skills, roster)
	if len(got.HighStakes) != 0 || len(got.MustHaves) != 0 || len(got.Niches) != 0 {
		t.Fatalf("roster of one must yield empty sets: %+v", got)
	}
	if got.HighStakes == nil || got.MustHaves == nil || got.Niches == nil {
		t.Fatalf("sets must be empty, not nil")
	}
}

func TestAnalyze_EmptyCatalogIsEmpty(t *testing.T) {
	roster := []matrix.CompanyRow{
		row("Acme", map[string]*string{"coding": strPtr("Advanced")}),
		row("Globex", map[string]*string{"coding": strPtr("Beginner")}),
	}
	got := Analyze(nil, roster)
	if len(got.HighStakes) != 0 || len(got.MustHaves) != 0 || len(got.Niches) != 0 {
		t.Fatalf("empty catalog must yield empty sets: %+v", got)
	}
}

func TestAnalyze_HighStakes_TwoCompanies(t *testing.T) {
	skills := []matrix.SkillDefinition{skill(1, "Data Structures", "dsa")}
	roster := []matrix.CompanyRow{
		row("Acme", map[string]*string{"dsa": strPtr("Advanced")}),
		row("Globex", map[string]*string{"DSA": strPtr("intermediate")}),
	}

	got := Analyze(skills, roster)
	if len(got.HighStakes) != 1 || got.HighStakes[0].ShortKey != "dsa" {
		t.Fatalf("dsa must be high stakes for a fully active roster: %+v", got.HighStakes)
	}
}

func TestAnalyze_MustHaves_MajorityThreshold(t *testing.T) {
	// 4 companies, exactly 2 at Analysis-or-higher: ceil(4/2) == 2 qualifies.
	skills := []matrix.SkillDefinition{skill(1, "System Design", "system_design")}
	roster := []matrix.CompanyRow{
		row("A", map[string]*string{"system_design": strPtr("Advanced")}),
		row("B", map[string]*string{"system_design": strPtr("Expert")}),
		row("C", map[string]*string{"system_design": strPtr("Beginner")}),
		row("D", map[string]*string{}),
	}

	got := Analyze(skills, roster)
	if len(got.MustHaves) != 1 {
		t.Fatalf("expected one must-have, got %+v", got.MustHaves)
	}
	if got.MustHaves[0].Intensity != 2 {
		t.Fatalf("expected intensity count 2, got %d", got.MustHaves[0].Intensity)
	}
}

func TestAnalyze_MustHaves_SortedByIntensityDesc(t *testing.T) {
	skills := []matrix.SkillDefinition{
		skill(1, "Coding", "coding"),
		skill(2, "SQL", "sql"),
	}
	roster := []matrix.CompanyRow{
		row("A", map[string]*string{"coding": strPtr("Advanced"), "sql": strPtr("Expert")}),
		row("B", map[string]*string{"coding": strPtr("Beginner"), "sql": strPtr("Advanced")}),
	}

	got := Analyze(skills, roster)
	if len(got.MustHaves) != 2 {
		t.Fatalf("expected two must-haves, got %+v", got.MustHaves)
	}
	if got.MustHaves[0].Skill.ShortKey != "sql" || got.MustHaves[0].Intensity != 2 {
		t.Fatalf("sql (2 high) must sort first: %+v", got.MustHaves)
	}
	if got.MustHaves[1].Skill.ShortKey != "coding" || got.MustHaves[1].Intensity != 1 {
		t.Fatalf("coding (1 high) must sort second: %+v", got.MustHaves)
	}
}

func TestAnalyze_StrategicNiche(t *testing.T) {
	skills := []matrix.SkillDefinition{skill(1, "AI Native Engineering", "ai_native_engineering")}
	roster := []matrix.CompanyRow{
		row("Acme", map[string]*string{}),
		row("Globex", map[string]*string{"ai_native_engineering": strPtr("Expert")}),
		row("Initech", map[string]*string{}),
	}

	got := Analyze(skills, roster)
	if len(got.Niches) != 1 {
		t.Fatalf("expected one niche, got %+v", got.Niches)
	}
	if got.Niches[0].Company != "Globex" || got.Niches[0].Skill.ShortKey != "ai_native_engineering" {
		t.Fatalf("niche must pair skill with its sole company: %+v", got.Niches[0])
	}
}

func TestAnalyze_NicheRequiresHighIntensity(t *testing.T) {
	skills := []matrix.SkillDefinition{skill(1, "Aptitude", "aptitude")}
	roster := []matrix.CompanyRow{
		row("Acme", map[string]*string{"aptitude": strPtr("Beginner")}),
		row("Globex", map[string]*string{}),
	}

	got := Analyze(skills, roster)
	if len(got.Niches) != 0 {
		t.Fatalf("a sole Conceptual-level company is not a niche: %+v", got.Niches)
	}
}

func TestAnalyze_UnresolvedExcludedFromActive(t *testing.T) {
	skills := []matrix.SkillDefinition{skill(1, "Coding", "coding")}
	roster := []matrix.CompanyRow{
		row("Acme", map[string]*string{"coding": strPtr("Advanced")}),
		row("Globex", map[string]*string{"coding": strPtr("???")}),
	}

	got := Analyze(skills, roster)
	if len(got.HighStakes) != 0 {
		t.Fatalf("unresolved cells must not count toward high stakes: %+v", got.HighStakes)
	}
	// One active company at Analysis level: a niche.
	if len(got.Niches) != 1 || got.Niches[0].Company != "Acme" {
		t.Fatalf("expected Acme niche, got %+v", got.Niches)
	}
}

func TestCapped_TruncatesWithoutRecomputing(t *testing.T) {
	skills := make([]matrix.SkillDefinition, 0, 6)
	levelsA := map[string]*string{}
	levelsB := map[string]*string{}
	for i := 0; i < 6; i++ {
		key := string(rune('a'+i)) + "_skill"
		skills = append(skills, skill(int64(i+1), key, key))
		levelsA[key] = strPtr("Advanced")
		levelsB[key] = strPtr("Advanced")
	}
	roster := []matrix.CompanyRow{row("A", levelsA), row("B", levelsB)}

	full := Analyze(skills, roster)
	if len(full.HighStakes) != 6 || len(full.MustHaves) != 6 {
		t.Fatalf("full sets must be unbounded: %d/%d", len(full.HighStakes), len(full.MustHaves))
	}

	capped := full.Capped()
	if len(capped.HighStakes) != DisplayCap || len(capped.MustHaves) != DisplayCap {
		t.Fatalf("capped sets must honor the display bound: %+v", capped)
	}
	if capped.HighStakes[0].ShortKey != "a_skill" {
		t.Fatalf("cap must keep catalog order: %+v", capped.HighStakes)
	}
}

func TestStats_AverageGuardsDivisionByZero(t *testing.T) {
	skills := []matrix.SkillDefinition{
		skill(1, "Coding", "coding"),
		skill(2, "Ghost Skill", "ghost_skill"),
	}
	roster := []matrix.CompanyRow{
		row("Acme", map[string]*string{"coding": strPtr("Advanced")}),
		row("Globex", map[string]*string{"coding": strPtr("Beginner")}),
	}

	stats := Stats(skills, roster)
	if len(stats) != 2 {
		t.Fatalf("expected stats per catalog skill, got %d", len(stats))
	}
	if stats[0].ActiveCount != 2 || stats[0].AverageIntensity != 2.0 {
		t.Fatalf("coding stats wrong: %+v", stats[0])
	}
	if stats[1].ActiveCount != 0 || stats[1].AverageIntensity != 0 {
		t.Fatalf("skill with no data must average 0, not NaN: %+v", stats[1])
	}
}

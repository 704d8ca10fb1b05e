package matrix

import "testing"

func strPtr(s string) *string { return &s }

func TestCleanKey(t *testing.T) {
	cases := map[string]string{
		"System Design & Architecture":  "system_design_and_architecture",
		"data  structures   algorithms": "data_structures_algorithms",
		"SQL & Design":                  "sql_and_design",
		"Coding":                        "coding",
		"already_clean_key":             "already_clean_key",
		"  padded  ":                    "padded",
		"C++ (Advanced)":                "c_advanced",
	}
	for in, want := range cases {
		if got := CleanKey(in); got != want {
			t.Fatalf("CleanKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveSkillValue_ExactKey(t *testing.T) {
	row := CompanyRow{CompanyName: "Acme", Levels: map[string]*string{
		"dsa": strPtr("Advanced"),
	}}
	got, ok := ResolveSkillValue(row, SkillDefinition{ShortKey: "dsa"})
	if !ok || got != "Advanced" {
		t.Fatalf("expected exact hit, got %q ok=%v", got, ok)
	}
}

func TestResolveSkillValue_CaseInsensitiveScan(t *testing.T) {
	row := CompanyRow{CompanyName: "Globex", Levels: map[string]*string{
		"DSA": strPtr("intermediate"),
	}}
	got, ok := ResolveSkillValue(row, SkillDefinition{ShortKey: "dsa"})
	if !ok || got != "intermediate" {
		t.Fatalf("expected case-insensitive hit, got %q ok=%v", got, ok)
	}
}

func TestResolveSkillValue_PunctuationTolerant(t *testing.T) {
	row := CompanyRow{CompanyName: "Initech", Levels: map[string]*string{
		"System Design & Architecture": strPtr("Expert"),
	}}
	got, ok := ResolveSkillValue(row, SkillDefinition{ShortKey: "system_design_and_architecture"})
	if !ok || got != "Expert" {
		t.Fatalf("expected cleaned-key hit, got %q ok=%v", got, ok)
	}
}

func TestResolveSkillValue_AbsentStates(t *testing.T) {
	row := CompanyRow{CompanyName: "Umbrella", Levels: map[string]*string{
		"coding": nil,
		"oop":    strPtr("   "),
	}}

	if _, ok := ResolveSkillValue(row, SkillDefinition{ShortKey: "coding"}); ok {
		t.Fatalf("null cell must be absent")
	}
	if _, ok := ResolveSkillValue(row, SkillDefinition{ShortKey: "oop"}); ok {
		t.Fatalf("blank cell must be absent")
	}
	if _, ok := ResolveSkillValue(row, SkillDefinition{ShortKey: "networking"}); ok {
		t.Fatalf("missing key must be absent")
	}
}

func TestHumanize(t *testing.T) {
	if got := Humanize("operating_system"); got != "Operating System" {
		t.Fatalf("Humanize = %q", got)
	}
}

func TestColumns_CatalogOrderThenExtras(t *testing.T) {
	skills := []SkillDefinition{
		{ID: 1, Name: "Coding", ShortKey: "coding"},
		{ID: 2, Name: "Data Structures & Algorithms", ShortKey: "data_structures_and_algorithms"},
		{ID: 3, Name: "Operating System", ShortKey: "operating_system"},
	}
	rows := []CompanyRow{{
		CompanyName: "Acme",
		Levels: map[string]*string{
			"coding":                         strPtr("AP"),
			"data_structures_and_algorithms": strPtr("AS"),
			"quantum_basket_weaving":         strPtr("EV"),
			"id":                             strPtr("7"), // meta, must be skipped
		},
	}}

	cols := Columns(skills, rows)
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d: %+v", len(cols), cols)
	}
	if cols[0].Key != "coding" || cols[1].Key != "data_structures_and_algorithms" {
		t.Fatalf("catalog columns out of order: %+v", cols)
	}
	if cols[2].Key != "quantum_basket_weaving" || cols[2].Known {
		t.Fatalf("extra column mishandled: %+v", cols[2])
	}
	if cols[2].Label != "Quantum Basket Weaving" {
		t.Fatalf("extra column label: %q", cols[2].Label)
	}
}

func TestBuild_CellStates(t *testing.T) {
	skills := []SkillDefinition{
		{ID: 1, Name: "Coding", ShortKey: "coding"},
		{ID: 2, Name: "Operating System", ShortKey: "operating_system"},
		{ID: 3, Name: "Computer Networking", ShortKey: "computer_networking"},
	}
	rows := []CompanyRow{{
		CompanyName: "Acme",
		Levels: map[string]*string{
			"coding":              strPtr("Advanced"),
			"operating_system":    strPtr("???"),
			"computer_networking": nil,
		},
	}}

	m := Build(skills, rows)
	if len(m.Rows) != 1 || len(m.Rows[0].Cells) != 3 {
		t.Fatalf("unexpected matrix shape: %+v", m)
	}

	byCol := map[string]Cell{}
	for _, c := range m.Rows[0].Cells {
		byCol[c.Column] = c
	}

	if byCol["coding"].BandCode != "AS" {
		t.Fatalf("coding cell: %+v", byCol["coding"])
	}
	if byCol["operating_system"].RawText != "???" {
		t.Fatalf("unresolved cell must keep raw text: %+v", byCol["operating_system"])
	}
	if !byCol["computer_networking"].Absent {
		t.Fatalf("null cell must be absent: %+v", byCol["computer_networking"])
	}
}

package taxonomy

import "testing"

func TestClassify_KeywordTable(t *testing.T) {
	// Every keyword in the table must resolve to its own band. Keywords that
	// also appear as substrings of a higher-priority keyword are expected to
	// resolve to the higher band instead ("advanced+" contains "advanced").
	for _, entry := range KeywordTable() {
		for _, kw := range entry.Keywords {
			got := Classify(kw)
			if got.Kind != Resolved {
				t.Fatalf("Classify(%q): expected resolved, got kind %d", kw, got.Kind)
			}
			if got.Band.Code != entry.Band.Code {
				// Acceptable only when a higher-priority band's keyword is a
				// substring of this one.
				if got.Band.Intensity < entry.Band.Intensity {
					t.Fatalf("Classify(%q): expected %s, got lower band %s", kw, entry.Band.Code, got.Band.Code)
				}
			}
		}
	}
}

func TestClassify_AdvancedIsAnalysis(t *testing.T) {
	cases := []string{"advanced", "Advanced", "somewhat advanced", "ADVANCED"}
	for _, raw := range cases {
		got := Classify(raw)
		if got.Kind != Resolved || got.Band.Code != Analysis.Code {
			t.Fatalf("Classify(%q): expected AS, got %+v", raw, got)
		}
	}
}

func TestClassify_AdvancedPlusIsEvaluation(t *testing.T) {
	for _, raw := range []string{"Advanced+", "advanced +", "expert"} {
		got := Classify(raw)
		if got.Kind != Resolved || got.Band.Code != Evaluation.Code {
			t.Fatalf("Classify(%q): expected EV, got %+v", raw, got)
		}
	}
}

func TestClassify_BlankIsAbsent(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		got := Classify(raw)
		if got.Kind != Absent {
			t.Fatalf("Classify(%q): expected absent, got kind %d", raw, got.Kind)
		}
	}

	if got := ClassifyValue(nil); got.Kind != Absent {
		t.Fatalf("ClassifyValue(nil): expected absent, got kind %d", got.Kind)
	}
}

func TestClassify_UnmatchedIsUnresolvedWithRaw(t *testing.T) {
	got := Classify("???")
	if got.Kind != Unresolved {
		t.Fatalf("expected unresolved, got kind %d", got.Kind)
	}
	if got.Raw != "???" {
		t.Fatalf("raw text not preserved: %q", got.Raw)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	first := Classify("Upper-Intermediate")
	second := Classify("Upper-Intermediate")
	if first != second {
		t.Fatalf("classify not idempotent: %+v vs %+v", first, second)
	}
	if first.Band.Code != Analysis.Code {
		t.Fatalf("expected AS for upper-intermediate, got %s", first.Band.Code)
	}
}

func TestClassify_MixedPhrasings(t *testing.T) {
	cases := map[string]string{
		"Intermediate":      Application.Code,
		"Moderate exposure": Application.Code,
		"Beginner":          Conceptual.Code,
		"Foundational only": Conceptual.Code,
		"High":              Analysis.Code,
		"Expert":            Evaluation.Code,
		// "level" contains the EV code, so "-level" phrasings land on EV.
		"intermediate-level": Evaluation.Code,
	}
	for raw, want := range cases {
		got := Classify(raw)
		if got.Kind != Resolved || got.Band.Code != want {
			t.Fatalf("Classify(%q): expected %s, got %+v", raw, want, got)
		}
	}
}

func TestBands_OrderAndIntensity(t *testing.T) {
	bands := Bands()
	if len(bands) != 4 {
		t.Fatalf("expected exactly 4 bands, got %d", len(bands))
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Intensity <= bands[i-1].Intensity {
			t.Fatalf("intensity not monotonic at %s", bands[i].Code)
		}
	}
	if Analysis.Intensity != 3 || Evaluation.Intensity != 4 {
		t.Fatalf("unexpected intensity scores: AS=%d EV=%d", Analysis.Intensity, Evaluation.Intensity)
	}
}

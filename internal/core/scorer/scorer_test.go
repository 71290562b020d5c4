package scorer

import (
	"math"
	"strings"
	"testing"

	"cictt/internal/core/hazard"
	"cictt/internal/core/normalize"
	"cictt/internal/core/taxonomy"
)

func cat(t *testing.T, code string) taxonomy.Category {
	t.Helper()
	c, ok := taxonomy.Default().Get(code)
	if !ok {
		t.Fatalf("%s missing from taxonomy", code)
	}
	return c
}

func TestScore_FuelExhaustionRepeated(t *testing.T) {
	fuel := cat(t, "FUEL")
	text := normalize.Text("Fuel exhaustion fuel exhaustion  fuel exhaustion\nfuel exhaustion")
	r := Score(text, fuel)

	// matched 10*3 over 138, plus 2 for one distinct phrase
	want := hazard.Round(30.0/138.0*100 + 2)
	if r.Score != want || want != 24 {
		t.Fatalf("score = %d, want %d (24)", r.Score, want)
	}
	if r.RiskLevel != hazard.RiskMedium {
		t.Fatalf("level = %s", r.RiskLevel)
	}
	if len(r.MatchedKeywords) != 1 {
		t.Fatalf("matched = %+v", r.MatchedKeywords)
	}
	mk := r.MatchedKeywords[0]
	if mk.Word != "fuel exhaustion" || mk.Count != 4 || mk.Weight != 10 {
		t.Fatalf("matched keyword = %+v", mk)
	}
	if r.Code != "FUEL" || r.Group != fuel.Group || r.Name != fuel.Name {
		t.Fatalf("identity fields not copied: %+v", r)
	}
	if !r.IsEnabled || r.IsManuallyAdded || r.UserWeight != hazard.DefaultUserWeight {
		t.Fatalf("defaults wrong: %+v", r)
	}
}

func TestScore_NoMatch(t *testing.T) {
	r := Score("the weather was pleasant", cat(t, "FUEL"))
	if r.Score != 0 || r.RiskLevel != hazard.RiskLow || len(r.MatchedKeywords) != 0 {
		t.Fatalf("want zero result, got %+v", r)
	}
	if r.MatchedKeywords == nil {
		t.Fatalf("matched keywords should be an empty slice, not nil")
	}
}

func TestScore_EmptyVocabulary(t *testing.T) {
	r := Score("anything", taxonomy.Category{Code: "X", Name: "x", Group: "g"})
	if r.Score != 0 || r.RiskLevel != hazard.RiskLow {
		t.Fatalf("empty vocabulary should score 0: %+v", r)
	}
}

func TestScore_MatchedInDeclarationOrder(t *testing.T) {
	fuel := cat(t, "FUEL")
	// mention the second keyword before the first
	r := Score(fuel.Keywords[1].Term+" then "+fuel.Keywords[0].Term, fuel)
	if len(r.MatchedKeywords) < 2 {
		t.Fatalf("expected both keywords, got %+v", r.MatchedKeywords)
	}
	if r.MatchedKeywords[0].Word != fuel.Keywords[0].Term {
		t.Fatalf("order = %+v", r.MatchedKeywords)
	}
}

func TestScore_BoundsAndLevels_AllCategories(t *testing.T) {
	tx := taxonomy.Default()
	var all []string
	for _, c := range tx.Categories() {
		for _, kw := range c.Keywords {
			all = append(all, kw.Term, kw.Term, kw.Term, kw.Term)
		}
	}
	texts := []string{
		"",
		"routine flight, nothing to report",
		normalize.Text(strings.Join(all, " ")),
	}
	for _, text := range texts {
		for _, c := range tx.Categories() {
			r := Score(text, c)
			if r.Score < 0 || r.Score > 100 {
				t.Fatalf("%s: score %d out of bounds", c.Code, r.Score)
			}
			if r.RiskLevel != hazard.LevelFor(r.Score) {
				t.Fatalf("%s: level %s does not match score %d", c.Code, r.RiskLevel, r.Score)
			}
		}
	}
	// every keyword present at least 3 times saturates every category
	for _, c := range tx.Categories() {
		if r := Score(texts[2], c); r.Score != 100 {
			t.Fatalf("%s: saturated score = %d", c.Code, r.Score)
		}
	}
}

func TestRaw(t *testing.T) {
	cases := []struct {
		m, tot, d int
		want      float64
	}{
		{0, 0, 0, 0},
		{0, 100, 0, 0},
		{50, 100, 1, 52},
		{50, 100, 15, 70},
		{100, 100, 3, 100},
		{300, 100, 10, 100},
	}
	for _, c := range cases {
		if got := Raw(c.m, c.tot, c.d); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("Raw(%d,%d,%d) = %v want %v", c.m, c.tot, c.d, got, c.want)
		}
	}
}

func TestEmpty(t *testing.T) {
	r := Empty(cat(t, "ICE"))
	if r.Code != "ICE" || r.Score != 0 || r.RiskLevel != hazard.RiskLow || !r.IsManuallyAdded || !r.IsEnabled {
		t.Fatalf("Empty = %+v", r)
	}
	if r.MatchedKeywords == nil || len(r.MatchedKeywords) != 0 || r.UserWeight != 1.0 {
		t.Fatalf("Empty defaults = %+v", r)
	}
}

package engine

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"cictt/internal/core/aggregate"
	"cictt/internal/core/hazard"
)

const report = `During approach the crew reported severe wind shears and moderate icing.
A bird strike on the left engine followed; the crew declared fuel exhaustion risk.`

func TestAnalyze_EmptyInput(t *testing.T) {
	e := New(nil)
	for _, in := range []string{"", "   ", "\n\t "} {
		r := e.Analyze(in)
		if r.Summary != "No text provided for analysis." {
			t.Fatalf("summary = %q", r.Summary)
		}
		if r.OverallRiskScore != 0 || r.OverallRiskLevel != hazard.RiskLow || r.DetectedCount != 0 {
			t.Fatalf("empty result = %+v", r)
		}
		if r.Categories == nil || len(r.Categories) != 0 {
			t.Fatalf("categories should be an empty slice")
		}
		if r.TotalCategories != e.Taxonomy().Len() {
			t.Fatalf("total = %d", r.TotalCategories)
		}
	}
}

func TestAnalyze_FullSetInTaxonomyOrder(t *testing.T) {
	e := New(nil)
	r := e.Analyze(report)
	cats := e.ListCategories()
	if len(r.Categories) != len(cats) || r.TotalCategories != len(cats) {
		t.Fatalf("categories = %d, want %d", len(r.Categories), len(cats))
	}
	detected := 0
	for i, c := range r.Categories {
		if c.Code != cats[i].Code {
			t.Fatalf("order mismatch at %d: %s vs %s", i, c.Code, cats[i].Code)
		}
		if c.Score > 0 {
			detected++
		}
		if c.Score < 0 || c.Score > 100 || c.RiskLevel != hazard.LevelFor(c.Score) {
			t.Fatalf("%s: bad score/level %d/%s", c.Code, c.Score, c.RiskLevel)
		}
		if !c.IsEnabled || c.IsManuallyAdded || c.UserWeight != 1 {
			t.Fatalf("%s: bad defaults %+v", c.Code, c)
		}
	}
	if r.DetectedCount != detected || detected == 0 {
		t.Fatalf("detected = %d, counted %d", r.DetectedCount, detected)
	}
	for _, code := range []string{"WSTRW", "ICE", "BIRD", "FUEL"} {
		i := e.Taxonomy().Index(code)
		if r.Categories[i].Score == 0 {
			t.Fatalf("%s should be detected", code)
		}
	}
	if !strings.HasSuffix(r.Summary, ".") || !strings.Contains(r.Summary, "Wildlife hazards identified") {
		t.Fatalf("summary = %q", r.Summary)
	}
}

func TestAnalyze_OverallCoversDetectedOnly(t *testing.T) {
	e := New(nil)
	r := e.Analyze(report)

	var detected []hazard.CategoryResult
	for _, c := range r.Categories {
		if c.Score > 0 {
			detected = append(detected, c)
		}
	}
	want := aggregate.Aggregate(detected)
	if r.OverallRiskScore != want.Score || r.OverallRiskLevel != want.Level {
		t.Fatalf("overall = %d/%s, want %+v", r.OverallRiskScore, r.OverallRiskLevel, want)
	}
	if r.Summary != aggregate.Summarize(detected) {
		t.Fatalf("summary mismatch")
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := New(nil)
	a := e.Analyze(report)
	b := e.Analyze(report)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two runs differ")
	}
	// whitespace and case do not change the outcome
	c := e.Analyze(strings.ToUpper(strings.ReplaceAll(report, " ", "   ")))
	if !reflect.DeepEqual(a, c) {
		t.Fatalf("normalization should make runs equal")
	}
}

func TestAnalyze_NoHazards(t *testing.T) {
	r := New(nil).Analyze("routine flight with nothing to note")
	if r.DetectedCount != 0 || r.Summary != aggregate.NoHazards || r.OverallRiskScore != 0 {
		t.Fatalf("result = %+v", r)
	}
	if len(r.Categories) != r.TotalCategories {
		t.Fatalf("zero-score categories must stay in the set")
	}
}

func TestAnalyze_FuelExhaustionCap(t *testing.T) {
	e := New(nil)
	r := e.Analyze("fuel exhaustion fuel exhaustion fuel exhaustion fuel exhaustion")
	fuel := r.Categories[e.Taxonomy().Index("FUEL")]
	if fuel.Score != 24 || len(fuel.MatchedKeywords) != 1 || fuel.MatchedKeywords[0].Count != 4 {
		t.Fatalf("FUEL = %+v", fuel)
	}
}

func TestAccessors(t *testing.T) {
	e := New(nil)
	if !e.IsValidCode("ICE") || e.IsValidCode("nope") {
		t.Fatalf("IsValidCode mismatch")
	}
	if c, ok := e.GetCategory("ICE"); !ok || c.Code != "ICE" {
		t.Fatalf("GetCategory(ICE) = %+v, %v", c, ok)
	}
	if _, ok := e.GetCategory("nope"); ok {
		t.Fatalf("GetCategory(nope) should miss")
	}
	if len(e.ListGroups()) != 11 {
		t.Fatalf("groups = %v", e.ListGroups())
	}
	if len(e.ByGroup("Wildlife")) != 2 {
		t.Fatalf("ByGroup(Wildlife) = %v", e.ByGroup("Wildlife"))
	}
	if hits := e.Search("bird", 0); len(hits) == 0 || hits[0].Category.Code != "BIRD" {
		t.Fatalf("Search(bird) = %+v", hits)
	}

	m, ok := e.CreateManual("ICE")
	if !ok || !m.IsManuallyAdded || m.Score != 0 || m.RiskLevel != hazard.RiskLow {
		t.Fatalf("CreateManual = %+v", m)
	}
	if _, ok := e.CreateManual("nope"); ok {
		t.Fatalf("CreateManual(nope) should fail")
	}
}

func TestKeyword_Analyzer(t *testing.T) {
	k := NewKeyword(New(nil))
	r, err := k.Analyze(context.Background(), report)
	if err != nil || r.DetectedCount == 0 {
		t.Fatalf("Analyze = %+v, %v", r, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := k.Analyze(ctx, report); err == nil {
		t.Fatalf("cancelled context should fail")
	}
}

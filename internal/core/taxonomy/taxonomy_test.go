package taxonomy

import (
	"strings"
	"testing"
)

func mustLoad(t *testing.T) *Taxonomy {
	t.Helper()
	tx, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	return tx
}

func TestLoad_EmbeddedTable(t *testing.T) {
	tx := mustLoad(t)
	if tx.Version() != 1 {
		t.Fatalf("version = %d, want 1", tx.Version())
	}
	if tx.Len() != 35 {
		t.Fatalf("categories = %d, want 35", tx.Len())
	}
	if got := len(tx.Groups()); got != 11 {
		t.Fatalf("groups = %d, want 11", got)
	}

	seen := map[string]bool{}
	for _, c := range tx.Categories() {
		if seen[c.Code] {
			t.Fatalf("duplicate code %q", c.Code)
		}
		seen[c.Code] = true
		if len(c.Keywords) == 0 {
			t.Fatalf("%s: empty vocabulary", c.Code)
		}
		terms := map[string]bool{}
		for _, kw := range c.Keywords {
			if kw.Weight < MinWeight || kw.Weight > MaxWeight {
				t.Fatalf("%s: %q weight %d out of range", c.Code, kw.Term, kw.Weight)
			}
			if kw.Term != strings.ToLower(kw.Term) {
				t.Fatalf("%s: term %q not lowercase", c.Code, kw.Term)
			}
			if terms[kw.Term] {
				t.Fatalf("%s: duplicate term %q", c.Code, kw.Term)
			}
			terms[kw.Term] = true
		}
	}
}

func TestLoad_KeywordOrderPreserved(t *testing.T) {
	tx := mustLoad(t)
	c, ok := tx.Get("FUEL")
	if !ok {
		t.Fatalf("FUEL missing")
	}
	if c.Keywords[0] != (Keyword{Term: "fuel exhaustion", Weight: 10}) {
		t.Fatalf("first FUEL keyword = %+v", c.Keywords[0])
	}
	if c.Keywords[1].Term != "fuel starvation" {
		t.Fatalf("second FUEL keyword = %+v", c.Keywords[1])
	}
	if c.TotalWeight() != 138 {
		t.Fatalf("FUEL total weight = %d, want 138", c.TotalWeight())
	}
}

func TestAccessors(t *testing.T) {
	tx := mustLoad(t)

	if !tx.IsValid("LOC-I") || tx.IsValid("NOPE") || tx.IsValid("loc-i") {
		t.Fatalf("IsValid mismatch")
	}
	if tx.Index("LOC-I") != 0 || tx.Index("NOPE") != -1 {
		t.Fatalf("Index mismatch")
	}
	if _, ok := tx.Get("NOPE"); ok {
		t.Fatalf("Get(NOPE) should miss")
	}

	groups := tx.Groups()
	if groups[0] != "Loss of Control" || groups[len(groups)-1] != "Other" {
		t.Fatalf("group order = %v", groups)
	}

	loc := tx.ByGroup("Loss of Control")
	if len(loc) != 3 || loc[0].Code != "LOC-I" || loc[1].Code != "LOC-G" || loc[2].Code != "AMAN" {
		t.Fatalf("ByGroup(Loss of Control) = %v", loc)
	}
	if len(tx.ByGroup("nope")) != 0 {
		t.Fatalf("unknown group should be empty")
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	tx := mustLoad(t)
	c, _ := tx.Get("ICE")
	c.Keywords[0].Weight = 1
	c.Name = "mutated"

	again, _ := tx.Get("ICE")
	if again.Keywords[0].Weight != 10 || again.Name == "mutated" {
		t.Fatalf("taxonomy mutated through accessor copy")
	}

	all := tx.Categories()
	all[0].Keywords[0].Term = "x"
	if first, _ := tx.Get(all[0].Code); first.Keywords[0].Term == "x" {
		t.Fatalf("taxonomy mutated through Categories copy")
	}
}

func TestSearch(t *testing.T) {
	tx := mustLoad(t)

	hits := tx.Search("Fuel", 0)
	if len(hits) == 0 {
		t.Fatalf("expected hits for fuel")
	}
	if hits[0].Category.Code != "FUEL" || hits[0].Weight != 10 {
		t.Fatalf("top hit = %s/%d", hits[0].Category.Code, hits[0].Weight)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].Weight > hits[i-1].Weight {
			t.Fatalf("hits not sorted by weight at %d", i)
		}
	}
	seen := map[string]bool{}
	for _, h := range hits {
		if seen[h.Category.Code] {
			t.Fatalf("category %s reported twice", h.Category.Code)
		}
		seen[h.Category.Code] = true
	}

	if got := tx.Search("fuel", 10); len(got) != 0 {
		t.Fatalf("threshold 10 should exclude everything, got %d", len(got))
	}
	if got := tx.Search("   ", 0); got != nil {
		t.Fatalf("blank search should be nil")
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"bad version", "version: 2\ncategories: []\n", "unsupported"},
		{"no categories", "version: 1\ncategories: []\n", "no categories"},
		{
			"duplicate code",
			"version: 1\ncategories:\n  - {code: A, name: a, group: g, keywords: {x: 1}}\n  - {code: A, name: b, group: g, keywords: {y: 1}}\n",
			"duplicate code",
		},
		{
			"empty vocabulary",
			"version: 1\ncategories:\n  - {code: A, name: a, group: g, keywords: {}}\n",
			"empty keyword vocabulary",
		},
		{
			"weight out of range",
			"version: 1\ncategories:\n  - {code: A, name: a, group: g, keywords: {x: 11}}\n",
			"outside",
		},
		{
			"duplicate term after folding",
			"version: 1\ncategories:\n  - {code: A, name: a, group: g, keywords: {X: 1, x: 2}}\n",
			"duplicate keyword",
		},
		{
			"keywords not a mapping",
			"version: 1\ncategories:\n  - {code: A, name: a, group: g, keywords: [x]}\n",
			"want mapping",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.doc))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("Parse err = %v, want containing %q", err, c.want)
			}
		})
	}
}

func TestDefault_Singleton(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default should return the same instance")
	}
}

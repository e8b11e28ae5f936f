package flavor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/signal"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewDefaultEngine()
	require.NoError(t, err)
	return e
}

func testTable() *signal.Table {
	return signal.NewTable(map[string][]model.Signal{
		"heist":          {"heist"},
		"bank robbery":   {"heist", "robbery"},
		"zombie":         {"zombie"},
		"talking animal": {"animal"},
		"spaceship":      {"spaceship", "space"},
	}, []string{"talking animal"})
}

func newTestEngine(t *testing.T, rules ...Rule) *Engine {
	t.Helper()
	e, err := NewEngine(NewRuleSet(rules...), testTable())
	require.NoError(t, err)
	return e
}

func TestClassifyEmptyInput(t *testing.T) {
	e := defaultEngine(t)

	assert.Empty(t, e.Classify(nil, nil))
	assert.Empty(t, e.Classify([]string{}, []string{}))
	assert.Empty(t, e.Classify([]string{"", "  "}, []string{""}))
	assert.Empty(t, e.Classify([]string{"TV Movie"}, []string{"friendship"}))
	assert.NotNil(t, e.Classify(nil, nil))
}

func TestClassifyDefaultRules(t *testing.T) {
	e := defaultEngine(t)

	tests := []struct {
		name     string
		genres   []string
		keywords []string
		expected []string
	}{
		{
			name:     "cyberpunk",
			genres:   []string{"Science Fiction"},
			keywords: []string{"cyberpunk"},
			expected: []string{"Cyberpunk", "Futuristic City"},
		},
		{
			name:     "vampire horror",
			genres:   []string{"Horror"},
			keywords: []string{"Vampire"},
			expected: []string{"Vampire Horror"},
		},
		{
			name:     "teen horror by keyword",
			genres:   []string{"horror"},
			keywords: []string{"high school"},
			expected: []string{"Teen Horror"},
		},
		{
			name:     "heist",
			genres:   []string{"crime"},
			keywords: []string{"heist"},
			expected: []string{"Heist", "Urban Crime", "Caper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Classify(tt.genres, tt.keywords))
		})
	}
}

func TestClassifyAliasResolution(t *testing.T) {
	e := defaultEngine(t)

	aliased := e.Classify([]string{"sci fi"}, []string{"a.i."})
	canonical := e.Classify([]string{"science fiction"}, []string{"artificial intelligence"})

	assert.Equal(t, canonical, aliased)
	assert.Contains(t, aliased, "Artificial Intelligence")
}

func TestHorrorSuppression(t *testing.T) {
	e := defaultEngine(t)

	t.Run("family content drops horror flavors without strong signals", func(t *testing.T) {
		got := e.Classify([]string{"family", "horror"}, []string{"high school"})
		assert.NotContains(t, got, "Teen Horror")

		x := e.Explain([]string{"family", "horror"}, []string{"high school"})
		assert.Contains(t, x.Guardrails, "horror-suppression")
		require.Len(t, x.Fired, 1)
		assert.Equal(t, "Teen Horror", x.Fired[0].Name)
	})

	t.Run("animation drops macabre too", func(t *testing.T) {
		got := e.Classify([]string{"animation", "horror"}, []string{"body horror"})
		assert.NotContains(t, got, "Body Horror")
		assert.NotContains(t, got, "Macabre Disturbing")
	})

	t.Run("strong horror signal keeps flavors", func(t *testing.T) {
		got := e.Classify([]string{"family", "horror"}, []string{"zombie apocalypse"})
		assert.Contains(t, got, "Zombie Horror")
	})

	t.Run("no family genre keeps flavors", func(t *testing.T) {
		assert.Contains(t, e.Classify([]string{"horror"}, []string{"body horror"}), "Body Horror")
	})
}

func TestHorrorSuppressionWithSignalOnlyRules(t *testing.T) {
	e := newTestEngine(t,
		Rule{Name: "zombies", Flavors: []model.Flavor{"Zombie Horror"}, When: []Predicate{AnySignals{"zombie"}}},
		Rule{Name: "critters", Flavors: []model.Flavor{"Creature Feature"}, When: []Predicate{AnySignals{"animal"}}},
	)

	assert.Equal(t, []string{"Zombie Horror"}, e.Classify([]string{"family"}, []string{"zombie"}))
	assert.Empty(t, e.Classify([]string{"family"}, []string{"talking animal"}))
	assert.Equal(t, []string{"Creature Feature"}, e.Classify([]string{"comedy"}, []string{"talking animal"}))
}

func TestDocumentaryBoost(t *testing.T) {
	e := defaultEngine(t)
	unguarded, err := NewEngine(DefaultRules(), e.Table(), WithGuardrails())
	require.NoError(t, err)

	boosted := e.Explain([]string{"documentary"}, []string{"true crime"})
	base := unguarded.Explain([]string{"documentary"}, []string{"true crime"})

	scoreOf := func(x Explanation, f model.Flavor) int {
		for _, r := range x.Ranked {
			if r.Flavor == f {
				return r.Score
			}
		}
		return 0
	}

	assert.Equal(t, 21, scoreOf(base, "Crime Documentary"))
	assert.Equal(t, 24, scoreOf(boosted, "Crime Documentary"))
	assert.Equal(t, 3, scoreOf(boosted, "Nature Documentary"), "boost creates missing entries")
	assert.Contains(t, boosted.Guardrails, "documentary-boost")

	require.GreaterOrEqual(t, len(boosted.Ranked), 2)
	assert.Equal(t, model.Flavor("Crime Documentary"), boosted.Ranked[0].Flavor)
	assert.Equal(t, model.Flavor("True Crime"), boosted.Ranked[1].Flavor)

	assert.Empty(t, e.Classify([]string{"documentary"}, nil), "no documentary signal, no boost")
}

func TestCumulativeScoring(t *testing.T) {
	e := newTestEngine(t,
		Rule{Name: "heist genre", Flavors: []model.Flavor{"Heist"}, When: []Predicate{AnyGenres{"crime"}, AnySignals{"heist"}}},
		Rule{Name: "heist robbery", Flavors: []model.Flavor{"Heist"}, When: []Predicate{AnySignals{"robbery"}}},
		Rule{Name: "caper", Flavors: []model.Flavor{"Caper"}, Score: 15, When: []Predicate{AnySignals{"heist"}}},
	)

	// one rule each: Caper 15 beats Heist 10
	assert.Equal(t, []string{"Caper", "Heist"}, e.Classify([]string{"crime"}, []string{"heist"}))
	// both Heist rules fire: 20 beats 15
	assert.Equal(t, []string{"Heist", "Caper"}, e.Classify([]string{"crime"}, []string{"bank robbery"}))
}

func TestTieBreakIsLexical(t *testing.T) {
	e := newTestEngine(t,
		Rule{Name: "z", Flavors: []model.Flavor{"Zeta"}, When: []Predicate{AnySignals{"heist"}}},
		Rule{Name: "a", Flavors: []model.Flavor{"Alpha", "alpha", "Beta"}, When: []Predicate{AnySignals{"heist"}}},
	)

	assert.Equal(t, []string{"Alpha", "Beta", "Zeta", "alpha"}, e.Classify(nil, []string{"heist"}))
}

func TestBonus(t *testing.T) {
	e := newTestEngine(t,
		Rule{
			Name:    "panics",
			Flavors: []model.Flavor{"Heist"},
			Score:   12,
			When:    []Predicate{AnySignals{"heist"}},
			Bonus:   func(*Context) int { panic("boom") },
		},
		Rule{
			Name:    "bonus",
			Flavors: []model.Flavor{"Caper"},
			When:    []Predicate{AnySignals{"heist"}},
			Bonus: func(c *Context) int {
				if c.HasSignal("robbery") {
					return 5
				}
				return 0
			},
		},
		Rule{
			Name:    "negative",
			Flavors: []model.Flavor{"Drama"},
			Score:   1,
			When:    []Predicate{AnySignals{"heist"}},
			Bonus:   func(*Context) int { return -4 },
		},
	)

	x := e.Explain(nil, []string{"bank robbery"})
	require.Len(t, x.Fired, 3)
	assert.True(t, x.Fired[0].BonusPanicked)
	assert.Equal(t, 12, x.Fired[0].Contribution)
	assert.Equal(t, 15, x.Fired[1].Contribution)
	assert.Equal(t, -3, x.Fired[2].Contribution)

	assert.Equal(t, []string{"Caper", "Heist", "Drama"}, x.Flavors(), "negative scores stay in output")
	assert.Equal(t, x.Flavors(), e.Classify(nil, []string{"bank robbery"}))
}

func TestExcludesShortCircuit(t *testing.T) {
	called := false
	e := newTestEngine(t, Rule{
		Name:    "not for comedies",
		Flavors: []model.Flavor{"Heist"},
		When:    []Predicate{AnySignals{"heist"}},
		Unless:  []Predicate{AnyGenres{"comedy"}},
		Bonus: func(*Context) int {
			called = true
			return 0
		},
	})

	assert.Empty(t, e.Classify([]string{"comedy"}, []string{"heist"}))
	assert.False(t, called)
	assert.Equal(t, []string{"Heist"}, e.Classify([]string{"crime"}, []string{"heist"}))
}

func TestGlobalRuleFiresForEmptyInput(t *testing.T) {
	e := newTestEngine(t, Rule{Name: "everything", Flavors: []model.Flavor{"Anything"}, Score: 1})

	assert.Equal(t, []string{"Anything"}, e.Classify(nil, nil))
}

func TestNewEngineRejectsInvalidRules(t *testing.T) {
	_, err := NewEngine(NewRuleSet(Rule{Name: "empty", When: []Predicate{AnyGenres{}}}), testTable())
	require.Error(t, err)

	_, err = NewEngine(DefaultRules().With(Rule{Name: "Heist", Flavors: []model.Flavor{"Heist"}, When: []Predicate{AnySignals{"heist"}}}), testTable())
	require.Error(t, err, "duplicate rule names are rejected")
}

func TestNilTableBehavesAsEmpty(t *testing.T) {
	e, err := NewEngine(NewRuleSet(Rule{Name: "h", Flavors: []model.Flavor{"Heist"}, When: []Predicate{AnySignals{"heist"}}}), nil)
	require.NoError(t, err)
	assert.Empty(t, e.Classify([]string{"crime"}, []string{"heist"}))
}

//nolint:gochecknoglobals // test fixtures
var (
	sampleGenres = []string{
		"action", "Horror", "family", "animation", "documentary", "sci fi", "crime", "drama",
		"comedy", "thriller", "fantasy", "romance", "war", "western", "music", "TV Movie",
	}
	sampleKeywords = []string{
		"zombie apocalypse", "high school", "true crime", "a.i.", "heist", "vampire", "time travel",
		"cyberpunk", "haunted house", "serial killer", "pirates", "wizard", "spaceship", "gun fu",
		"body horror", "interview", "courtroom", "grief", "revenge", "neo-noir", "superhero",
		"funny talking animals", "folk horror", "rural", "mecha", "kaiju", "friendship",
	}
)

func TestRuleOrderDoesNotChangeOutput(t *testing.T) {
	table, err := signal.Default()
	require.NoError(t, err)
	rules := DefaultRules().Rules()
	base, err := NewEngine(NewRuleSet(rules...), table)
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		perm := rapid.Permutation(rules).Draw(rt, "rules")
		genres := rapid.SliceOfN(rapid.SampledFrom(sampleGenres), 0, 4).Draw(rt, "genres")
		keywords := rapid.SliceOfN(rapid.SampledFrom(sampleKeywords), 0, 6).Draw(rt, "keywords")

		shuffled, err := NewEngine(NewRuleSet(perm...), table)
		if err != nil {
			rt.Fatalf("engine: %v", err)
		}
		want := base.Classify(genres, keywords)
		if got := shuffled.Classify(genres, keywords); !assert.ObjectsAreEqual(want, got) {
			rt.Fatalf("permuted rules changed output: %v != %v", got, want)
		}
	})
}

func TestClassifyIsDeterministic(t *testing.T) {
	e := defaultEngine(t)

	rapid.Check(t, func(rt *rapid.T) {
		genres := rapid.SliceOfN(rapid.SampledFrom(sampleGenres), 0, 4).Draw(rt, "genres")
		keywords := rapid.SliceOfN(rapid.SampledFrom(sampleKeywords), 0, 6).Draw(rt, "keywords")
		reordered := rapid.Permutation(keywords).Draw(rt, "reordered")

		first := e.Classify(genres, keywords)
		if again := e.Classify(genres, keywords); !assert.ObjectsAreEqual(first, again) {
			rt.Fatalf("repeat call differs: %v != %v", again, first)
		}
		if other := e.Classify(genres, reordered); !assert.ObjectsAreEqual(first, other) {
			rt.Fatalf("keyword order changed output: %v != %v", other, first)
		}
		seen := make(map[string]struct{}, len(first))
		for _, f := range first {
			if _, dup := seen[f]; dup {
				rt.Fatalf("flavor %q emitted twice", f)
			}
			seen[f] = struct{}{}
		}
	})
}

func TestConcurrentClassification(t *testing.T) {
	e := defaultEngine(t)

	want := make([][]string, len(sampleKeywords))
	for i, kw := range sampleKeywords {
		want[i] = e.Classify(sampleGenres[:i%len(sampleGenres)+1], []string{kw})
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i, kw := range sampleKeywords {
				got := e.Classify(sampleGenres[:i%len(sampleGenres)+1], []string{kw})
				if !assert.ObjectsAreEqual(want[i], got) {
					t.Errorf("keyword %q: got %v, want %v", kw, got, want[i])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDefaultRulesValidate(t *testing.T) {
	b, err := signal.NewDefaultBuilder()
	require.NoError(t, err)

	issues := DefaultRules().Validate(DefaultCatalog(), b.Vocabulary())
	assert.Empty(t, issues)
}

package signal

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-flavor-must-flow/internal/common"
	"github.com/Veraticus/the-flavor-must-flow/internal/model"
	"github.com/Veraticus/the-flavor-must-flow/internal/normalize"
)

func newDefaultBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewDefaultBuilder()
	require.NoError(t, err)
	return b
}

func TestBuilderMatch(t *testing.T) {
	b := newDefaultBuilder(t)

	tests := []struct {
		keyword  string
		stage    Stage
		expected []model.Signal
	}{
		{"vampire", StagePrimary, []model.Signal{"vampire"}},
		{"zombie apocalypse", StagePrimary, []model.Signal{"zombie"}},
		{"lycanthrope", StagePrimary, []model.Signal{"werewolf"}},
		{"hal 9000", StagePrimary, []model.Signal{"artificial intelligence"}},
		{"pirates", StagePrimary, []model.Signal{"pirate", "sea"}},
		{"post-apocalyptic future", StagePrimary, []model.Signal{"post-apocalyptic"}},
		{"funny talking animals", StageHeuristic, []model.Signal{"animal"}},
		{"high school", StageHeuristic, []model.Signal{"school"}},
		// word boundaries hold on both ends
		{"ghostwriter", "", nil},
		{"catalogue", "", nil},
		{"friendship", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			signals, stage := b.Match(tt.keyword)
			assert.Equal(t, tt.stage, stage)
			assert.Equal(t, tt.expected, signals)
		})
	}
}

func TestBuilderHeuristicNeverOverridesPrimary(t *testing.T) {
	b := newDefaultBuilder(t)

	table, stats := b.Build([]string{"zombie dog", "dog"})

	assert.Equal(t, []model.Signal{"zombie"}, table.Lookup("zombie dog"))
	stage, ok := table.Provenance("zombie dog")
	require.True(t, ok)
	assert.Equal(t, StagePrimary, stage)

	assert.Equal(t, []model.Signal{"animal"}, table.Lookup("dog"))
	stage, ok = table.Provenance("dog")
	require.True(t, ok)
	assert.Equal(t, StageHeuristic, stage)

	assert.Equal(t, 1, stats.Primary)
	assert.Equal(t, 1, stats.Heuristic)
}

func TestBuilderCanonicalizesCorpus(t *testing.T) {
	b := newDefaultBuilder(t)

	table, stats := b.Build([]string{"AI", "a.i.", " Artificial  Intelligence ", "The", "Paris", "", "friendship"})

	assert.Equal(t, 7, stats.Names)
	assert.Equal(t, 2, stats.Stopped)
	assert.Equal(t, 2, stats.Distinct)
	assert.Equal(t, 1, stats.Unmatched)
	assert.Equal(t, []string{"artificial intelligence"}, table.Keywords())
	assert.InDelta(t, 0.5, stats.Coverage(), 0.0001)
	assert.Equal(t, 1, stats.PerSignal["artificial intelligence"])
}

func TestBuilderVocabularyCoversAllRules(t *testing.T) {
	b := newDefaultBuilder(t)
	table, _ := b.Build(nil)

	vocab := table.Vocabulary()
	for _, r := range DefaultRules() {
		assert.Contains(t, vocab, r.Signal)
	}
	for _, h := range DefaultHeuristics() {
		assert.Contains(t, vocab, h.Signal)
	}
}

func TestNewBuilderRejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name       string
		rules      []Rule
		heuristics []HeuristicRule
	}{
		{"missing signal", []Rule{{Patterns: []string{`x`}}}, nil},
		{"no patterns", []Rule{{Signal: "x"}}, nil},
		{"bad regex", []Rule{{Signal: "x", Patterns: []string{`(unclosed`}}}, nil},
		{"empty heuristic pattern", nil, []HeuristicRule{{Signal: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder(tt.rules, tt.heuristics)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidRule)
		})
	}
}

func TestReadCorpus(t *testing.T) {
	names, err := ReadCorpus(strings.NewReader(`["time travel", {"name": "Vampires"}, {"id": 4}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"time travel", "Vampires", ""}, names)

	_, err = ReadCorpus(strings.NewReader(`[1]`))
	require.Error(t, err)

	_, err = ReadCorpus(strings.NewReader(`{"name": "x"}`))
	require.Error(t, err)
}

func TestStopwordsAreCanonical(t *testing.T) {
	for word := range stopwords {
		assert.Equal(t, word, normalize.Keyword(word))
	}
}

func TestEmbeddedArtifactMatchesSeedCorpus(t *testing.T) {
	f, err := os.Open("data/seed_keywords.json")
	require.NoError(t, err)
	defer f.Close()

	names, err := ReadCorpus(f)
	require.NoError(t, err)

	built, _ := newDefaultBuilder(t).Build(names)
	embedded, err := Default()
	require.NoError(t, err)

	var want, got bytes.Buffer
	require.NoError(t, Write(&want, built))
	require.NoError(t, Write(&got, embedded))
	assert.JSONEq(t, want.String(), got.String())
}

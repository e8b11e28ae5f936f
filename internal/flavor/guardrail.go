package flavor

import "github.com/Veraticus/the-flavor-must-flow/internal/model"

// Guardrail is a cross-rule policy applied once to the score map after all
// rules have been evaluated. Apply reports whether it changed scores.
type Guardrail interface {
	Name() string
	Apply(c *Context, scores Scores) bool
}

// HorrorSuppression removes horror flavors from content in any of Genres
// unless one of StrongSignals is present.
type HorrorSuppression struct {
	Genres        []model.Genre
	StrongSignals []model.Signal
	Flavors       []model.Flavor
}

// Name implements Guardrail.
func (HorrorSuppression) Name() string { return "horror-suppression" }

// Apply deletes the flavor keys so they do not surface even at score zero.
func (g HorrorSuppression) Apply(c *Context, scores Scores) bool {
	if !c.HasAnyGenre(g.Genres...) || c.HasAnySignal(g.StrongSignals...) {
		return false
	}
	changed := false
	for _, f := range g.Flavors {
		if _, ok := scores[f]; ok {
			delete(scores, f)
			changed = true
		}
	}
	return changed
}

// DocumentaryBoost adds Bonus to every listed flavor when Genre is present
// and any of Signals is. Missing flavors are created at Bonus.
type DocumentaryBoost struct {
	Genre   model.Genre
	Signals []model.Signal
	Flavors []model.Flavor
	Bonus   int
}

// Name implements Guardrail.
func (DocumentaryBoost) Name() string { return "documentary-boost" }

// Apply implements Guardrail.
func (g DocumentaryBoost) Apply(c *Context, scores Scores) bool {
	if !c.HasGenre(g.Genre) || !c.HasAnySignal(g.Signals...) {
		return false
	}
	for _, f := range g.Flavors {
		scores.Add(f, g.Bonus)
	}
	return len(g.Flavors) > 0
}

// DefaultGuardrails returns the built-in policies in application order.
func DefaultGuardrails() []Guardrail {
	return []Guardrail{
		HorrorSuppression{
			Genres: []model.Genre{model.GenreFamily, model.GenreAnimation},
			StrongSignals: []model.Signal{
				"vampire", "werewolf", "zombie", "haunted house", "ghost", "possession", "exorcism",
				"witch", "witchcraft", "demon", "monster", "slasher", "serial killer", "found footage",
				"occult", "satanic", "curse",
			},
			Flavors: append(HorrorFlavors(), "Macabre Disturbing"),
		},
		DocumentaryBoost{
			Genre: model.GenreDocumentary,
			Signals: []model.Signal{
				"docuseries", "interview", "archival footage", "investigation", "narration", "true crime", "biography",
			},
			Flavors: DocumentaryFlavors(),
			Bonus:   3,
		},
	}
}

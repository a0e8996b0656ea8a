package policy

import (
	"github.com/surfaid/vetflow/internal/model"
)

// Rule names, reported as the disposition reason.
const (
	RuleStrongMatch   = "strong_match"
	RuleContradiction = "attribute_contradiction"
	RuleWeakName      = "weak_name"
	RuleAliasMatch    = "alias_match"
	RuleNeedsReview   = "needs_review"
)

// Input carries everything a rule may inspect for one hit.
type Input struct {
	Supplier  model.Supplier
	Hit       model.ScreeningHit
	NameScore float64
}

// A rule is a pure predicate plus outcome. Rules fire first-match-wins in
// the order the engine lists them; a rule that does not apply returns
// ok=false and evaluation moves on.
type rule struct {
	name     string
	evaluate func(Input) (model.Disposition, bool)
}

// Engine applies the ordered disposition rules. It is pure: no I/O, no
// mutation of inputs, safe for concurrent use once constructed.
type Engine struct {
	policy    Policy
	normalize func(string) string
	rules     []rule
}

// NewEngine builds a rules engine for the given policy. The normalize
// function must be the same canonicalization applied to the names that
// produced the incoming scores, so alias comparisons agree with them.
func NewEngine(p Policy, normalize func(string) string) *Engine {
	e := &Engine{policy: p, normalize: normalize}
	e.rules = []rule{
		{RuleStrongMatch, e.strongMatch},
		{RuleContradiction, e.attributeContradiction},
		{RuleWeakName, e.weakName},
		{RuleAliasMatch, e.aliasMatch},
		{RuleNeedsReview, e.needsReview},
	}
	return e
}

// Rules returns the rule names in evaluation order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.name
	}
	return names
}

// Evaluate decides the disposition of one hit given its name score. The
// final rule always applies, so a disposition is always returned.
func (e *Engine) Evaluate(supplier model.Supplier, hit model.ScreeningHit, nameScore float64) (model.Disposition, string) {
	in := Input{Supplier: supplier, Hit: hit, NameScore: nameScore}
	for _, r := range e.rules {
		if disposition, ok := r.evaluate(in); ok {
			return disposition, r.name
		}
	}
	// Unreachable: needsReview always fires.
	return model.NeedsReview, RuleNeedsReview
}

// strongMatch: a near-exact name with nothing actively contradicting it is
// a true positive.
func (e *Engine) strongMatch(in Input) (model.Disposition, bool) {
	if in.NameScore >= e.policy.StrongThreshold && !e.contradicts(in.Supplier, in.Hit) {
		return model.TruePositive, true
	}
	return 0, false
}

// attributeContradiction: a disagreeing attribute present on both sides
// dismisses the hit even on a near-exact name.
func (e *Engine) attributeContradiction(in Input) (model.Disposition, bool) {
	if e.contradicts(in.Supplier, in.Hit) {
		return model.FalsePositive, true
	}
	return 0, false
}

// weakName: too dissimilar to be the same party.
func (e *Engine) weakName(in Input) (model.Disposition, bool) {
	if in.NameScore < e.policy.WeakThreshold {
		return model.FalsePositive, true
	}
	return 0, false
}

// aliasMatch: the hit's primary or alias name is the supplier name after
// normalization. Contradictions were ruled out by the earlier rule, so a
// surviving exact alias escalates straight to true positive.
func (e *Engine) aliasMatch(in Input) (model.Disposition, bool) {
	want := e.normalize(in.Supplier.Name)
	if want == "" {
		return 0, false
	}
	if e.normalize(in.Hit.MatchedName) == want {
		return model.TruePositive, true
	}
	for _, alias := range in.Hit.Aliases {
		if e.normalize(alias) == want {
			return model.TruePositive, true
		}
	}
	return 0, false
}

// needsReview: mid-range score, no contradiction, no alias. A human
// decides.
func (e *Engine) needsReview(Input) (model.Disposition, bool) {
	return model.NeedsReview, true
}

// contradicts reports whether any enabled attribute is present on both
// sides with disagreeing values. Comparison is case-insensitive on the
// normalized text; absence on either side never contradicts.
func (e *Engine) contradicts(supplier model.Supplier, hit model.ScreeningHit) bool {
	if e.policy.MatchCountry && supplier.HasCountry() && hit.HasCountry() {
		if e.normalize(supplier.Country) != e.normalize(hit.Country) {
			return true
		}
	}
	if e.policy.MatchDateOfBirth && supplier.HasDateOfBirth() && hit.HasDateOfBirth() {
		if e.normalize(supplier.DateOfBirth) != e.normalize(hit.DateOfBirth) {
			return true
		}
	}
	if e.policy.MatchEntityType && supplier.HasEntityType() && hit.HasEntityType() {
		if supplier.EntityType != hit.EntityType {
			return true
		}
	}
	return false
}

// Package engine implements the match-classification core: per-hit
// classification, per-supplier aggregation, batch summarization, and the
// concurrent batch runner that ties them to the screening collaborators.
package engine

import (
	"strings"

	"github.com/surfaid/vetflow/internal/common"
	"github.com/surfaid/vetflow/internal/model"
	"github.com/surfaid/vetflow/internal/normalize"
	"github.com/surfaid/vetflow/internal/policy"
	"github.com/surfaid/vetflow/internal/similarity"
)

// Classifier assigns a disposition to every screening hit of a supplier.
// It is a pure function of its inputs and the policy it was built with:
// no state carries across suppliers, so one Classifier is safe to share
// between workers.
type Classifier struct {
	normalizer *normalize.Normalizer
	rules      *policy.Engine
}

// NewClassifier builds a classifier for the given policy.
func NewClassifier(p policy.Policy) *Classifier {
	n := normalize.New(p.LegalSuffixes)
	return &Classifier{
		normalizer: n,
		rules:      policy.NewEngine(p, n.Normalize),
	}
}

// Classify evaluates each hit against the supplier and returns the
// dispositions in input order. Hits are never dropped: false positives are
// retained with the rule that suppressed them so an auditor can see why.
// A hit missing its matched name returns *common.InvalidHitError and no
// dispositions; every other combination of missing optional attributes is
// a defined rule branch, not an error.
func (c *Classifier) Classify(supplier model.Supplier, hits []model.ScreeningHit) ([]model.HitDisposition, error) {
	supplierName := c.normalizer.Normalize(supplier.Name)

	dispositions := make([]model.HitDisposition, 0, len(hits))
	for i, hit := range hits {
		if strings.TrimSpace(hit.MatchedName) == "" {
			return nil, &common.InvalidHitError{Supplier: supplier.Name, Index: i}
		}

		score := similarity.Score(supplierName, c.normalizer.Normalize(hit.MatchedName))
		disposition, reason := c.rules.Evaluate(supplier, hit, score)
		dispositions = append(dispositions, model.HitDisposition{
			Hit:         hit,
			Disposition: disposition,
			Reason:      reason,
			Confidence:  score,
		})
	}
	return dispositions, nil
}

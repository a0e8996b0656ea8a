package engine

import (
	"github.com/surfaid/vetflow/internal/model"
)

// Aggregate rolls the classified hits of one supplier into a verdict. The
// verdict's worst disposition is the maximum severity across the hits; an
// empty hit list is valid and yields Clear. Total, no failure path.
func Aggregate(supplier model.Supplier, hits []model.HitDisposition) model.SupplierVerdict {
	worst := model.Clear
	for _, h := range hits {
		if h.Disposition > worst {
			worst = h.Disposition
		}
	}
	return model.SupplierVerdict{
		Supplier: supplier,
		Worst:    worst,
		HitCount: len(hits),
		Hits:     hits,
	}
}

// Summarize counts supplier results into the batch summary. The result is
// order-independent; errored suppliers land in their own bucket so that
// the buckets always sum to the supplier count even on partial success.
func Summarize(results []model.SupplierResult) model.BatchSummary {
	summary := model.BatchSummary{Suppliers: len(results)}
	for _, r := range results {
		if r.Err != nil {
			summary.Errored++
			continue
		}

		switch r.Verdict.Worst {
		case model.Clear:
			summary.Clear++
		case model.FalsePositive:
			summary.FalsePositives++
		case model.NeedsReview:
			summary.NeedsReview++
		case model.TruePositive:
			summary.TruePositives++
		}

		summary.TotalHits += r.Verdict.HitCount
		for _, h := range r.Verdict.Hits {
			if h.Disposition == model.FalsePositive {
				summary.SuppressedHits++
			}
		}
	}
	return summary
}

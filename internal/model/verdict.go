package model

// SupplierVerdict is the aggregated outcome for one supplier: the worst
// disposition across its hits, with every hit retained in input order so
// an auditor can see why each one was kept or suppressed.
type SupplierVerdict struct {
	Supplier Supplier
	Worst    Disposition
	HitCount int
	Hits     []HitDisposition
}

// SupplierResult is one supplier's outcome within a batch: either a
// verdict or the error that prevented classification. Exactly one of
// Verdict/Err is meaningful.
type SupplierResult struct {
	Supplier Supplier
	Verdict  SupplierVerdict
	Err      error
}

// BatchSummary counts suppliers by verdict bucket for one run. Errored
// suppliers are counted separately so partial-batch success stays visible;
// the buckets plus Errored always sum to Suppliers.
type BatchSummary struct {
	Suppliers      int
	Clear          int
	FalsePositives int
	NeedsReview    int
	TruePositives  int
	Errored        int
	TotalHits      int
	SuppressedHits int
}

package model

// Disposition is the classification outcome assigned to one screening hit.
// The integer values are the severity order used when rolling hits up into
// a supplier verdict: TruePositive outranks NeedsReview outranks
// FalsePositive outranks Clear.
type Disposition int

// Disposition severity order, lowest to highest.
const (
	Clear Disposition = iota
	FalsePositive
	NeedsReview
	TruePositive
)

// String returns the report rendering of the disposition.
func (d Disposition) String() string {
	switch d {
	case Clear:
		return "CLEAR"
	case FalsePositive:
		return "FALSE_POSITIVE"
	case NeedsReview:
		return "NEEDS_REVIEW"
	case TruePositive:
		return "TRUE_POSITIVE"
	default:
		return "UNKNOWN"
	}
}

// RequiresAttention reports whether a verdict at this severity should be
// surfaced to a human reviewer (and fail the run's exit code).
func (d Disposition) RequiresAttention() bool {
	return d >= NeedsReview
}

// HitDisposition pairs a screening hit with its classification outcome.
// Reason names the policy rule that fired; Confidence is the name
// similarity score the rules evaluated. Immutable once created.
type HitDisposition struct {
	Hit         ScreeningHit
	Disposition Disposition
	Reason      string
	Confidence  float64
}

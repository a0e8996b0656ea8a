// Package policy decides the disposition of a single screening hit. The
// false-positive policy is deliberately organization-specific: thresholds
// and contradiction toggles are configuration, not constants, so compliance
// can tune them without code changes.
package policy

import (
	"fmt"

	"github.com/surfaid/vetflow/internal/common"
)

// Policy holds the tunable parameters of the rules engine.
type Policy struct {
	// StrongThreshold is the name score at or above which a hit with no
	// contradicting attributes is a true positive.
	StrongThreshold float64
	// WeakThreshold is the name score below which a hit is dismissed as a
	// false positive regardless of its other attributes.
	WeakThreshold float64
	// MatchCountry, MatchDateOfBirth and MatchEntityType select which
	// attributes may contradict. An attribute only contradicts when both
	// supplier and hit carry a value and the values disagree; absence on
	// either side never contradicts.
	MatchCountry     bool
	MatchDateOfBirth bool
	MatchEntityType  bool
	// LegalSuffixes is handed to the normalizer; nil selects the default
	// suffix list.
	LegalSuffixes []string
}

// Default returns the default policy surface: thresholds 0.92/0.55 and all
// attribute contradictions enabled.
func Default() Policy {
	return Policy{
		StrongThreshold:  0.92,
		WeakThreshold:    0.55,
		MatchCountry:     true,
		MatchDateOfBirth: true,
		MatchEntityType:  true,
	}
}

// Validate checks that the thresholds describe a usable policy.
func (p Policy) Validate() error {
	if p.StrongThreshold <= 0 || p.StrongThreshold > 1 {
		return fmt.Errorf("%w: strong threshold %.2f outside (0,1]", common.ErrInvalidConfig, p.StrongThreshold)
	}
	if p.WeakThreshold < 0 || p.WeakThreshold >= p.StrongThreshold {
		return fmt.Errorf("%w: weak threshold %.2f must be in [0, strong)", common.ErrInvalidConfig, p.WeakThreshold)
	}
	return nil
}

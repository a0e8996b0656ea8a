package config

import (
	"github.com/spf13/viper"

	"github.com/surfaid/vetflow/internal/policy"
)

// LoadPolicy builds the false-positive policy from configuration, starting
// from the built-in defaults and overlaying whatever the config file or
// flags set. Thresholds are deliberately configuration, not constants: the
// policy surface is organization-specific.
func LoadPolicy() policy.Policy {
	p := policy.Default()

	if viper.IsSet("policy.strong_threshold") {
		p.StrongThreshold = viper.GetFloat64("policy.strong_threshold")
	}
	if viper.IsSet("policy.weak_threshold") {
		p.WeakThreshold = viper.GetFloat64("policy.weak_threshold")
	}
	if viper.IsSet("policy.match_country") {
		p.MatchCountry = viper.GetBool("policy.match_country")
	}
	if viper.IsSet("policy.match_date_of_birth") {
		p.MatchDateOfBirth = viper.GetBool("policy.match_date_of_birth")
	}
	if viper.IsSet("policy.match_entity_type") {
		p.MatchEntityType = viper.GetBool("policy.match_entity_type")
	}
	if viper.IsSet("policy.legal_suffixes") {
		p.LegalSuffixes = viper.GetStringSlice("policy.legal_suffixes")
	}

	return p
}

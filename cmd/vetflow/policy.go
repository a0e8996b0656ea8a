package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surfaid/vetflow/internal/cli"
	"github.com/surfaid/vetflow/internal/config"
	"github.com/surfaid/vetflow/internal/normalize"
	"github.com/surfaid/vetflow/internal/policy"
)

func policyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective false-positive policy",
		Long: `Print the thresholds, contradiction toggles, legal-suffix list and rule
order that the check command would apply, after merging config file,
environment and defaults.`,
		RunE: runPolicy,
	}
}

func runPolicy(_ *cobra.Command, _ []string) error {
	pol := config.LoadPolicy()
	if err := pol.Validate(); err != nil {
		return err
	}

	suffixes := pol.LegalSuffixes
	if suffixes == nil {
		suffixes = normalize.DefaultLegalSuffixes
	}

	rules := policy.NewEngine(pol, normalize.New(pol.LegalSuffixes).Normalize).Rules()

	var b strings.Builder
	fmt.Fprintf(&b, "strong threshold      %.2f\n", pol.StrongThreshold)
	fmt.Fprintf(&b, "weak threshold        %.2f\n", pol.WeakThreshold)
	fmt.Fprintf(&b, "match country         %t\n", pol.MatchCountry)
	fmt.Fprintf(&b, "match date of birth   %t\n", pol.MatchDateOfBirth)
	fmt.Fprintf(&b, "match entity type     %t\n", pol.MatchEntityType)
	fmt.Fprintf(&b, "legal suffixes        %s\n", strings.Join(suffixes, ", "))
	fmt.Fprintf(&b, "rule order            %s", strings.Join(rules, " > "))

	fmt.Println(cli.RenderBox("Effective policy", b.String()))
	return nil
}

package vars

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based tests for variable substitution.

// TestPropertySubstitutionDeterminism tests that the substitution result
// does not depend on the order in which variables were defined.
func TestPropertySubstitutionDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("define order does not change the result", prop.ForAll(
		func(names []string, text string) bool {
			forward := New()
			backward := New()
			for i, n := range names {
				if n == "" {
					continue
				}
				forward.Define(n, n+"!")
				backward.Define(names[len(names)-1-i], names[len(names)-1-i]+"!")
			}
			return forward.Substitute(text) == backward.Substitute(text)
		},
		gen.SliceOf(gen.Identifier()),
		gen.AnyString(),
	))

	properties.Property("text without '$' is returned unchanged", prop.ForAll(
		func(names []string, text string) bool {
			tbl := New()
			for _, n := range names {
				if n != "" {
					tbl.Define(n, "x")
				}
			}
			for _, r := range text {
				if r == '$' {
					return true
				}
			}
			return tbl.Substitute(text) == text
		},
		gen.SliceOf(gen.Identifier()),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

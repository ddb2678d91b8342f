//go:build property

package pkgset

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestResolveProperties validates de-duplication and ordering over generated
// target chains.
func TestResolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// chain builds a linear target chain where level i declares names[i].
	chain := func(names []int) *Collection {
		var c *Collection
		for i := len(names) - 1; i >= 0; i-- {
			pkg := Package{Name: fmt.Sprintf("pkg%d", names[i]), Version: "1"}
			next := NewCollection(fmt.Sprintf("t%d", i), []Package{pkg})
			next.Merge(c)
			c = next
		}
		if c == nil {
			c = NewCollection("empty", nil)
		}
		return c
	}

	properties.Property("resolved identities are unique", prop.ForAll(
		func(names []int) bool {
			resolved, err := chain(names).Resolve(context.Background())
			if err != nil {
				return false
			}
			seen := make(map[string]bool)
			for _, r := range resolved {
				if seen[r.ID()] {
					return false
				}
				seen[r.ID()] = true
			}
			return len(resolved) <= len(names)
		},
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.Property("depth never increases along the result", prop.ForAll(
		func(names []int) bool {
			resolved, err := chain(names).Resolve(context.Background())
			if err != nil {
				return false
			}
			for i := 1; i < len(resolved); i++ {
				if resolved[i].Depth > resolved[i-1].Depth {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.Property("each package sits at its deepest declaration", prop.ForAll(
		func(names []int) bool {
			resolved, err := chain(names).Resolve(context.Background())
			if err != nil {
				return false
			}
			deepest := make(map[string]int)
			for depth, n := range names {
				deepest[fmt.Sprintf("pkg%d", n)] = depth
			}
			for _, r := range resolved {
				if deepest[r.Name] != r.Depth {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.TestingRun(t)
}

package subsetsum

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func TestSolve_Witnesses(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		target int
		mode   Mode
		want   []int
		found  bool
	}{
		{"exact classic", []int{3, 34, 4, 12, 5, 2}, 9, Exact, []int{5, 4}, true},
		{"exact unreachable", []int{3, 34, 4, 12, 5, 2}, 30, Exact, nil, false},
		{"exact prefers shorter prefix", []int{1, 2, 3}, 3, Exact, []int{2, 1}, true},
		{"exact total is full set", []int{1, 2, 3}, 6, Exact, []int{3, 2, 1}, true},
		{"exact duplicates", []int{4, 4, 4, 4}, 12, Exact, []int{4, 4, 4}, true},
		{"exact beyond total", []int{1, 2, 3}, 7, Exact, nil, false},
		{"exact single item", []int{7}, 7, Exact, []int{7}, true},
		{"exact mixed", []int{6, 1, 3}, 4, Exact, []int{3, 1}, true},
		{"at most classic", []int{3, 34, 4, 12, 5, 2}, 8, AtMost, []int{5, 3}, true},
		{"at most above total", []int{1, 2, 3}, 100, AtMost, []int{3, 2, 1}, true},
		{"at most duplicates", []int{5, 5, 5}, 11, AtMost, []int{5, 5}, true},
		{"at most gap", []int{2, 4, 6}, 5, AtMost, []int{4}, true},
		{"at most single fits", []int{10, 5, 5, 7, 6, 8, 8}, 10, AtMost, []int{10}, true},
		{"at most pair", []int{10, 5, 5, 7, 6, 8, 8}, 13, AtMost, []int{6, 7}, true},
		{"at most skips larger sums", []int{8, 7, 9}, 14, AtMost, []int{9}, true},
		{"at most all items too large", []int{7}, 6, AtMost, nil, false},
		{"at most zero target", []int{6, 1, 3}, 0, AtMost, nil, false},
		{"at most negative target", []int{6, 1, 3}, -1, AtMost, nil, false},
		{"exact negative target", []int{6, 1, 3}, -1, Exact, nil, false},
		{"empty values", nil, 5, AtMost, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Solve(tt.values, tt.target, tt.mode)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolve_UnknownMode(t *testing.T) {
	_, ok := Solve([]int{1, 2}, 3, Mode(42))
	assert.False(t, ok)
}

func TestSolve_DoesNotMutateInput(t *testing.T) {
	values := []int{5, 3, 8, 1}
	_, ok := Solve(values, 9, AtMost)
	require.True(t, ok)
	assert.Equal(t, []int{5, 3, 8, 1}, values)
}

// bruteForceBest enumerates every non-empty subset and returns the largest
// sum not exceeding target, or -1.
func bruteForceBest(values []int, target int) int {
	best := -1
	for mask := 1; mask < 1<<len(values); mask++ {
		s := 0
		for i, v := range values {
			if mask&(1<<i) != 0 {
				s += v
			}
		}
		if s <= target && s > best {
			best = s
		}
	}
	return best
}

// isSubMultiset reports whether every element of sub can be drawn from values.
func isSubMultiset(sub, values []int) bool {
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}
	for _, v := range sub {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func TestSolve_AtMostMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 300; round++ {
		n := 1 + rng.IntN(12)
		values := make([]int, n)
		for i := range values {
			values[i] = 1 + rng.IntN(15)
		}
		target := rng.IntN(sum(values) + 5)

		want := bruteForceBest(values, target)
		got, ok := Solve(values, target, AtMost)

		if want < 0 {
			require.Falsef(t, ok, "values=%v target=%d: expected no subset, got %v", values, target, got)
			continue
		}
		require.Truef(t, ok, "values=%v target=%d: expected subset summing to %d", values, target, want)
		require.Equalf(t, want, sum(got), "values=%v target=%d", values, target)
		require.Truef(t, isSubMultiset(got, values), "witness %v not drawn from %v", got, values)
	}
}

func TestSolve_ExactFindsEveryReachableSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for round := 0; round < 50; round++ {
		n := 1 + rng.IntN(10)
		values := make([]int, n)
		for i := range values {
			values[i] = 1 + rng.IntN(9)
		}

		reachable := make(map[int]bool)
		for mask := 1; mask < 1<<n; mask++ {
			s := 0
			for i, v := range values {
				if mask&(1<<i) != 0 {
					s += v
				}
			}
			reachable[s] = true
		}

		for target := 0; target <= sum(values)+1; target++ {
			got, ok := Solve(values, target, Exact)
			if !reachable[target] {
				assert.Falsef(t, ok, "values=%v target=%d should be unreachable", values, target)
				continue
			}
			require.Truef(t, ok, "values=%v target=%d should be reachable", values, target)
			assert.Equal(t, target, sum(got))
			assert.True(t, isSubMultiset(got, values))
		}

		full, ok := Solve(values, sum(values), Exact)
		require.True(t, ok)
		assert.ElementsMatch(t, values, full)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	values := []int{9, 4, 7, 4, 3, 8, 2}
	first, ok := Solve(values, 17, AtMost)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, _ := Solve(values, 17, AtMost)
		assert.Equal(t, first, again)
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "at-most", AtMost.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func BenchmarkSolve_Congregation(b *testing.B) {
	values := make([]int, 120)
	for i := range values {
		values[i] = 4 + i%6
	}
	for b.Loop() {
		Solve(values, 40, AtMost)
	}
}

// Package pool partitions multiplex PCR primer pairs into non-conflicting
// reaction pools. Conflicts come from severe cross-dimers, colliding
// product sizes and shared off-target templates; pools are the color
// classes of a greedy sequential coloring of the conflict graph.
package pool

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"plexer/internal/fold"
)

// Pair is one primer pair under consideration. ProductLength 0 means
// unknown; OffTargets lists template names the pair amplifies besides its
// own target.
type Pair struct {
	ID            string
	Fwd           string
	Rev           string
	ProductLength int
	OffTargets    []string
}

// Reasons records why two pairs conflict.
type Reasons struct {
	Dimer     bool
	Size      bool
	OffTarget bool
}

// Any reports whether at least one conflict reason holds.
func (r Reasons) Any() bool {
	return r.Dimer || r.Size || r.OffTarget
}

// Options tunes conflict detection.
type Options struct {
	// dimers at least this stable conflict even away from a 3' end
	ConflictThreshold float64
	// product sizes closer than this collide; 0 disables the check
	SizeTolerance int
}

// DefaultOptions mirror the engine-wide defaults.
func DefaultOptions() Options {
	return Options{ConflictThreshold: -6, SizeTolerance: 20}
}

// Graph is an undirected conflict graph over pairs, indexed as given.
type Graph struct {
	Pairs     []Pair
	Conflicts [][]Reasons // symmetric n×n matrix
}

// Conflict reports whether pairs i and j conflict.
func (g *Graph) Conflict(i, j int) bool {
	return g.Conflicts[i][j].Any()
}

// severeCrossDimer checks the four forward/reverse combinations of two
// pairs. A dimer is severe when it is 3'-anchored at ΔG -3 or below, or
// anywhere at the configured threshold or below.
func severeCrossDimer(a, b Pair, threshold float64) bool {
	combos := [4][2]string{
		{a.Fwd, b.Fwd},
		{a.Fwd, b.Rev},
		{a.Rev, b.Fwd},
		{a.Rev, b.Rev},
	}
	for _, c := range combos {
		d := fold.DimerScan(c[0], c[1])
		if d == nil {
			continue
		}
		if (d.Touches3 && d.DG <= -3) || (!d.Touches3 && d.DG <= threshold) {
			return true
		}
	}
	return false
}

func sharedOffTarget(a, b Pair) bool {
	if len(a.OffTargets) == 0 || len(b.OffTargets) == 0 {
		return false
	}
	set := make(map[string]bool, len(a.OffTargets))
	for _, name := range a.OffTargets {
		set[name] = true
	}
	for _, name := range b.OffTargets {
		if set[name] {
			return true
		}
	}
	return false
}

// BuildGraph screens every pair of pairs. The O(N²) dimer scans are
// independent, so they fan out across cores; each result lands in its own
// matrix slot, keeping the graph deterministic.
func BuildGraph(pairs []Pair, opts Options) *Graph {
	n := len(pairs)
	conflicts := make([][]Reasons, n)
	for i := range conflicts {
		conflicts[i] = make([]Reasons, n)
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			eg.Go(func() error {
				var r Reasons
				r.Dimer = severeCrossDimer(pairs[i], pairs[j], opts.ConflictThreshold)
				if opts.SizeTolerance > 0 &&
					pairs[i].ProductLength > 0 && pairs[j].ProductLength > 0 {
					diff := pairs[i].ProductLength - pairs[j].ProductLength
					if diff < 0 {
						diff = -diff
					}
					r.Size = diff < opts.SizeTolerance
				}
				r.OffTarget = sharedOffTarget(pairs[i], pairs[j])
				conflicts[i][j] = r
				conflicts[j][i] = r
				return nil
			})
		}
	}
	eg.Wait() // workers never return an error

	return &Graph{Pairs: pairs, Conflicts: conflicts}
}

// Result is a pooling assignment. Colors[i] is the pool index of pair i;
// Pools lists pair indices per pool, each in original input order.
type Result struct {
	Colors []int
	Pools  [][]int
}

// Resolve colors the graph greedily in input index order: each pair takes
// the smallest non-negative color not used by a lower-indexed neighbor.
// The ordering is part of the contract; the pool count is an upper-bound
// heuristic, not a minimum.
func Resolve(g *Graph) Result {
	n := len(g.Pairs)
	colors := make([]int, n)
	maxColor := -1

	for i := 0; i < n; i++ {
		used := map[int]bool{}
		for j := 0; j < i; j++ {
			if g.Conflict(i, j) {
				used[colors[j]] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[i] = c
		if c > maxColor {
			maxColor = c
		}
	}

	pools := make([][]int, maxColor+1)
	for i, c := range colors {
		pools[c] = append(pools[c], i)
	}
	return Result{Colors: colors, Pools: pools}
}

package pool

import (
	"reflect"
	"testing"
)

// polyA primers cannot dimerize with each other: the scan compares A
// against the complement T, which never pairs with A again.
func inertPair(id string, size int) Pair {
	return Pair{ID: id, Fwd: "AAAAAAAAAA", Rev: "AAAAAAAAAA", ProductLength: size}
}

func Test_Resolve_noConflicts(t *testing.T) {
	pairs := []Pair{
		inertPair("p1", 100),
		inertPair("p2", 200),
		inertPair("p3", 300),
		inertPair("p4", 400),
	}
	g := BuildGraph(pairs, DefaultOptions())
	res := Resolve(g)

	if want := []int{0, 0, 0, 0}; !reflect.DeepEqual(res.Colors, want) {
		t.Errorf("colors = %v, want %v", res.Colors, want)
	}
	if len(res.Pools) != 1 {
		t.Errorf("got %d pools, want 1", len(res.Pools))
	}
	if !reflect.DeepEqual(res.Pools[0], []int{0, 1, 2, 3}) {
		t.Errorf("pool 0 = %v, want original order", res.Pools[0])
	}
}

func Test_Resolve_dimerConflict(t *testing.T) {
	// C10 and G10 anneal over their full length, a severe 3'-anchored dimer
	pairs := []Pair{
		inertPair("p1", 100),
		{ID: "p2", Fwd: "CCCCCCCCCC", Rev: "CCCCCCCCCC", ProductLength: 200},
		{ID: "p3", Fwd: "GGGGGGGGGG", Rev: "GGGGGGGGGG", ProductLength: 300},
	}
	g := BuildGraph(pairs, DefaultOptions())

	if !g.Conflict(1, 2) {
		t.Fatal("expected a dimer conflict between p2 and p3")
	}
	if !g.Conflicts[1][2].Dimer {
		t.Error("conflict reason should be the dimer")
	}
	if g.Conflict(0, 1) || g.Conflict(0, 2) {
		t.Error("polyA pair should conflict with nobody")
	}

	res := Resolve(g)
	if res.Colors[1] == res.Colors[2] {
		t.Errorf("conflicting pairs share color %d", res.Colors[1])
	}
	if len(res.Pools) != 2 {
		t.Errorf("got %d pools, want 2", len(res.Pools))
	}
}

func Test_BuildGraph_sizeCollision(t *testing.T) {
	pairs := []Pair{inertPair("p1", 100), inertPair("p2", 110)}

	g := BuildGraph(pairs, DefaultOptions())
	if !g.Conflicts[0][1].Size {
		t.Error("product sizes 100 and 110 collide at tolerance 20")
	}

	g = BuildGraph(pairs, Options{ConflictThreshold: -6, SizeTolerance: 0})
	if g.Conflicts[0][1].Size {
		t.Error("tolerance 0 disables the size check")
	}

	unknown := []Pair{inertPair("p1", 0), inertPair("p2", 110)}
	g = BuildGraph(unknown, DefaultOptions())
	if g.Conflicts[0][1].Size {
		t.Error("an unknown product length never collides")
	}
}

func Test_BuildGraph_sharedOffTarget(t *testing.T) {
	pairs := []Pair{
		{ID: "p1", Fwd: "AAAAAAAAAA", Rev: "AAAAAAAAAA", OffTargets: []string{"chr2", "chr5"}},
		{ID: "p2", Fwd: "AAAAAAAAAA", Rev: "AAAAAAAAAA", OffTargets: []string{"chr5"}},
		{ID: "p3", Fwd: "AAAAAAAAAA", Rev: "AAAAAAAAAA", OffTargets: []string{"chr9"}},
	}
	g := BuildGraph(pairs, DefaultOptions())

	if !g.Conflicts[0][1].OffTarget {
		t.Error("p1 and p2 share chr5")
	}
	if g.Conflicts[0][2].OffTarget || g.Conflicts[1][2].OffTarget {
		t.Error("p3 shares no off-target")
	}
}

// the greedy pass is deliberately order-dependent: a chain 0-1, 1-2
// two-colors, and the colors come out in input order
func Test_Resolve_orderDependence(t *testing.T) {
	pairs := []Pair{inertPair("a", 100), inertPair("b", 105), inertPair("c", 110)}
	// sizes: |100-105| and |105-110| collide at tolerance 10, |100-110| does not
	g := BuildGraph(pairs, Options{ConflictThreshold: -6, SizeTolerance: 10})

	res := Resolve(g)
	if want := []int{0, 1, 0}; !reflect.DeepEqual(res.Colors, want) {
		t.Errorf("colors = %v, want %v", res.Colors, want)
	}
	if want := [][]int{{0, 2}, {1}}; !reflect.DeepEqual(res.Pools, want) {
		t.Errorf("pools = %v, want %v", res.Pools, want)
	}
}

func Test_Resolve_empty(t *testing.T) {
	res := Resolve(BuildGraph(nil, DefaultOptions()))
	if len(res.Colors) != 0 || len(res.Pools) != 0 {
		t.Errorf("empty input should resolve to nothing, got %+v", res)
	}
}

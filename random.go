package opexpr

import (
	"math/rand"
	"strconv"
)

const (
	// constprob is the chance that a subtree with room to grow is a constant.
	constprob = 0.5
	// minconst and maxconst bound random constants as [minconst, maxconst).
	minconst = 0
	maxconst = 100
)

// Randomize replaces the tree with a random expression of at most maxDepth
// levels. The root is always an operator. Panics if the table is empty.
func (t *Tree) Randomize(rng *rand.Rand, maxDepth int) {
	if len(t.tab.ops) == 0 {
		panic("opexpr: Randomize with no operators")
	}
	t.root = randop(rng, t.tab, maxDepth)
}

func randop(rng *rand.Rand, tab *Table, depth int) *node {
	return &node{
		kind:  nodeOp,
		op:    tab.Random(rng),
		left:  randnode(rng, tab, depth-1),
		right: randnode(rng, tab, depth-1),
	}
}

func randnode(rng *rand.Rand, tab *Table, depth int) *node {
	if depth <= 1 || rng.Float64() < constprob {
		v := rng.Intn(maxconst-minconst) + minconst
		return &node{kind: nodeConst, text: strconv.Itoa(v), val: float64(v), ok: true}
	}
	return randop(rng, tab, depth)
}

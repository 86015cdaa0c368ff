package model

import (
	"math/rand/v2"
	"testing"
)

func aliveSet(g *Grid) map[[2]int]bool {
	alive := map[[2]int]bool{}
	for r := range g.Rows() {
		for c := range g.Cols() {
			if g.IsAlive(r, c) {
				alive[[2]int{r, c}] = true
			}
		}
	}
	return alive
}

func expectAlive(t *testing.T, g *Grid, expects map[[2]int]bool) {
	t.Helper()
	for r := range g.Rows() {
		for c := range g.Cols() {
			alive := g.IsAlive(r, c)
			if expects[[2]int{r, c}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, alive, expects[[2]int{r, c}])
			}
		}
	}
}

func cloneGrid(g *Grid) *Grid {
	out := NewGrid(g.Rows(), g.Cols())
	for r := range g.Rows() {
		for c := range g.Cols() {
			out.Set(r, c, g.Get(r, c))
		}
	}
	return out
}

// stepN returns g advanced by n generations, leaving g untouched. Two buffers
// swap roles each step like the game does.
func stepN(g *Grid, n int) *Grid {
	cur, next := cloneGrid(g), NewGrid(g.Rows(), g.Cols())
	for range n {
		cur.Step(next)
		cur, next = next, cur
	}
	return cur
}

func TestNewRandomGridProbability(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))

	if n := NewRandomGrid(45, 45, 0, rng).CountLivingCells(); n != 0 {
		t.Fatalf("probability 0 produced %d live cells", n)
	}
	if n := NewRandomGrid(45, 45, 1, rng).CountLivingCells(); n != 45*45 {
		t.Fatalf("probability 1 produced %d live cells", n)
	}

	g := NewRandomGrid(45, 45, 0.125, rng)
	n := g.CountLivingCells()
	if n < 150 || n > 370 {
		t.Fatalf("probability 1/8 produced %d of %d live cells", n, 45*45)
	}
	for r := range g.Rows() {
		for c := range g.Cols() {
			if v := g.Get(r, c); v != Dead && v != Alive {
				t.Fatalf("cell (%d,%d) holds %d", r, c, v)
			}
		}
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	g := NewGrid(10, 12)
	g.Set(-1, 0, Alive)
	g.Set(10, 0, Alive)
	g.Set(0, 12, Alive)
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("out of range Set changed %d cells", n)
	}
	if g.Get(-1, -1) != Dead || g.Get(10, 12) != Dead {
		t.Fatal("out of range Get should report Dead")
	}
}

func TestCountLiveNeighborsWraps(t *testing.T) {
	g := NewGrid(10, 12)
	g.Set(9, 11, Alive)

	if n := g.CountLiveNeighbors(0, 0); n != 1 {
		t.Fatalf("corner (0,0) counted %d neighbours, expected the opposite corner", n)
	}
	if n := g.CountLiveNeighbors(9, 0); n != 1 {
		t.Fatalf("(9,0) counted %d neighbours across the column edge", n)
	}
	if n := g.CountLiveNeighbors(0, 11); n != 1 {
		t.Fatalf("(0,11) counted %d neighbours across the row edge", n)
	}
	if n := g.CountLiveNeighbors(9, 11); n != 0 {
		t.Fatalf("a cell must not count itself, got %d", n)
	}
}

func TestCountLiveNeighborsFullGrid(t *testing.T) {
	g := NewGrid(10, 10)
	for r := range 10 {
		for c := range 10 {
			g.Set(r, c, Alive)
		}
	}
	for r := range 10 {
		for c := range 10 {
			if n := g.CountLiveNeighbors(r, c); n != 8 {
				t.Fatalf("cell (%d,%d) counted %d neighbours, expected 8", r, c, n)
			}
		}
	}
}

func TestStepDeadGridStaysDead(t *testing.T) {
	g := NewGrid(15, 20)
	next := NewRandomGrid(15, 20, 0.5, rand.New(rand.NewPCG(1, 2)))

	g.Step(next)
	if n := next.CountLivingCells(); n != 0 {
		t.Fatalf("dead grid produced %d live cells", n)
	}
}

func TestStepOverwritesScratchGrid(t *testing.T) {
	g := NewGrid(10, 10)
	g.AddBlinker(5, 4)
	next := NewRandomGrid(10, 10, 1, rand.New(rand.NewPCG(3, 4)))

	g.Step(next)
	expectAlive(t, next, map[[2]int]bool{
		{4, 5}: true,
		{5, 5}: true,
		{6, 5}: true,
	})
}

func TestBlinkerOscillation(t *testing.T) {
	g := NewGrid(10, 10)
	g.AddBlinker(0, 4)
	seed := aliveSet(g)

	// the vertical phase wraps over the top edge
	expectAlive(t, stepN(g, 1), map[[2]int]bool{
		{9, 5}: true,
		{0, 5}: true,
		{1, 5}: true,
	})
	expectAlive(t, stepN(g, 2), seed)
	expectAlive(t, g, seed)
}

func TestGliderTranslatesEveryFourSteps(t *testing.T) {
	g := NewGrid(20, 20)
	g.AddGlider(1, 1)
	seed := aliveSet(g)

	after := stepN(g, 4)
	if after == g {
		t.Fatal("stepping must not hand back the seed grid")
	}

	expects := map[[2]int]bool{}
	for cell := range seed {
		expects[[2]int{cell[0] + 1, cell[1] + 1}] = true
	}
	if len(expects) != 5 {
		t.Fatalf("glider has %d cells", len(expects))
	}
	expectAlive(t, after, expects)
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	g := NewGrid(10, 10)
	g.AddGlider(1, 1)
	seed := aliveSet(g)

	// halfway round the torus, then all the way back to the start
	expectAlive(t, stepN(g, 20), map[[2]int]bool{
		{6, 7}: true,
		{7, 8}: true,
		{8, 6}: true,
		{8, 7}: true,
		{8, 8}: true,
	})
	expectAlive(t, stepN(g, 40), seed)
}

func TestHasChanged(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	g := NewRandomGrid(12, 14, 0.3, rng)

	if HasChanged(g, g) {
		t.Fatal("a grid compared with itself must not change")
	}

	other := NewGrid(12, 14)
	for r := range 12 {
		for c := range 14 {
			other.Set(r, c, g.Get(r, c))
		}
	}
	if HasChanged(g, other) {
		t.Fatal("identical copies reported a change")
	}

	other.Set(11, 13, 1-other.Get(11, 13))
	if !HasChanged(g, other) {
		t.Fatal("a single differing cell was not detected")
	}

	if !HasChanged(g, NewGrid(12, 15)) {
		t.Fatal("grids of different sizes must differ")
	}
}

func TestBlockIsFixedPoint(t *testing.T) {
	g := NewGrid(10, 10)
	g.AddBlock(4, 4)
	next := NewGrid(10, 10)

	g.Step(next)
	if HasChanged(g, next) {
		t.Fatal("block still life changed after one step")
	}
}

func TestResetResizes(t *testing.T) {
	g := NewGrid(10, 10)
	g.AddBlock(0, 0)

	g.Reset(12, 30)
	if g.Rows() != 12 || g.Cols() != 30 {
		t.Fatalf("got %dx%d after reset", g.Rows(), g.Cols())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("reset left %d live cells", n)
	}

	g.AddBlock(10, 28)
	g.Reset(12, 30)
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("same-size reset left %d live cells", n)
	}
}

package model

import "sync"

// GridToPool returns a grid to the pool for reuse; a nil pool drops it
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridFromPool takes a dead grid of the given size from pool, or allocates
// one when pool is nil
func GridFromPool(rows, cols int, pool *GridPool) *Grid {
	if pool == nil {
		return NewGrid(rows, cols)
	}
	return pool.Get(rows, cols)
}

// GridPool keeps game buffers around between runs
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its dimensions
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(rows, cols)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}

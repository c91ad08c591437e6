// Package system holds the per-tick simulation systems run by the frame loop
package system

import (
	"sort"

	"github.com/lixenwraith/vi-elevator/world"
)

// System advances one concern of the world state by one tick
type System interface {
	Init()
	Priority() int // Lower values run first
	Update(state *world.State)
}

// Pipeline runs systems in priority order against a single state
type Pipeline struct {
	systems []System
}

// NewPipeline creates a pipeline from the given systems, sorted by priority
func NewPipeline(systems ...System) *Pipeline {
	p := &Pipeline{}
	for _, s := range systems {
		p.Add(s)
	}
	return p
}

// Add initializes a system and inserts it by priority, keeping insertion order on ties
func (p *Pipeline) Add(s System) {
	s.Init()
	p.systems = append(p.systems, s)
	sort.SliceStable(p.systems, func(i, j int) bool {
		return p.systems[i].Priority() < p.systems[j].Priority()
	})
}

// Update runs every system once
func (p *Pipeline) Update(state *world.State) {
	for _, s := range p.systems {
		s.Update(state)
	}
}

// Len returns the number of registered systems
func (p *Pipeline) Len() int {
	return len(p.systems)
}

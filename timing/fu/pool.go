package fu

import (
	"fmt"

	"github.com/sarchlab/minorfu/timing/latency"
)

// Pool is the ordered set of functional units available to the execute
// stage of one core.
type Pool struct {
	units []Descriptor
}

// NewPool creates the execute-stage pool: two integer ALUs, one integer
// multiplier, one integer divider, one memory unit, one misc unit and the
// configurable FloatSIMD unit, in that order. Only the FloatSIMD unit
// depends on opts.
func NewPool(base BaseUnits, opts *latency.Options) *Pool {
	return &Pool{
		units: []Descriptor{
			base.DefaultUnit(IntALU).Clone(),
			base.DefaultUnit(IntALU).Clone(),
			base.DefaultUnit(IntMul).Clone(),
			base.DefaultUnit(IntDiv).Clone(),
			base.DefaultUnit(Memory).Clone(),
			base.DefaultUnit(Misc).Clone(),
			NewFloatSIMDUnit(base, opts),
		},
	}
}

// Units returns a copy of the units in insertion order.
func (p *Pool) Units() []Descriptor {
	units := make([]Descriptor, len(p.units))
	for i, u := range p.units {
		units[i] = u.Clone()
	}
	return units
}

// Unit returns the unit at the given index.
func (p *Pool) Unit(i int) Descriptor {
	return p.units[i].Clone()
}

// Len returns the number of units in the pool.
func (p *Pool) Len() int {
	return len(p.units)
}

// Count returns how many units of the given kind the pool holds.
func (p *Pool) Count(kind Kind) int {
	n := 0
	for _, u := range p.units {
		if u.Kind == kind {
			n++
		}
	}
	return n
}

// FloatSIMD returns the configurable FloatSIMD unit.
func (p *Pool) FloatSIMD() Descriptor {
	for _, u := range p.units {
		if u.Kind == FloatSIMD {
			return u.Clone()
		}
	}
	return Descriptor{Kind: FloatSIMD}
}

// Clone returns a deep copy of the pool.
func (p *Pool) Clone() *Pool {
	return &Pool{units: p.Units()}
}

// Validate checks the pool the way a consuming pipeline would: every kind
// must be present and every latency must be positive. Building a pool never
// calls it.
func (p *Pool) Validate() error {
	for _, kind := range Kinds {
		if p.Count(kind) == 0 {
			return fmt.Errorf("no %s unit in pool", kind)
		}
	}

	for i, u := range p.units {
		if u.OpLat <= 0 {
			return fmt.Errorf("unit %d (%s) opLat must be > 0, got %d",
				i, u.Kind, u.OpLat)
		}
		if u.IssueLat <= 0 {
			return fmt.Errorf("unit %d (%s) issueLat must be > 0, got %d",
				i, u.Kind, u.IssueLat)
		}
	}

	return nil
}

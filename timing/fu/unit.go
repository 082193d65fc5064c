// Package fu models the execute-stage functional units of an in-order core
// and the pool that groups them.
package fu

import "slices"

// Descriptor describes one functional unit and its timing.
type Descriptor struct {
	// Name is the name of the base definition the unit was built from.
	Name string `json:"name"`

	Kind Kind `json:"kind"`

	// OpClasses lists the operation classes the unit accepts.
	OpClasses []OpClass `json:"op_classes"`

	// OpLat is the number of cycles from issue until the result is
	// available.
	OpLat int `json:"op_lat"`

	// IssueLat is the number of cycles between two successive issues to
	// the unit.
	IssueLat int `json:"issue_lat"`
}

// Accepts returns true if the unit can execute the given operation class.
func (d Descriptor) Accepts(op OpClass) bool {
	return slices.Contains(d.OpClasses, op)
}

// Clone returns a deep copy of the descriptor.
func (d Descriptor) Clone() Descriptor {
	d.OpClasses = slices.Clone(d.OpClasses)
	return d
}

// BaseUnits provides the default definition of each kind of functional
// unit. Constructors copy the returned descriptor before changing it.
type BaseUnits interface {
	DefaultUnit(kind Kind) Descriptor
}

// MinorDefaults provides the default functional units of the Minor in-order
// core.
type MinorDefaults struct{}

// DefaultUnit returns the Minor default unit of the given kind. An unknown
// kind yields a zero Descriptor carrying only the kind.
func (MinorDefaults) DefaultUnit(kind Kind) Descriptor {
	switch kind {
	case IntALU:
		return Descriptor{
			Name:      "MinorDefaultIntFU",
			Kind:      IntALU,
			OpClasses: []OpClass{OpIntAlu},
			OpLat:     3,
			IssueLat:  1,
		}
	case IntMul:
		return Descriptor{
			Name:      "MinorDefaultIntMulFU",
			Kind:      IntMul,
			OpClasses: []OpClass{OpIntMult},
			OpLat:     3,
			IssueLat:  1,
		}
	case IntDiv:
		return Descriptor{
			Name:      "MinorDefaultIntDivFU",
			Kind:      IntDiv,
			OpClasses: []OpClass{OpIntDiv},
			OpLat:     9,
			IssueLat:  9,
		}
	case Memory:
		return Descriptor{
			Name: "MinorDefaultMemFU",
			Kind: Memory,
			OpClasses: []OpClass{
				OpMemRead, OpMemWrite, OpFloatMemRead, OpFloatMemWrite,
			},
			OpLat:    1,
			IssueLat: 1,
		}
	case Misc:
		return Descriptor{
			Name:      "MinorDefaultMiscFU",
			Kind:      Misc,
			OpClasses: []OpClass{OpIprAccess, OpInstPrefetch},
			OpLat:     1,
			IssueLat:  1,
		}
	case FloatSIMD:
		return Descriptor{
			Name:      "MinorDefaultFloatSimdFU",
			Kind:      FloatSIMD,
			OpClasses: floatSIMDOpClasses(),
			OpLat:     6,
			IssueLat:  1,
		}
	default:
		return Descriptor{Kind: kind}
	}
}

func floatSIMDOpClasses() []OpClass {
	classes := make([]OpClass, 0, OpSimdFloatSqrt-OpFloatAdd+1)
	for c := OpFloatAdd; c <= OpSimdFloatSqrt; c++ {
		classes = append(classes, c)
	}
	return classes
}

package fu

// Kind identifies the class of a functional unit.
type Kind int

const (
	IntALU Kind = iota
	IntMul
	IntDiv
	Memory
	Misc
	FloatSIMD
)

// Kinds lists every functional unit kind.
var Kinds = []Kind{IntALU, IntMul, IntDiv, Memory, Misc, FloatSIMD}

func (k Kind) String() string {
	switch k {
	case IntALU:
		return "IntALU"
	case IntMul:
		return "IntMul"
	case IntDiv:
		return "IntDiv"
	case Memory:
		return "Memory"
	case Misc:
		return "Misc"
	case FloatSIMD:
		return "FloatSIMD"
	default:
		return "Unknown"
	}
}

// OpClass is a class of operation that a functional unit may accept.
type OpClass int

const (
	OpIntAlu OpClass = iota
	OpIntMult
	OpIntDiv

	OpFloatAdd
	OpFloatCmp
	OpFloatCvt
	OpFloatMisc
	OpFloatMult
	OpFloatMultAcc
	OpFloatDiv
	OpFloatSqrt

	OpSimdAdd
	OpSimdAddAcc
	OpSimdAlu
	OpSimdCmp
	OpSimdCvt
	OpSimdMisc
	OpSimdMult
	OpSimdMultAcc
	OpSimdShift
	OpSimdShiftAcc
	OpSimdSqrt
	OpSimdFloatAdd
	OpSimdFloatAlu
	OpSimdFloatCmp
	OpSimdFloatCvt
	OpSimdFloatDiv
	OpSimdFloatMisc
	OpSimdFloatMult
	OpSimdFloatMultAcc
	OpSimdFloatSqrt

	OpMemRead
	OpMemWrite
	OpFloatMemRead
	OpFloatMemWrite

	OpIprAccess
	OpInstPrefetch
)

var opClassNames = map[OpClass]string{
	OpIntAlu:           "IntAlu",
	OpIntMult:          "IntMult",
	OpIntDiv:           "IntDiv",
	OpFloatAdd:         "FloatAdd",
	OpFloatCmp:         "FloatCmp",
	OpFloatCvt:         "FloatCvt",
	OpFloatMisc:        "FloatMisc",
	OpFloatMult:        "FloatMult",
	OpFloatMultAcc:     "FloatMultAcc",
	OpFloatDiv:         "FloatDiv",
	OpFloatSqrt:        "FloatSqrt",
	OpSimdAdd:          "SimdAdd",
	OpSimdAddAcc:       "SimdAddAcc",
	OpSimdAlu:          "SimdAlu",
	OpSimdCmp:          "SimdCmp",
	OpSimdCvt:          "SimdCvt",
	OpSimdMisc:         "SimdMisc",
	OpSimdMult:         "SimdMult",
	OpSimdMultAcc:      "SimdMultAcc",
	OpSimdShift:        "SimdShift",
	OpSimdShiftAcc:     "SimdShiftAcc",
	OpSimdSqrt:         "SimdSqrt",
	OpSimdFloatAdd:     "SimdFloatAdd",
	OpSimdFloatAlu:     "SimdFloatAlu",
	OpSimdFloatCmp:     "SimdFloatCmp",
	OpSimdFloatCvt:     "SimdFloatCvt",
	OpSimdFloatDiv:     "SimdFloatDiv",
	OpSimdFloatMisc:    "SimdFloatMisc",
	OpSimdFloatMult:    "SimdFloatMult",
	OpSimdFloatMultAcc: "SimdFloatMultAcc",
	OpSimdFloatSqrt:    "SimdFloatSqrt",
	OpMemRead:          "MemRead",
	OpMemWrite:         "MemWrite",
	OpFloatMemRead:     "FloatMemRead",
	OpFloatMemWrite:    "FloatMemWrite",
	OpIprAccess:        "IprAccess",
	OpInstPrefetch:     "InstPrefetch",
}

func (c OpClass) String() string {
	if name, ok := opClassNames[c]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText writes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarshalText writes the operation class by name.
func (c OpClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

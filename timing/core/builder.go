package core

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/minorfu/timing/fu"
	"github.com/sarchlab/minorfu/timing/latency"
)

// Builder can build CPUs.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	params Params
	base   fu.BaseUnits
	opts   *latency.Options
}

// MakeBuilder returns a Builder with default parameters and Minor default
// units.
func MakeBuilder() Builder {
	return Builder{
		freq:   1 * sim.GHz,
		params: DefaultParams(),
		base:   fu.MinorDefaults{},
	}
}

// WithEngine sets the engine that drives the CPU.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the CPU.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithParams replaces the base core parameters.
func (b Builder) WithParams(params Params) Builder {
	b.params = params
	return b
}

// WithBaseUnits sets where the default functional units come from.
func (b Builder) WithBaseUnits(base fu.BaseUnits) Builder {
	b.base = base
	return b
}

// WithOptions sets the options used to configure the FloatSIMD unit. A nil
// opts keeps every unit at its default.
func (b Builder) WithOptions(opts *latency.Options) Builder {
	b.opts = opts.Clone()
	return b
}

// Build creates a CPU.
func (b Builder) Build(name string) *CPU {
	cpu := &CPU{
		ComponentBase: sim.NewComponentBase(name),
		Engine:        b.engine,
		Freq:          b.freq,
		Params:        b.params,
	}

	cpu.ExecuteFuncUnits = fu.NewPool(b.base, b.opts)

	slog.Debug("CPU built",
		slog.String("name", name),
		slog.Int("funcUnits", cpu.ExecuteFuncUnits.Len()))

	return cpu
}

// BuildCores creates n independent CPUs named name[0] to name[n-1]. Each
// CPU owns its own pool.
func (b Builder) BuildCores(name string, n int) []*CPU {
	cpus := make([]*CPU, n)
	for i := range cpus {
		cpus[i] = b.Build(fmt.Sprintf("%s[%d]", name, i))
	}
	return cpus
}

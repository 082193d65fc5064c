// Package core provides the CPU configuration object that attaches an
// execute-stage functional-unit pool to a Minor-style in-order core.
package core

import (
	"fmt"
	"reflect"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/minorfu/timing/fu"
	"github.com/sarchlab/minorfu/timing/latency"
)

// CPU is a configured in-order core. It carries the base core parameters
// and owns the functional-unit pool of its execute stage. The pipeline
// model that simulates it lives elsewhere.
type CPU struct {
	*sim.ComponentBase

	Engine sim.Engine
	Freq   sim.Freq
	Params Params

	// ExecuteFuncUnits is the unit pool of the execute stage.
	ExecuteFuncUnits *fu.Pool
}

var _ sim.Component = (*CPU)(nil)

// NewCPU creates a CPU with default parameters, Minor default units, and
// the FPU latencies found in opts.
func NewCPU(name string, opts *latency.Options) *CPU {
	return MakeBuilder().WithOptions(opts).Build(name)
}

// Handle reports an error for every event. The configuration object itself
// is not driven by events.
func (c *CPU) Handle(e sim.Event) error {
	return fmt.Errorf("%s cannot handle event of %s",
		c.Name(), reflect.TypeOf(e))
}

// NotifyRecv does nothing as the CPU has no ports.
func (c *CPU) NotifyRecv(_ sim.Port) {}

// NotifyPortFree does nothing as the CPU has no ports.
func (c *CPU) NotifyPortFree(_ sim.Port) {}

package fu

import (
	"log/slog"

	"github.com/sarchlab/minorfu/timing/latency"
)

// NewFloatSIMDUnit creates the floating-point/SIMD unit. It starts from the
// base FloatSIMD definition and applies the FPU latencies found in opts.
// Each latency is applied only when it is set. A nil opts yields the base
// unit unchanged.
func NewFloatSIMDUnit(base BaseUnits, opts *latency.Options) Descriptor {
	unit := base.DefaultUnit(FloatSIMD).Clone()

	if opts.HasFPUOperationLatency() {
		unit.OpLat = opts.FPUOperationLatency
		warnNonPositive("fpu_operation_latency", unit.OpLat)
	}

	if opts.HasFPUIssueLatency() {
		unit.IssueLat = opts.FPUIssueLatency
		warnNonPositive("fpu_issue_latency", unit.IssueLat)
	}

	slog.Debug("FloatSIMD unit configured",
		slog.String("base", unit.Name),
		slog.Int("opLat", unit.OpLat),
		slog.Int("issueLat", unit.IssueLat))

	return unit
}

// Negative latencies are kept as given. The pipeline that consumes the
// pool decides what to do with them.
func warnNonPositive(option string, value int) {
	if value < 0 {
		slog.Warn("negative FPU latency applied",
			slog.String("option", option),
			slog.Int("value", value))
	}
}

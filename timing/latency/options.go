// Package latency holds the user-tunable timing options consulted when the
// execute-stage functional units are configured.
package latency

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the bundle of simulation options read while building a CPU.
// A zero field means the option was not given. A nil *Options means no
// options were given at all. Builders only read it.
type Options struct {
	// FPUOperationLatency is the number of cycles from issue to result for
	// the floating-point/SIMD unit.
	FPUOperationLatency int `json:"fpu_operation_latency" yaml:"fpu_operation_latency"`

	// FPUIssueLatency is the number of cycles between two issues to the
	// floating-point/SIMD unit.
	FPUIssueLatency int `json:"fpu_issue_latency" yaml:"fpu_issue_latency"`
}

// HasFPUOperationLatency returns true if the FPU operation latency is set.
func (o *Options) HasFPUOperationLatency() bool {
	return o != nil && o.FPUOperationLatency != 0
}

// HasFPUIssueLatency returns true if the FPU issue latency is set.
func (o *Options) HasFPUIssueLatency() bool {
	return o != nil && o.FPUIssueLatency != 0
}

// LoadOptions loads Options from a YAML file. JSON files are accepted too.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	opts := &Options{}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	return opts, nil
}

// SaveOptions writes the Options to a JSON file.
func (o *Options) SaveOptions(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize options: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write options file: %w", err)
	}

	return nil
}

// Merge returns a copy of o where every option set in override replaces
// the value in o. Either side may be nil.
func (o *Options) Merge(override *Options) *Options {
	merged := o.Clone()
	if merged == nil {
		merged = &Options{}
	}

	if override.HasFPUOperationLatency() {
		merged.FPUOperationLatency = override.FPUOperationLatency
	}
	if override.HasFPUIssueLatency() {
		merged.FPUIssueLatency = override.FPUIssueLatency
	}

	return merged
}

// Validate reports options that are set to a non-positive latency. Zero is
// treated as unset and is not reported.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if o.FPUOperationLatency < 0 {
		return fmt.Errorf("fpu_operation_latency must be > 0, got %d",
			o.FPUOperationLatency)
	}
	if o.FPUIssueLatency < 0 {
		return fmt.Errorf("fpu_issue_latency must be > 0, got %d",
			o.FPUIssueLatency)
	}
	return nil
}

// Clone returns a copy of the Options.
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}

	return &Options{
		FPUOperationLatency: o.FPUOperationLatency,
		FPUIssueLatency:     o.FPUIssueLatency,
	}
}

// Package main provides the entry point for minorfu.
// minorfu configures the execute-stage functional units of a Minor-style
// in-order CPU model built on Akita.
//
// For the full CLI, use: go run ./cmd/minorcfg
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("minorfu - Minor CPU functional-unit pool configuration")
	fmt.Println("Built on Akita simulation framework")
	fmt.Println("")
	fmt.Println("Usage: minorcfg [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -fpu-operation-latency  FloatSIMD operation latency in cycles")
	fmt.Println("  -fpu-issue-latency      FloatSIMD issue latency in cycles")
	fmt.Println("  -config                 Path to a YAML or JSON options file")
	fmt.Println("  -cores                  Number of CPU cores to build")
	fmt.Println("  -json                   Print pools as JSON")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/minorcfg' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/minorcfg' instead.")
	}
}

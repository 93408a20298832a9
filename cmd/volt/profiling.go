package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"volt/internal/prof"
)

// setupProfiling reads the persistent profiling flags and starts the
// matching profilers. The returned stop function is safe to call more than
// once.
func setupProfiling(cmd *cobra.Command) (func() error, error) {
	root := cmd.Root()

	cpuPath, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, err
	}
	heapPath, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, err
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return nil, err
	}

	session, err := prof.Start(prof.Config{
		CPUPath:   cpuPath,
		HeapPath:  heapPath,
		TracePath: tracePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start profiling: %w", err)
	}
	return session.Stop, nil
}

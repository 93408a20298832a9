package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"volt/internal/driver"
	"volt/internal/ir"
)

var emitCmd = &cobra.Command{
	Use:   "emit [kernel]",
	Short: "Emit the demonstration kernels as readable or encoded IR",
	Long: "Build the demonstration kernel set and dump it as readable IR, " +
		"optionally restricted to one kernel, written to an encoded module " +
		"file, or executed through the evaluator.",
	Args: cobra.MaximumNArgs(1),
	RunE: emitExecution,
}

func init() {
	emitCmd.Flags().String("out", "", "write the encoded module to a file")
	emitCmd.Flags().Bool("run", false, "execute each kernel and print its result")
}

func emitExecution(cmd *cobra.Command, args []string) error {
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	run, err := cmd.Flags().GetBool("run")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	m, kernels, warns, err := driver.KernelModule()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		idx := -1
		for i := range kernels {
			if kernels[i].Name == args[0] {
				idx = i
				break
			}
		}
		if idx < 0 {
			names := make([]string, len(kernels))
			for i, k := range kernels {
				names[i] = k.Name
			}
			return fmt.Errorf("unknown kernel %q, available: %s", args[0], strings.Join(names, ", "))
		}
		kernels = kernels[idx : idx+1]
		filtered := ir.NewModule(m.Name)
		filtered.Add(kernels[0].Fn)
		m = filtered
	}

	out := cmd.OutOrStdout()
	switch {
	case outPath != "":
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		if err := ir.EncodeModule(f, m); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(out, "wrote %s\n", outPath)
		}
	case run:
		for _, k := range kernels {
			res, err := k.Run()
			if err != nil {
				return fmt.Errorf("kernel %s: %w", k.Name, err)
			}
			fmt.Fprintf(out, "%s = %s\n", k.Name, res)
		}
	default:
		if err := ir.Dump(out, m); err != nil {
			return err
		}
	}

	printWarnings(os.Stderr, warns, quiet)
	return nil
}

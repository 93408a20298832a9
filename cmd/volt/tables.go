package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"volt/internal/driver"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Dump the conversion and operator dispatch tables",
	Long: "Print every directed scalar conversion and the full binary operator " +
		"matrix together with the fingerprint the report cache is keyed on.",
	Args: cobra.NoArgs,
	RunE: tablesExecution,
}

func init() {
	tablesCmd.Flags().Bool("json", false, "print the tables as JSON")
	tablesCmd.Flags().String("only", "all", "restrict output (cast|binary|all)")
}

type tablesPayload struct {
	Fingerprint string             `json:"fingerprint"`
	Casts       []driver.CastRow   `json:"casts,omitempty"`
	Binary      []driver.BinaryRow `json:"binary,omitempty"`
}

func tablesExecution(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	only, err := cmd.Flags().GetString("only")
	if err != nil {
		return err
	}
	switch only {
	case "cast", "binary", "all":
	default:
		return fmt.Errorf("invalid --only value %q, expected cast, binary or all", only)
	}

	fp := driver.Fingerprint()
	payload := tablesPayload{Fingerprint: fp.Hex()}
	if only != "binary" {
		payload.Casts = driver.CastTable()
	}
	if only != "cast" {
		payload.Binary = driver.BinaryTable()
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	bold := color.New(color.Bold)
	if payload.Casts != nil {
		bold.Fprintln(out, "casts")
		for _, r := range payload.Casts {
			fmt.Fprintf(out, "  %-5s -> %-5s %s\n", r.Src, r.Dst, r.Rule)
		}
	}
	if payload.Binary != nil {
		if payload.Casts != nil {
			fmt.Fprintln(out)
		}
		bold.Fprintln(out, "binary operators")
		for _, r := range payload.Binary {
			result := r.Result
			if result == "" {
				result = "-"
			}
			fmt.Fprintf(out, "  %-5s %-3s %-11s %-6s %s\n", r.Kind, r.Op, r.Class, result, r.Rule)
		}
	}
	fmt.Fprintf(out, "\nfingerprint %s\n", fp.Short())
	return nil
}

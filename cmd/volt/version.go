package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"volt/internal/version"
)

const versionTagline = "every cast accounted for"

var (
	versionFormat   string
	versionShowHash bool
	versionShowDate bool
	versionShowFull bool
)

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include all recorded build metadata")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show volt build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := versionShowHash || versionShowFull
		date := versionShowDate || versionShowFull
		switch strings.ToLower(versionFormat) {
		case "pretty":
			printVersion(cmd.OutOrStdout(), hash, date)
			return nil
		case "json":
			return printVersionJSON(cmd.OutOrStdout(), hash, date)
		}
		return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
	},
}

func printVersion(out io.Writer, hash, date bool) {
	fmt.Fprintf(out, "volt %s, %s\n", version.Colored(), versionTagline)
	if hash {
		fmt.Fprintf(out, "commit: %s\n", orUnknown(version.GitCommit))
	}
	if date {
		fmt.Fprintf(out, "built:  %s\n", orUnknown(version.BuildDate))
	}
	if !hash && !date {
		fmt.Fprintln(out, "set --hash, --date, or --full for more build trivia")
	}
}

func printVersionJSON(out io.Writer, hash, date bool) error {
	payload := struct {
		Tool      string `json:"tool"`
		Version   string `json:"version"`
		Tagline   string `json:"tagline"`
		GitCommit string `json:"git_commit,omitempty"`
		BuildDate string `json:"build_date,omitempty"`
	}{
		Tool:    "volt",
		Version: versionNumber(),
		Tagline: versionTagline,
	}
	if hash {
		payload.GitCommit = orUnknown(version.GitCommit)
	}
	if date {
		payload.BuildDate = orUnknown(version.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func versionNumber() string {
	if v := strings.TrimSpace(version.Version); v != "" {
		return v
	}
	return "dev"
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}

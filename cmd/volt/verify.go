package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"volt/internal/diag"
	"volt/internal/driver"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify generated code against reference semantics",
	Long: "Run the full verification matrix: every conversion pair, every operator " +
		"for every scalar kind, truthiness coercions, promotion and the array paths. " +
		"A clean run is cached under its table fingerprint.",
	Args: cobra.NoArgs,
	RunE: verifyExecution,
}

func init() {
	verifyCmd.Flags().Int("jobs", 0, "concurrent units (0 = one per CPU)")
	verifyCmd.Flags().Bool("no-cache", false, "ignore the report cache")
	verifyCmd.Flags().Bool("refresh-cache", false, "rerun even when a cached report exists")
	verifyCmd.Flags().String("ui", "auto", "progress interface (auto|on|off)")
	verifyCmd.Flags().Bool("json", false, "print the report as JSON")
}

func verifyExecution(cmd *cobra.Command, args []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if perr := stopProfiling(); perr != nil {
			fmt.Fprintf(os.Stderr, "profiling: %v\n", perr)
		}
	}()

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	refresh, err := cmd.Flags().GetBool("refresh-cache")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	maxWarnings, err := cmd.Root().PersistentFlags().GetInt("max-warnings")
	if err != nil {
		return err
	}

	manifest, manifestFound, err := loadProjectManifest(".")
	if err != nil {
		return err
	}
	if manifestFound {
		if !cmd.Flags().Changed("jobs") && manifest.Config.Verify.Jobs > 0 {
			jobs = manifest.Config.Verify.Jobs
		}
		if manifest.Config.Verify.Cache != nil && !*manifest.Config.Verify.Cache {
			noCache = true
		}
		if !cmd.Flags().Changed("ui") && manifest.Config.Verify.UI != "" {
			uiValue = manifest.Config.Verify.UI
		}
	}

	progress, err := parseProgressChoice(uiValue)
	if err != nil {
		return err
	}

	diags := diag.NewBag(maxWarnings)
	var cache *driver.Cache
	if !noCache {
		cache, err = driver.OpenCache("volt")
		if err != nil {
			diags.Add(diag.Warningf(diag.IOCacheDegraded, "cache unavailable: %v", err))
			cache = nil
		}
	}

	var timer *driver.Timer
	if timings {
		timer = driver.NewTimer()
	}

	opts := driver.Options{
		Jobs:         jobs,
		Cache:        cache,
		RefreshCache: refresh,
		Timer:        timer,
		Diags:        diags,
	}

	var rep *driver.Report
	if progress.wantTUI(os.Stdout) && !asJSON && !quiet {
		rep, err = runVerifyWithUI(cmd.Context(), "volt verify", opts)
	} else {
		rep, err = driver.Verify(cmd.Context(), opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		printVerifyReport(out, rep, quiet)
		if timer != nil {
			fmt.Fprint(out, timer.Summary())
		}
	}
	printWarnings(os.Stderr, diags, quiet)

	if rep.Failures > 0 {
		return fmt.Errorf("%d of %d cases failed", rep.Failures, rep.Cases)
	}
	return nil
}

func printVerifyReport(out io.Writer, rep *driver.Report, quiet bool) {
	for _, u := range rep.Units {
		for _, f := range u.Failures {
			fmt.Fprintf(out, "fail %s: %s: got %s, want %s\n", u.Unit, f.Case, f.Got, f.Want)
		}
	}
	if quiet && rep.Failures == 0 {
		return
	}
	p := message.NewPrinter(language.English)
	line := p.Sprintf("verified %d cases across %d units", rep.Cases, len(rep.Units))
	if rep.Failures > 0 {
		line = p.Sprintf("verified %d cases across %d units, %d failed",
			rep.Cases, len(rep.Units), rep.Failures)
	}
	if rep.FromCache {
		line += " (cached)"
	}
	fmt.Fprintln(out, line)
	if len(rep.Fingerprint) >= 12 {
		fmt.Fprintf(out, "fingerprint %s\n", rep.Fingerprint[:12])
	}
}

func printWarnings(out io.Writer, diags *diag.Bag, quiet bool) {
	if quiet {
		return
	}
	diags.Sort()
	for _, d := range diags.Items() {
		fmt.Fprintln(out, d.Format())
	}
}

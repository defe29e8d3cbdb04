// Package main provides the CLI entry point for fixtura, a tool that
// analyzes sample JSON records and emits a portable spec document
// describing their shape.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leeward-labs/fixtura"
	"github.com/leeward-labs/fixtura/log"
	"github.com/leeward-labs/fixtura/profiler"
	"github.com/leeward-labs/fixtura/progress"
	"github.com/leeward-labs/fixtura/specdoc"
	"github.com/leeward-labs/fixtura/value"
	"github.com/leeward-labs/fixtura/version"
)

func main() {
	cfg := fixtura.NewConfig()
	prof := profiler.New()

	rootCmd := &cobra.Command{
		Use:     "fixtura create [flags]",
		Short:   "Analyze sample JSON records and emit a spec document",
		Version: version.Version,
		Long: `fixtura analyzes a set of sample JSON records and emits a portable spec
document describing their shape: field presence, null rates, value
distributions, and string patterns, suitable for generating realistic
synthetic records later.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return prof.Stop()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	prof.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "fixtura %s (%s, %s/%s, rev %s)\n",
				version.Version, version.GoVersion, version.GoOS, version.GoArch, version.Revision)

			return nil
		},
	})

	completionErr := cfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var errReadInput = fmt.Errorf("read input")

func run(cfg *fixtura.Config) error {
	pub := log.NewPublisher()
	defer pub.Close()

	reporter := progress.New(os.Stderr)
	defer reporter.Done()

	sub := pub.Subscribe()

	go watchPhases(sub.C(), reporter)

	logger, err := cfg.BuildLogger(pub)
	if err != nil {
		return err
	}

	var in io.Reader

	if cfg.In == "" || cfg.In == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(cfg.In)
		if err != nil {
			return fmt.Errorf("%w: %w", errReadInput, err)
		}
		defer f.Close()

		in = f
	}

	records, err := value.DecodeAll(in)
	if err != nil {
		return fmt.Errorf("%w: %w", errReadInput, err)
	}

	o, err := cfg.BuildOracle()
	if err != nil {
		return err
	}

	doc, err := fixtura.CreateSpec(context.Background(), records, o, logger)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling spec document: %w", err)
	}

	out = append(out, '\n')

	if cfg.Out == "" || cfg.Out == "-" {
		if _, err := os.Stdout.Write(out); err != nil {
			return fmt.Errorf("writing spec document: %w", err)
		}
	} else {
		if err := os.WriteFile(cfg.Out, out, 0o644); err != nil {
			return fmt.Errorf("writing spec document: %w", err)
		}
	}

	printSummary(os.Stderr, doc)

	return nil
}

// watchPhases drains entries from a log publisher subscription, echoing
// each line to stderr and driving the progress reporter from the record's
// "msg" field whenever the entry decodes as a JSON log line.
func watchPhases(entries <-chan []byte, reporter *progress.Reporter) {
	for entry := range entries {
		var rec map[string]any
		if json.Unmarshal(entry, &rec) == nil {
			if msg, ok := rec["msg"].(string); ok {
				reporter.Phase(msg)
			}
		}

		os.Stderr.Write(entry)
		os.Stderr.Write([]byte("\n"))
	}
}

func printSummary(w io.Writer, doc *specdoc.Document) {
	fmt.Fprintf(w, "fields analyzed: %d\n", len(doc.Fields))
	fmt.Fprintf(w, "samples analyzed: %d\n", doc.Metadata.SamplesAnalyzed)
	fmt.Fprintf(w, "total data points: %d\n", doc.Metadata.DataPoints)
}

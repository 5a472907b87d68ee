package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/chronos/pkg/temporal/arith"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

// render writes v as JSON or YAML, or calls text for the text format
func render(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch eng.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

// roundingFlags are shared by the commands that round
type roundingFlags struct {
	largest   string
	smallest  string
	increment int64
	mode      string
}

func (f *roundingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.largest, "largest", "auto", "largest unit of the result")
	cmd.Flags().StringVar(&f.smallest, "smallest", "auto", "smallest unit of the result")
	cmd.Flags().Int64Var(&f.increment, "increment", 1, "rounding increment in smallest units")
	cmd.Flags().StringVar(&f.mode, "mode", "", "rounding mode")
}

// options converts the flags, falling back to defaultMode
func (f *roundingFlags) options(defaultMode rounding.Mode) (arith.Options, error) {
	largest, err := unit.Parse(f.largest)
	if err != nil {
		return arith.Options{}, err
	}
	smallest, err := unit.Parse(f.smallest)
	if err != nil {
		return arith.Options{}, err
	}
	mode := defaultMode
	if f.mode != "" {
		if mode, err = rounding.ParseMode(f.mode); err != nil {
			return arith.Options{}, err
		}
	}
	return arith.Options{Largest: largest, Smallest: smallest, Increment: f.increment, Mode: mode}, nil
}

// durationResult is the structured form of a duration answer
type durationResult struct {
	Duration duration.Duration `json:"duration" yaml:"duration"`
	Fields   duration.Fields   `json:"fields" yaml:"fields"`
}

func newDurationResult(d duration.Duration) durationResult {
	return durationResult{Duration: d, Fields: d.Fields()}
}

func printDuration(cmd *cobra.Command, d duration.Duration) error {
	return render(cmd, newDurationResult(d), func(w io.Writer) {
		fmt.Fprintln(w, d.String())
	})
}

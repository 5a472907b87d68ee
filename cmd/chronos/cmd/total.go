package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/temporal/arith"
	"github.com/msto63/chronos/pkg/temporal/duration"
	"github.com/msto63/chronos/pkg/temporal/unit"
)

var (
	totalUnit       string
	totalRelativeTo string
)

type totalResult struct {
	Unit  string  `json:"unit" yaml:"unit"`
	Total float64 `json:"total" yaml:"total"`
	Exact string  `json:"exact" yaml:"exact"`
}

var totalCmd = &cobra.Command{
	Use:     "total <duration>",
	Short:   "Express a duration as a fractional number of one unit",
	Example: `  chronos total P1M15D --unit month --relative-to 2024-02-01`,
	Args:    cobra.ExactArgs(1),
	RunE:    runTotal,
}

func init() {
	totalCmd.Flags().StringVar(&totalUnit, "unit", "", "unit to total in")
	totalCmd.Flags().StringVar(&totalRelativeTo, "relative-to", "", "date-time that anchors calendar units")
	_ = totalCmd.MarkFlagRequired("unit")
	rootCmd.AddCommand(totalCmd)
}

func runTotal(cmd *cobra.Command, args []string) error {
	d, err := duration.Parse(args[0])
	if err != nil {
		return err
	}
	u, err := unit.Parse(totalUnit)
	if err != nil {
		return err
	}
	rel, err := optionalMarker(totalRelativeTo)
	if err != nil {
		return err
	}
	exact, err := arith.TotalExact(d, u, rel)
	if err != nil {
		return err
	}
	f, _ := exact.Float64()
	res := totalResult{Unit: u.String(), Total: f, Exact: exact.RatString()}
	return render(cmd, res, func(w io.Writer) {
		fmt.Fprintln(w, strconv.FormatFloat(f, 'f', -1, 64))
	})
}

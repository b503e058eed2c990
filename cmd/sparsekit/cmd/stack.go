package cmd

import (
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/sparsekit/go-sparsekit/pkg/mmio"
	"github.com/sparsekit/go-sparsekit/pkg/sparse"
)

var (
	stackDirection string
	stackOutput    string
)

var stackCmd = &cobra.Command{
	Use:   "stack <input.mtx>...",
	Short: "Stack Matrix Market files into one matrix",
	Long: `stack reads the given Matrix Market files
and stacks them in argument order,
vertically (--direction v) or horizontally (--direction h),
writing the result into --output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mats := make([]*sparse.Matrix[float64], 0, len(args))
		for _, path := range args {
			tri, err := mmio.ReadFile[float64](path)
			if err != nil {
				return err
			}
			m := tri.ToCSR()
			logger.Debug().
				Str("file", path).
				Int("rows", m.Rows()).
				Int("cols", m.Cols()).
				Int("nnz", m.NNZ()).
				Msg("loaded input matrix")
			mats = append(mats, m)
		}
		var stacked *sparse.Matrix[float64]
		var err error
		switch stackDirection {
		case "v":
			stacked, err = sparse.VStack(mats)
		case "h":
			stacked, err = sparse.HStack(mats)
		default:
			return errors.Errorf("bad direction %q: want v or h",
				stackDirection)
		}
		if err != nil {
			return errors.Wrap(err, "cannot stack input matrices")
		}
		logger.Info().
			Int("rows", stacked.Rows()).
			Int("cols", stacked.Cols()).
			Int("nnz", stacked.NNZ()).
			Str("output", stackOutput).
			Msg("stacked")
		return mmio.WriteFile(stackOutput, stacked)
	},
}

func init() {
	stackCmd.Flags().StringVarP(&stackDirection, "direction", "d", "v",
		"stacking direction: v (vertical) or h (horizontal)")
	stackCmd.Flags().StringVarP(&stackOutput, "output", "o", "stacked.mtx",
		"output Matrix Market file")
	rootCmd.AddCommand(stackCmd)
}

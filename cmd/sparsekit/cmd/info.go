package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparsekit/go-sparsekit/pkg/mmio"
)

var infoCmd = &cobra.Command{
	Use:   "info <matrix.mtx>",
	Short: "Print the shape and nonzero count of a Matrix Market file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tri, err := mmio.ReadFile[float64](args[0])
		if err != nil {
			return err
		}
		rows, cols := tri.Dims()
		m := tri.ToCSR()
		_, err = fmt.Fprintf(cmd.OutOrStdout(),
			"%d x %d, %d nonzero entries\n", rows, cols, m.NNZ())
		return err
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

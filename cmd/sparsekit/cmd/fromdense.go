package cmd

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/sparsekit/go-sparsekit/pkg/mmio"
	"github.com/sparsekit/go-sparsekit/pkg/sparse"
)

var (
	fromdenseEpsilon float64
	fromdenseOutput  string
)

var fromdenseCmd = &cobra.Command{
	Use:   "fromdense <dense.csv>",
	Short: "Convert a dense CSV matrix into a sparse Matrix Market file",
	Long: `fromdense reads a dense matrix from a CSV file
(one matrix row per record, numeric fields)
and writes a sparse Matrix Market file
keeping only the entries whose magnitude exceeds --epsilon.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readDenseCSV(args[0])
		if err != nil {
			return err
		}
		m := sparse.FromDense(d, fromdenseEpsilon)
		rows, cols := m.Dims()
		logger.Info().
			Int("rows", rows).
			Int("cols", cols).
			Int("nnz", m.NNZ()).
			Float64("epsilon", fromdenseEpsilon).
			Str("output", fromdenseOutput).
			Msg("converted")
		return mmio.WriteFile(fromdenseOutput, m)
	},
}

func readDenseCSV(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open dense CSV file")
	}
	defer func() { _ = f.Close() }()
	reader := csv.NewReader(f)
	var values []float64
	rows, cols := 0, 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "cannot read dense CSV file")
		}
		cols = len(fields)
		for _, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err,
					"invalid value %#v in row %d", field, rows+1)
			}
			values = append(values, v)
		}
		rows++
	}
	if rows == 0 || cols == 0 {
		return nil, errors.New("empty dense CSV file")
	}
	return mat.NewDense(rows, cols, values), nil
}

func init() {
	fromdenseCmd.Flags().Float64VarP(&fromdenseEpsilon, "epsilon", "e", 0,
		"magnitude threshold below which entries are dropped")
	fromdenseCmd.Flags().StringVarP(&fromdenseOutput, "output", "o",
		"dense.mtx", "output Matrix Market file")
	rootCmd.AddCommand(fromdenseCmd)
}

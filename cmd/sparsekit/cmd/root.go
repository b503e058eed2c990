package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "sparsekit",
		Short: "Sparse matrix construction CLI",
		Long: `sparsekit builds sparse matrices out of other matrices:
it stacks Matrix Market files vertically or horizontally
and converts dense CSV matrices into sparse form.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var logWriter io.Writer
			switch logFile {
			case "-":
				logWriter = os.Stdout
			case "":
				logWriter = zerolog.NewConsoleWriter(
					func(w *zerolog.ConsoleWriter) {
						w.Out = os.Stderr
						w.TimeFormat = "2006-01-02T15:04:05.000000000Z07:00"
					})
			default:
				w, err := os.OpenFile(logFile,
					os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o0777)
				if err != nil {
					return fmt.Errorf("cannot open log file: %w", err)
				}
				logWriter = w
			}
			logger = zerolog.New(logWriter).With().Timestamp().Logger()
			zerolog.DefaultContextLogger = &logger
			return nil
		},
	}
	logFile string
	logger  zerolog.Logger
)

func Execute() {
	zerolog.TimeFieldFormat = "2006-01-02T15:04:05.000000000Z07:00"
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"log file (- means stdout; default: colorized stderr)")
}

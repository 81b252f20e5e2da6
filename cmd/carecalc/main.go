package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seniorplan/carecalc/internal/calculation"
	"github.com/seniorplan/carecalc/internal/config"
	"github.com/seniorplan/carecalc/internal/output"
	"github.com/seniorplan/carecalc/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "carecalc",
	Short: "Senior care cost and funding calculator",
	Long:  "Estimates monthly senior care costs, household income including VA Aid & Attendance, the affordability gap, and the asset runway",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [answers-file]",
	Short: "Calculate a care cost estimate from a saved answers file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ratesFile, _ := cmd.Flags().GetString("rates")
		overlayFile, _ := cmd.Flags().GetString("overlay")
		format, _ := cmd.Flags().GetString("format")

		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (available: %v)", format, output.FormatNames())
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		rates, err := config.NewRatesLoader(ratesFile, overlayFile, logger).Load()
		if err != nil {
			return err
		}

		answers, err := config.NewAnswersParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		result := calculation.NewEngine(rates).Calculate(answers)
		rendered, err := formatter.Format(&result)
		if err != nil {
			return fmt.Errorf("formatting failed: %w", err)
		}

		_, err = os.Stdout.Write(rendered)
		return err
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		ratesFile, _ := cmd.Flags().GetString("rates")
		overlayFile, _ := cmd.Flags().GetString("overlay")
		watch, _ := cmd.Flags().GetBool("watch")

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		loader := config.NewRatesLoader(ratesFile, overlayFile, logger)
		rates, err := loader.Load()
		if err != nil {
			return err
		}

		srv := server.New(calculation.NewEngine(rates), logger)
		if watch {
			loader.Watch(srv.SwapRates)
		}
		return srv.ListenAndServe(addr)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "carecalc %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func init() {
	calculateCmd.Flags().String("rates", "", "rates configuration file (YAML/JSON); compiled-in defaults when omitted")
	calculateCmd.Flags().String("overlay", "", "overlay file merged over the rates configuration")
	calculateCmd.Flags().String("format", "console", "output format: console, json, or csv")

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("rates", "", "rates configuration file (YAML/JSON); compiled-in defaults when omitted")
	serveCmd.Flags().String("overlay", "", "overlay file merged over the rates configuration")
	serveCmd.Flags().Bool("watch", false, "reload rates when the file changes")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

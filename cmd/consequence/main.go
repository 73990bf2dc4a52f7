package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevoralpert/FutureFund-sub002/internal/config"
	"github.com/trevoralpert/FutureFund-sub002/internal/consequence"
	"github.com/trevoralpert/FutureFund-sub002/internal/logging"
	"github.com/trevoralpert/FutureFund-sub002/internal/output"
	"github.com/trevoralpert/FutureFund-sub002/internal/server"
)

var (
	inputFile  string
	formatName string
	verbose    bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "consequence",
		Short: "Financial consequence analysis for discretionary scenarios",
		Long: `Simulates what really happens, financially, if a scenario is executed
right now: payment sequencing across accounts, overdraft and NSF fees,
credit utilization and interest, cascade risks, and a ranked recommendation.`,
	}
	root.AddCommand(analyzeCmd(), exampleCmd(), serveCmd())
	return root
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a consequence analysis from a request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewRequestParser()
			req, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := consequence.NewEngine()
			if verbose {
				engine.SetLogger(logging.EngineAdapter{L: logging.NewLogger("debug")})
			}

			result := engine.ExecuteConsequenceAnalysis(context.Background(), &req.Scenario, &req.FinancialContext, req.Accounts)
			rendered, err := output.FormatResult(result, formatName)
			if err != nil {
				return err
			}
			fmt.Println(string(rendered))

			if !result.Success {
				return fmt.Errorf("analysis failed: %s", result.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "request.yaml", "analysis request file (YAML)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format (console, json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func exampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a starter analysis request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := config.NewRequestParser().CreateExampleRequest()
			if err := config.SaveRequest(req, out); err != nil {
				return err
			}
			fmt.Printf("Example request written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "request.yaml", "output file")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewServerConfig()
			logger := logging.NewLogger(cfg.LogLevel)

			engine := consequence.NewEngine()
			engine.SetLogger(logging.EngineAdapter{L: logger})

			return server.New(engine, logger, cfg).ListenAndServe()
		},
	}
}

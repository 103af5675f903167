package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jbolinge/option-analyzer/src/cmd/analyzer/run"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "Analyzes option positions: greeks, payoff diagrams and P&L surfaces",
	Long: `This program prices the option positions defined in a YAML config with the Black-Scholes-Merton model:
1.) Per-leg and aggregated first and second order greeks at the given spot price
2.) Expiration payoff with max profit, max loss and breakevens
3.) Optional CSV exports of greek curves, delta by DTE, the P&L surface and per-greek surfaces
	`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config flag: %v", err)
		}

		positionName, err := cmd.Flags().GetString("position")
		if err != nil {
			log.Fatalf("error getting position flag: %v", err)
		}

		spot, err := cmd.Flags().GetFloat64("spot")
		if err != nil {
			log.Fatalf("error getting spot flag: %v", err)
		}

		outDir, err := cmd.Flags().GetString("out-dir")
		if err != nil {
			log.Fatalf("error getting out-dir flag: %v", err)
		}

		logLevel, err := cmd.Flags().GetString("log-level")
		if err != nil {
			log.Fatalf("error getting log-level flag: %v", err)
		}

		envFile, err := cmd.Flags().GetString("env-file")
		if err != nil {
			log.Fatalf("error getting env-file flag: %v", err)
		}

		if err := run.Run(run.RunArgs{
			ConfigPath:   configPath,
			PositionName: positionName,
			Spot:         spot,
			OutDir:       outDir,
			LogLevel:     logLevel,
			EnvFile:      envFile,
		}); err != nil {
			log.Fatalf("error running analyzer: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(new(string), "config", "c", "config/analyzer.yaml", "Path to the analyzer YAML config.")
	rootCmd.PersistentFlags().StringVarP(new(string), "position", "p", "", "Analyze only the named position. Analyzes every configured position when empty.")
	rootCmd.PersistentFlags().Float64VarP(new(float64), "spot", "s", 0, "Current price of the underlying. This flag is required.")
	rootCmd.PersistentFlags().StringVarP(new(string), "out-dir", "o", "", "Directory for CSV exports. Exports are skipped when empty.")
	rootCmd.PersistentFlags().StringVar(new(string), "log-level", "info", "Log level: debug, info, warn or error.")
	rootCmd.PersistentFlags().StringVar(new(string), "env-file", ".env", "Path to an optional .env file.")

	rootCmd.MarkPersistentFlagRequired("spot")

	cobra.CheckErr(rootCmd.Execute())
}

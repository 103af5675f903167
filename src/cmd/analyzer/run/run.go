package run

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/jbolinge/option-analyzer/src/engine"
	"github.com/jbolinge/option-analyzer/src/optionmodels"
	"github.com/jbolinge/option-analyzer/src/report"
	"github.com/jbolinge/option-analyzer/src/utils"
)

type RunArgs struct {
	ConfigPath   string
	PositionName string
	Spot         float64
	OutDir       string
	LogLevel     string
	EnvFile      string
}

func Run(args RunArgs) error {
	if args.LogLevel != "" {
		level, err := log.ParseLevel(args.LogLevel)
		if err != nil {
			return fmt.Errorf("run.Run: invalid log level %s: %w", args.LogLevel, err)
		}

		log.SetLevel(level)
	}

	if err := utils.InitEnvironmentVariables(args.EnvFile); err != nil {
		return fmt.Errorf("run.Run: error initializing environment variables: %w", err)
	}

	config, err := utils.LoadAnalyzerConfig(args.ConfigPath)
	if err != nil {
		return fmt.Errorf("run.Run: error loading config: %w", err)
	}

	positions := config.Positions
	if args.PositionName != "" {
		position, err := config.GetPosition(args.PositionName)
		if err != nil {
			return fmt.Errorf("run.Run: %w", err)
		}

		positions = []optionmodels.PositionYAML{*position}
	}

	if len(positions) == 0 {
		return fmt.Errorf("run.Run: config %s defines no positions", args.ConfigPath)
	}

	calculator := engine.NewGreeksCalculator(config.RiskFreeRate(), config.DividendYield())
	analyzer := engine.NewPositionAnalyzer(calculator)
	payoffCalculator := engine.NewPayoffCalculator(config.RiskFreeRate(), config.DividendYield())

	pct := config.PriceRangePct()
	priceRange := utils.Linspace(args.Spot*(1-pct), args.Spot*(1+pct), config.PricePoints())

	log.Infof("Analyzing %d position(s) at spot %.2f", len(positions), args.Spot)

	for _, positionYAML := range positions {
		position, ivs, err := positionYAML.ToModel()
		if err != nil {
			return fmt.Errorf("run.Run: error building position %s: %w", positionYAML.Name, err)
		}

		if err := analyzePosition(analyzer, payoffCalculator, config, position, ivs, priceRange, args); err != nil {
			return fmt.Errorf("run.Run: error analyzing position %s: %w", position.Name, err)
		}
	}

	return nil
}

func analyzePosition(analyzer *engine.PositionAnalyzer, payoffCalculator *engine.PayoffCalculator, config *optionmodels.AnalyzerConfigYAML, position optionmodels.Position, ivs optionmodels.IVBySymbol, priceRange []float64, args RunArgs) error {
	greeks, err := analyzer.PositionGreeks(position, args.Spot, ivs)
	if err != nil {
		return fmt.Errorf("analyzePosition: %w", err)
	}

	report.RenderPositionGreeks(os.Stdout, position, greeks)
	fmt.Println()

	payoff := payoffCalculator.ExpirationPayoff(position, priceRange)
	summary, err := payoffCalculator.SummarizeExpirationPayoff(priceRange, payoff)
	if err != nil {
		return fmt.Errorf("analyzePosition: %w", err)
	}

	report.RenderPayoffSummary(os.Stdout, position, summary)
	fmt.Println()

	report.RenderPayoffTable(os.Stdout, priceRange, payoff)
	fmt.Println()

	if args.OutDir == "" {
		return nil
	}

	return exportPosition(analyzer, payoffCalculator, config, position, ivs, priceRange, args.OutDir)
}

func exportPosition(analyzer *engine.PositionAnalyzer, payoffCalculator *engine.PayoffCalculator, config *optionmodels.AnalyzerConfigYAML, position optionmodels.Position, ivs optionmodels.IVBySymbol, priceRange []float64, outDir string) error {
	slug := report.FileSlug(position.Name)

	curves, err := analyzer.GreeksVsPrice(position, priceRange, ivs)
	if err != nil {
		return fmt.Errorf("exportPosition: %w", err)
	}

	curvesPath := filepath.Join(outDir, fmt.Sprintf("%s-greeks-vs-price.csv", slug))
	if err := report.ExportGreekCurves(curvesPath, priceRange, curves); err != nil {
		return fmt.Errorf("exportPosition: %w", err)
	}

	deltaCurves, err := analyzer.DeltaVsPriceAtDTEs(position, priceRange, ivs, config.DeltaDTEs())
	if err != nil {
		return fmt.Errorf("exportPosition: %w", err)
	}

	deltaPath := filepath.Join(outDir, fmt.Sprintf("%s-delta-by-dte.csv", slug))
	if err := report.ExportDeltaByDTE(deltaPath, priceRange, config.DeltaDTEs(), deltaCurves); err != nil {
		return fmt.Errorf("exportPosition: %w", err)
	}

	surface, err := payoffCalculator.PnLSurface(position, priceRange, ivs, config.DTERange())
	if err != nil {
		return fmt.Errorf("exportPosition: %w", err)
	}

	surfacePath := filepath.Join(outDir, fmt.Sprintf("%s-pnl-surface.csv", slug))
	if err := report.ExportPnLSurface(surfacePath, config.DTERange(), priceRange, surface); err != nil {
		return fmt.Errorf("exportPosition: %w", err)
	}

	greekSurfaces, err := analyzer.GreeksSurface(position, priceRange, ivs, config.DTERange())
	if err != nil {
		return fmt.Errorf("exportPosition: %w", err)
	}

	greekSurfacePath := filepath.Join(outDir, fmt.Sprintf("%s-greeks-surface.csv", slug))
	if err := report.ExportGreeksSurface(greekSurfacePath, config.DTERange(), priceRange, greekSurfaces); err != nil {
		return fmt.Errorf("exportPosition: %w", err)
	}

	return nil
}

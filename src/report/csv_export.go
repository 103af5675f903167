package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jbolinge/option-analyzer/src/engine"
	"github.com/jbolinge/option-analyzer/src/optionmodels"
)

// GreekCurveRow is one price point of a greeks versus price sweep.
type GreekCurveRow struct {
	Price float64 `csv:"price"`
	Delta float64 `csv:"delta"`
	Gamma float64 `csv:"gamma"`
	Theta float64 `csv:"theta"`
	Vega  float64 `csv:"vega"`
	Rho   float64 `csv:"rho"`
	Vanna float64 `csv:"vanna"`
	Volga float64 `csv:"volga"`
	Charm float64 `csv:"charm"`
	Veta  float64 `csv:"veta"`
	Speed float64 `csv:"speed"`
	Color float64 `csv:"color"`
}

// DeltaByDTERow is one point of a delta curve at a fixed days-to-expiration.
type DeltaByDTERow struct {
	DTE   float64 `csv:"dte"`
	Price float64 `csv:"price"`
	Delta float64 `csv:"delta"`
}

// PnLSurfaceRow is one cell of a P&L surface in long form.
type PnLSurfaceRow struct {
	DTE   float64 `csv:"dte"`
	Price float64 `csv:"price"`
	PnL   float64 `csv:"pnl"`
}

// GreekSurfaceRow is one cell of one greek's surface in long form.
type GreekSurfaceRow struct {
	Greek string  `csv:"greek"`
	DTE   float64 `csv:"dte"`
	Price float64 `csv:"price"`
	Value float64 `csv:"value"`
}

// ExportGreekCurves writes a greeks versus price sweep with one row per
// price point and one column per greek.
func ExportGreekCurves(outPath string, priceRange []float64, curves map[optionmodels.GreekName][]float64) error {
	for _, name := range optionmodels.AllGreekNames {
		if len(curves[name]) != len(priceRange) {
			return fmt.Errorf("ExportGreekCurves: curve %s has %d points, price range has %d", name, len(curves[name]), len(priceRange))
		}
	}

	rows := make([]GreekCurveRow, 0, len(priceRange))
	for i, price := range priceRange {
		rows = append(rows, GreekCurveRow{
			Price: price,
			Delta: curves[optionmodels.GreekDelta][i],
			Gamma: curves[optionmodels.GreekGamma][i],
			Theta: curves[optionmodels.GreekTheta][i],
			Vega:  curves[optionmodels.GreekVega][i],
			Rho:   curves[optionmodels.GreekRho][i],
			Vanna: curves[optionmodels.GreekVanna][i],
			Volga: curves[optionmodels.GreekVolga][i],
			Charm: curves[optionmodels.GreekCharm][i],
			Veta:  curves[optionmodels.GreekVeta][i],
			Speed: curves[optionmodels.GreekSpeed][i],
			Color: curves[optionmodels.GreekColor][i],
		})
	}

	if err := writeCSV(outPath, &rows); err != nil {
		return fmt.Errorf("ExportGreekCurves: %w", err)
	}

	return nil
}

// ExportDeltaByDTE writes the delta curves keyed by engine.DTELabel in long
// form, one row per (dte, price) pair. Rows follow the order of dtes.
func ExportDeltaByDTE(outPath string, priceRange, dtes []float64, curves map[string][]float64) error {
	rows := make([]DeltaByDTERow, 0, len(dtes)*len(priceRange))
	for _, dte := range dtes {
		curve, found := curves[engine.DTELabel(dte)]
		if !found {
			return fmt.Errorf("ExportDeltaByDTE: no curve labelled %s", engine.DTELabel(dte))
		}

		if len(curve) != len(priceRange) {
			return fmt.Errorf("ExportDeltaByDTE: curve %s has %d points, price range has %d", engine.DTELabel(dte), len(curve), len(priceRange))
		}

		for i, price := range priceRange {
			rows = append(rows, DeltaByDTERow{DTE: dte, Price: price, Delta: curve[i]})
		}
	}

	if err := writeCSV(outPath, &rows); err != nil {
		return fmt.Errorf("ExportDeltaByDTE: %w", err)
	}

	return nil
}

// ExportPnLSurface writes a P&L surface in long form, one row per
// (dte, price) cell. Row order follows dteRange, then priceRange.
func ExportPnLSurface(outPath string, dteRange, priceRange []float64, surface [][]float64) error {
	if len(surface) != len(dteRange) {
		return fmt.Errorf("ExportPnLSurface: surface has %d rows, dte range has %d", len(surface), len(dteRange))
	}

	rows := make([]PnLSurfaceRow, 0, len(dteRange)*len(priceRange))
	for i, dte := range dteRange {
		if len(surface[i]) != len(priceRange) {
			return fmt.Errorf("ExportPnLSurface: row %d has %d points, price range has %d", i, len(surface[i]), len(priceRange))
		}

		for j, price := range priceRange {
			rows = append(rows, PnLSurfaceRow{DTE: dte, Price: price, PnL: surface[i][j]})
		}
	}

	if err := writeCSV(outPath, &rows); err != nil {
		return fmt.Errorf("ExportPnLSurface: %w", err)
	}

	return nil
}

// ExportGreeksSurface writes every greek surface in long form, one row per
// (greek, dte, price) cell. Greeks follow AllGreekNames order; within a
// greek, row order follows dteRange, then priceRange.
func ExportGreeksSurface(outPath string, dteRange, priceRange []float64, surfaces map[optionmodels.GreekName][][]float64) error {
	rows := make([]GreekSurfaceRow, 0, len(optionmodels.AllGreekNames)*len(dteRange)*len(priceRange))
	for _, name := range optionmodels.AllGreekNames {
		surface := surfaces[name]
		if len(surface) != len(dteRange) {
			return fmt.Errorf("ExportGreeksSurface: surface %s has %d rows, dte range has %d", name, len(surface), len(dteRange))
		}

		for i, dte := range dteRange {
			if len(surface[i]) != len(priceRange) {
				return fmt.Errorf("ExportGreeksSurface: surface %s row %d has %d points, price range has %d", name, i, len(surface[i]), len(priceRange))
			}

			for j, price := range priceRange {
				rows = append(rows, GreekSurfaceRow{Greek: string(name), DTE: dte, Price: price, Value: surface[i][j]})
			}
		}
	}

	if err := writeCSV(outPath, &rows); err != nil {
		return fmt.Errorf("ExportGreeksSurface: %w", err)
	}

	return nil
}

// FileSlug lowercases a position name and flattens separators so it is safe
// to use as a file name component.
func FileSlug(name string) string {
	return strings.NewReplacer(" ", "-", "/", "-").Replace(strings.ToLower(name))
}

func writeCSV(outPath string, rows interface{}) error {
	// An existing export is left untouched.
	if _, err := os.Stat(outPath); err == nil {
		log.Infof("Data file %s already exists", outPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", outPath, err)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	log.Infof("Exported %s", outPath)

	return nil
}

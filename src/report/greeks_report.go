package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jbolinge/option-analyzer/src/optionmodels"
)

// RenderPositionGreeks writes per-leg and aggregated greeks as two tables,
// first order then second order. Legs appear in position order with the
// aggregate in the footer.
func RenderPositionGreeks(w io.Writer, position optionmodels.Position, result optionmodels.PositionGreeks) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "Position: %s\n\n", position.Name)
	fmt.Fprintln(w, "First Order Greeks:")

	firstOrder := tablewriter.NewWriter(w)
	firstOrder.SetAlignment(tablewriter.ALIGN_CENTER)
	firstOrder.SetColumnSeparator("")
	firstOrder.SetHeader([]string{"Leg", "Delta", "Gamma", "Theta", "Vega", "Rho", "IV"})

	for _, symbol := range position.Symbols() {
		greeks := result.PerLeg[symbol]
		firstOrder.Append([]string{
			legLabel(symbol),
			p.Sprintf("%.4f", greeks.FirstOrder.Delta),
			p.Sprintf("%.4f", greeks.FirstOrder.Gamma),
			p.Sprintf("%.4f", greeks.FirstOrder.Theta),
			p.Sprintf("%.4f", greeks.FirstOrder.Vega),
			p.Sprintf("%.4f", greeks.FirstOrder.Rho),
			p.Sprintf("%.4f", greeks.FirstOrder.IV),
		})
	}

	aggregated := result.Aggregated
	firstOrder.SetFooter([]string{
		"Total",
		p.Sprintf("%.4f", aggregated.FirstOrder.Delta),
		p.Sprintf("%.4f", aggregated.FirstOrder.Gamma),
		p.Sprintf("%.4f", aggregated.FirstOrder.Theta),
		p.Sprintf("%.4f", aggregated.FirstOrder.Vega),
		p.Sprintf("%.4f", aggregated.FirstOrder.Rho),
		p.Sprintf("%.4f", aggregated.FirstOrder.IV),
	})

	firstOrder.Render()

	fmt.Fprintln(w, "\nSecond Order Greeks:")

	secondOrder := tablewriter.NewWriter(w)
	secondOrder.SetAlignment(tablewriter.ALIGN_CENTER)
	secondOrder.SetColumnSeparator("")
	secondOrder.SetHeader([]string{"Leg", "Vanna", "Volga", "Charm", "Veta", "Speed", "Color"})

	for _, symbol := range position.Symbols() {
		greeks := result.PerLeg[symbol]
		secondOrder.Append([]string{
			legLabel(symbol),
			p.Sprintf("%.4f", greeks.SecondOrder.Vanna),
			p.Sprintf("%.4f", greeks.SecondOrder.Volga),
			p.Sprintf("%.4f", greeks.SecondOrder.Charm),
			p.Sprintf("%.4f", greeks.SecondOrder.Veta),
			p.Sprintf("%.4f", greeks.SecondOrder.Speed),
			p.Sprintf("%.4f", greeks.SecondOrder.Color),
		})
	}

	secondOrder.SetFooter([]string{
		"Total",
		p.Sprintf("%.4f", aggregated.SecondOrder.Vanna),
		p.Sprintf("%.4f", aggregated.SecondOrder.Volga),
		p.Sprintf("%.4f", aggregated.SecondOrder.Charm),
		p.Sprintf("%.4f", aggregated.SecondOrder.Veta),
		p.Sprintf("%.4f", aggregated.SecondOrder.Speed),
		p.Sprintf("%.4f", aggregated.SecondOrder.Color),
	})

	secondOrder.Render()
}

func legLabel(symbol optionmodels.OptionSymbol) string {
	description, err := symbol.Description()
	if err != nil {
		return symbol.String()
	}

	return description
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jbolinge/option-analyzer/src/engine"
	"github.com/jbolinge/option-analyzer/src/optionmodels"
)

// RenderPayoffSummary writes the opening cost alongside the expiration
// extremes and breakevens of the payoff grid.
func RenderPayoffSummary(w io.Writer, position optionmodels.Position, summary engine.PayoffSummary) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "Position: %s\n", position.Name)

	netCost := position.NetDebitCredit()
	switch {
	case netCost.IsPositive():
		fmt.Fprintf(w, "Net debit: %s\n", money(p, netCost.InexactFloat64()))
	case netCost.IsNegative():
		fmt.Fprintf(w, "Net credit: %s\n", money(p, netCost.Neg().InexactFloat64()))
	default:
		fmt.Fprintln(w, "Net cost: $0.00")
	}

	fmt.Fprintf(w, "Max profit: %s\n", money(p, summary.MaxProfit))
	fmt.Fprintf(w, "Max loss: %s\n", money(p, summary.MaxLoss))

	if len(summary.Breakevens) == 0 {
		fmt.Fprintln(w, "Breakevens: none")
		return
	}

	breakevens := make([]string, 0, len(summary.Breakevens))
	for _, price := range summary.Breakevens {
		breakevens = append(breakevens, money(p, price))
	}

	fmt.Fprintf(w, "Breakevens: %s\n", strings.Join(breakevens, ", "))
}

// RenderPayoffTable writes the expiration payoff curve price by price.
func RenderPayoffTable(w io.Writer, priceRange, payoff []float64) {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"Price", "P&L at Expiration"})

	for i, price := range priceRange {
		if i >= len(payoff) {
			break
		}

		table.Append([]string{money(p, price), money(p, payoff[i])})
	}

	table.Render()
}

func money(p *message.Printer, value float64) string {
	if value < 0 {
		return fmt.Sprintf("-$%s", p.Sprintf("%.2f", -value))
	}

	return fmt.Sprintf("$%s", p.Sprintf("%.2f", value))
}

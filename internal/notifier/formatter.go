package notifier

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"KappaTrend/internal/model"
	"KappaTrend/internal/recorder"
)

// FormatStepReport formats one oscillator update into a console message.
func FormatStepReport(source string, state model.TrendState, seriesLen int, overbought, oversold bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s step %d | %d points\n", source, state.Epoch, seriesLen))
	b.WriteString(fmt.Sprintf("  value: %.2f | momentum: %+.2f | phase: %.4f rad\n",
		state.Value, state.Momentum, state.Phase))
	b.WriteString(fmt.Sprintf("  signal: %s\n", state.Signal))

	if overbought {
		b.WriteString("  ⚠️ overbought band\n")
	}
	if oversold {
		b.WriteString("  ⚠️ oversold band\n")
	}

	return b.String()
}

// FormatStepTable renders recorded steps as a table for the end-of-run
// summary.
func FormatStepTable(steps []recorder.StepSnapshot) string {
	if len(steps) == 0 {
		return "no recorded steps"
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Epoch", "Points", "Value", "Momentum", "Phase", "Signal"})
	for _, s := range steps {
		t.AppendRow(table.Row{
			s.State.Epoch,
			s.SeriesLen,
			fmt.Sprintf("%.2f", s.State.Value),
			fmt.Sprintf("%+.2f", s.State.Momentum),
			fmt.Sprintf("%.4f", s.State.Phase),
			s.State.Signal.String(),
		})
	}
	return t.Render()
}

// Package aisummary generates a narrative handover summary for one bed by
// sending the charted record, enriched with its derived scores, to a
// generative language model.
package aisummary

import (
	"fmt"
	"strings"

	"github.com/icurounds/icurounds/internal/domain/patient"
)

// BuildPrompt renders the handover prompt for a record. Derived values come
// from the score panel so the model sees the same numbers the dashboard
// shows.
func BuildPrompt(rec *patient.Record, panel *patient.ScorePanel) string {
	var b strings.Builder

	b.WriteString("You are an intensive care physician. Write a concise handover summary, in clinical prose, for the following ICU patient. Highlight the active problems, current support and today's plan.\n\n")

	writeLine(&b, "Name", rec.Name)
	writeLine(&b, "Age", rec.Age.String())
	writeLine(&b, "Sex", rec.Sex)
	writeLine(&b, "ICU day", rec.ICUDay.String())
	writeLine(&b, "Main diagnosis", rec.MainDiagnosis)
	writeLine(&b, "History", rec.History)
	writeLine(&b, "Active problems", rec.Problems)

	writeLine(&b, "Neurological", rec.Neuro)
	fmt.Fprintf(&b, "GCS: %d (%s)\n", panel.GCS.Total, panel.GCS.Interpretation)

	writeLine(&b, "Cardiovascular", rec.Cardio)

	writeLine(&b, "Respiratory", rec.Resp)
	if rec.VentMode != "" {
		fmt.Fprintf(&b, "Ventilation: mode %s, PEEP %s, plateau %s, driving pressure %.0f, P/F %.0f\n",
			rec.VentMode, rec.PEEP, rec.PlateauPressure,
			panel.Ventilation.DrivingPressure, panel.Ventilation.PFRatio)
	}

	writeLine(&b, "Renal", rec.Renal)

	fmt.Fprintf(&b, "SOFA: %d (%s)\n", panel.Sofa.Total, panel.Sofa.Interpretation)
	fmt.Fprintf(&b, "qSOFA: %d\n", panel.QSofa.Total)
	fmt.Fprintf(&b, "Fluid balance today: %.0f mL (cumulative %.0f mL)\n",
		panel.Fluids.Balance, panel.Fluids.CumulativeBalance)

	writeLine(&b, "Plan", rec.Plan)

	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

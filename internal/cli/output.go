package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func parseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s)
	if f != FormatText && f != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return f, nil
}

type daySummary struct {
	Date      string              `json:"date"`
	Total     int                 `json:"total"`
	Goal      int                 `json:"goal"`
	Progress  int                 `json:"progress"`
	Remaining int                 `json:"remaining"`
	Achieved  bool                `json:"achieved"`
	Logs      []domain.DrinkEvent `json:"logs"`
}

func summarize(d *domain.DayRecord) daySummary {
	logs := d.Logs
	if logs == nil {
		logs = []domain.DrinkEvent{}
	}
	return daySummary{
		Date:      d.Date,
		Total:     d.Total,
		Goal:      d.Goal,
		Progress:  d.Progress(),
		Remaining: d.Remaining(),
		Achieved:  d.Achieved(),
		Logs:      logs,
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeDay(w io.Writer, d *domain.DayRecord, verbose bool) {
	fmt.Fprintf(w, "%s  %d/%d ml (%d%%)", d.Date, d.Total, d.Goal, d.Progress())
	if d.Achieved() {
		fmt.Fprint(w, "  goal reached")
	} else {
		fmt.Fprintf(w, "  %d ml to go", d.Remaining())
	}
	fmt.Fprintln(w)

	if verbose {
		for _, l := range d.Logs {
			fmt.Fprintf(w, "  %s  %d ml\n", l.Time, l.Amount)
		}
	}
}

func writePrefs(w io.Writer, p domain.Preferences) {
	for _, key := range domain.PreferenceKeys {
		v, _ := p.Get(key)
		fmt.Fprintf(w, "%-12s %t\n", key, v)
	}
}

func writeStats(w io.Writer, s *domain.HydrationStats) {
	fmt.Fprintf(w, "%s .. %s (goal %d ml)\n", s.StartDate, s.EndDate, s.Goal)
	fmt.Fprintf(w, "Total:          %d ml\n", s.TotalIntake)
	fmt.Fprintf(w, "Daily average:  %.0f ml\n", s.AverageIntake)
	fmt.Fprintf(w, "Days logged:    %d\n", s.DaysLogged)
	fmt.Fprintf(w, "Goals reached:  %d (%.0f%%)\n", s.DaysAchieved, s.CompletionRate)
	fmt.Fprintf(w, "Current streak: %d\n", s.CurrentStreak)
	fmt.Fprintf(w, "Longest streak: %d\n", s.LongestStreak)
}

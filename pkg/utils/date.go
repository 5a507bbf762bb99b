package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateWindow é um intervalo de datas de calendário, sem hora
type DateWindow struct {
	Start time.Time
	End   time.Time
}

func (w DateWindow) Since() string { return w.Start.Format(time.DateOnly) }
func (w DateWindow) Until() string { return w.End.Format(time.DateOnly) }

// Days retorna a distância em dias entre início e fim
func (w DateWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

var relativeWindowPattern = regexp.MustCompile(`^last_(\d+)_days?$`)

// ResolveDateWindow traduz um rótulo relativo ("LAST_30_DAYS", "last 7 days", "today")
// ou um intervalo explícito ("2024-01-01..2024-01-31") em datas de calendário.
// Retorna false quando o rótulo não é relativo e deve seguir opaco para o fornecedor.
func ResolveDateWindow(label string, now time.Time) (DateWindow, bool) {
	today := truncateToDate(now)

	if since, until, found := strings.Cut(label, ".."); found {
		start, err := ParseDate(since)
		if err != nil || start.IsZero() {
			return DateWindow{}, false
		}
		end, err := ParseDate(until)
		if err != nil || end.IsZero() || end.Before(*start) {
			return DateWindow{}, false
		}
		return DateWindow{Start: *start, End: *end}, true
	}

	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	switch normalized {
	case "today":
		return DateWindow{Start: today, End: today}, true
	case "yesterday":
		yesterday := today.AddDate(0, 0, -1)
		return DateWindow{Start: yesterday, End: yesterday}, true
	}

	matches := relativeWindowPattern.FindStringSubmatch(normalized)
	if matches == nil {
		return DateWindow{}, false
	}

	days, err := strconv.Atoi(matches[1])
	if err != nil || days <= 0 {
		return DateWindow{}, false
	}

	return DateWindow{Start: today.AddDate(0, 0, -days), End: today}, true
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

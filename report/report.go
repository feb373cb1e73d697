package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"factorygate.in/factorygate/model"
	"factorygate.in/factorygate/utils"
)

const (
	logsSheet   = "LOGS"
	unauthSheet = "UNAUTH"
)

// DayFilter matches stored punch timestamps against a report date. Stored
// timestamps are day-first strings, so the filter compares the date prefix.
func DayFilter(day time.Time) string {
	return day.Format("02/01/2006")
}

// BuildWorkbook renders the attendance log and the unauthorized-attempt log
// into one XLSX workbook. With a non-empty dayPrefix only matching rows are
// included; an empty prefix exports everything.
func BuildWorkbook(events []model.PunchEvent, attempts []model.UnauthorizedAttempt, dayPrefix string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", logsSheet)
	if _, err := f.NewSheet(unauthSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	logHeader := []interface{}{"Timestamp", "Worker ID", "Name", "Action", "Lat", "Lng", "Accuracy (m)", "Within Geofence", "Location", "Kind", "User Agent"}
	if err := f.SetSheetRow(logsSheet, "A1", &logHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	dayEvents := utils.Filter(events, func(ev model.PunchEvent) bool {
		return matchesDay(ev.Timestamp, dayPrefix)
	})

	row := 2
	for _, ev := range dayEvents {
		cells := []interface{}{
			ev.Timestamp,
			ev.WorkerID,
			ev.Name,
			ev.Action,
			ev.Latitude,
			ev.Longitude,
			ev.AccuracyM,
			utils.FormatBoolean(ev.WithinGeofence, "YES", "NO"),
			ev.MatchedLocation,
			ev.Kind,
			ev.UserAgent,
		}
		if err := f.SetSheetRow(logsSheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return nil, fmt.Errorf("failed to write log row: %w", err)
		}
		row++
	}

	unauthHeader := []interface{}{"Timestamp", "Worker ID", "Name", "Lat", "Lng", "Accuracy (m)", "Distance (m)", "Reason", "User Agent"}
	if err := f.SetSheetRow(unauthSheet, "A1", &unauthHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	dayAttempts := utils.Filter(attempts, func(at model.UnauthorizedAttempt) bool {
		return matchesDay(at.Timestamp, dayPrefix)
	})

	row = 2
	for _, at := range dayAttempts {
		cells := []interface{}{
			at.Timestamp,
			at.WorkerID,
			at.Name,
			at.Latitude,
			at.Longitude,
			at.AccuracyM,
			at.DistanceM,
			at.Reason,
			at.UserAgent,
		}
		if err := f.SetSheetRow(unauthSheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return nil, fmt.Errorf("failed to write unauth row: %w", err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func matchesDay(timestamp, dayPrefix string) bool {
	if dayPrefix == "" {
		return true
	}
	return len(timestamp) >= len(dayPrefix) && timestamp[:len(dayPrefix)] == dayPrefix
}

package timelog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// entryRecord is the wire shape of a pre-extracted entry.
type entryRecord struct {
	Date  string  `json:"date"`  // "2006-01-02"
	Start string  `json:"start"` // "15:04:05"
	End   string  `json:"end"`   // "15:04:05"
	Hours float64 `json:"hours"`
	Raw   string  `json:"raw"`
}

// LoadEntries reads a JSON array of pre-extracted entries, the escape hatch
// for photos the OCR engine cannot read. Loaded entries bypass OCR and line
// parsing entirely.
func LoadEntries(path string) ([]DayEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries file: %w", err)
	}

	var records []entryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse entries file: %w", err)
	}

	entries := make([]DayEntry, 0, len(records))
	for i, rec := range records {
		date, err := time.ParseInLocation("2006-01-02", rec.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid date %q: %w", i, rec.Date, err)
		}
		start, err := parseClock(rec.Start)
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid start %q: %w", i, rec.Start, err)
		}
		end, err := parseClock(rec.End)
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid end %q: %w", i, rec.End, err)
		}
		entries = append(entries, DayEntry{
			Date:  date,
			Start: start,
			End:   end,
			Hours: rec.Hours,
			Raw:   rec.Raw,
		})
	}
	return entries, nil
}

func parseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		// Accept the short form too; handwritten extracts often omit seconds.
		t, err = time.Parse("15:04", s)
		if err != nil {
			return Clock{}, err
		}
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

package utils

import "time"

// ParseDate parses an optional YYYY-MM-DD query parameter. An empty string
// yields a zero time, not an error.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

package utils

import (
	"fmt"
	"time"
)

const monthLayout = "01-2006"

// ParseDate interpreta datas no formato yyyy-mm-dd no fuso informado; string vazia retorna nil
func ParseDate(dateStr string, location *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if location == nil {
		location = time.UTC
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, location)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// FormatMonth formata a data como mm-yyyy
func FormatMonth(date time.Time) string {
	return date.Format(monthLayout)
}

// ParseMonth interpreta um mês no formato mm-yyyy no fuso informado
func ParseMonth(month string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}

	date, err := time.ParseInLocation(monthLayout, month, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, use mm-yyyy: %w", month, err)
	}

	return date, nil
}

package utils

import (
	"fmt"
	"time"
)

// ParseDateIn interpreta uma data de calendário obrigatória no fuso informado,
// retornando a meia-noite local daquele dia
func ParseDateIn(dateStr string, loc *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("data obrigatória ausente")
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

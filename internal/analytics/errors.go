package analytics

import "errors"

// Erros de validação do motor de agregação. Casos aritméticos de borda
// (baseline zerado, total zerado) não são erros: viram growth nulo ou
// percentuais zerados.
var (
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInvalidGranularity = errors.New("unsupported granularity")
	ErrInvalidPage        = errors.New("page and pageSize must be greater than zero")
)

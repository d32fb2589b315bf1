package analytics

import "github.com/pkg/errors"

// Granularity é a largura do bucket de tempo usada na enumeração
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity valida o parâmetro groupBy vindo da query string.
// Vazio assume agrupamento diário, o padrão do dashboard.
func ParseGranularity(raw string) (Granularity, error) {
	switch Granularity(raw) {
	case GranularityHour, GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(raw), nil
	case "":
		return GranularityDay, nil
	default:
		return "", errors.Wrapf(ErrInvalidGranularity, "groupBy %q", raw)
	}
}

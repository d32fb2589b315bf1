package analytics

import (
	"math"
	"time"
)

// Growth calcula a variação percentual entre o período atual e o anterior,
// arredondada para uma casa decimal (round-half-to-even). Retorna nil quando
// não há baseline (anterior igual a zero): "sem comparação" é estruturalmente
// diferente de "0% de crescimento".
func Growth(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}

	pct := (current - previous) / previous * 100
	rounded := math.RoundToEven(pct*10) / 10

	return &rounded
}

// PreviousWindow retorna a janela imediatamente anterior de mesma duração que
// [start, end): o baseline de toda comparação período a período
func PreviousWindow(start, end time.Time) (time.Time, time.Time) {
	return start.Add(-end.Sub(start)), start
}

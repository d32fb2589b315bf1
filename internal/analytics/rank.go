package analytics

import (
	"math"
	"sort"
	"strings"
)

// A normalização trabalha em décimos de ponto percentual (uma casa decimal)
const percentUnits = 10

// Rank ordena as entidades por métrica decrescente com desempate totalmente
// determinístico: quantidade decrescente e, por fim, nome crescente sem
// distinção de maiúsculas. limit <= 0 mantém o conjunto inteiro.
func Rank[T any](entities []T, metric func(T) float64, quantity func(T) int, name func(T) string, limit int) []T {
	ranked := make([]T, len(entities))
	copy(ranked, entities)

	sort.SliceStable(ranked, func(i, j int) bool {
		mi, mj := metric(ranked[i]), metric(ranked[j])
		if mi != mj {
			return mi > mj
		}

		qi, qj := quantity(ranked[i]), quantity(ranked[j])
		if qi != qj {
			return qi > qj
		}

		return strings.ToLower(name(ranked[i])) < strings.ToLower(name(ranked[j]))
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// NormalizePercentages calcula a fatia de cada entidade sobre o total e
// distribui o resíduo de arredondamento pelo método dos maiores restos, de
// modo que a soma feche exatamente em 100.0 em vez de acumular desvio
// (99.9/100.1). Total zerado resulta em 0 para todas as entidades, nunca NaN.
// As entidades devem ser referências mutáveis (slice de ponteiros).
func NormalizePercentages[T any](entities []T, value func(T) float64, assign func(T, float64)) {
	var total float64
	for _, e := range entities {
		total += value(e)
	}

	if total == 0 {
		for _, e := range entities {
			assign(e, 0)
		}
		return
	}

	units := make([]int, len(entities))
	remainders := make([]float64, len(entities))
	assigned := 0

	for i, e := range entities {
		exact := value(e) / total * 100 * percentUnits
		floor := math.Floor(exact + 1e-9)
		units[i] = int(floor)
		remainders[i] = exact - floor
		assigned += int(floor)
	}

	// Resíduo em décimos necessário para a soma fechar em 100.0, entregue às
	// entidades com os maiores restos fracionários (desempate pela ordem do
	// ranking, que já é determinística)
	residual := 100*percentUnits - assigned

	order := make([]int, len(entities))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	for i := 0; i < residual; i++ {
		units[order[i%len(order)]]++
	}

	for i, e := range entities {
		assign(e, float64(units[i])/percentUnits)
	}
}

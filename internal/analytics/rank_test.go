package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rankedEntity struct {
	name     string
	revenue  float64
	quantity int
	percent  float64
}

func TestRank(t *testing.T) {
	tests := []struct {
		name     string
		entities []*rankedEntity
		limit    int
		want     []string
	}{
		{
			name: "Ordena por receita decrescente",
			entities: []*rankedEntity{
				{name: "Pho Bo", revenue: 100},
				{name: "Banh Mi", revenue: 300},
				{name: "Com Tam", revenue: 200},
			},
			limit: 0,
			want:  []string{"Banh Mi", "Com Tam", "Pho Bo"},
		},
		{
			name: "Empate em receita desempata por quantidade decrescente",
			entities: []*rankedEntity{
				{name: "Pho Bo", revenue: 100, quantity: 2},
				{name: "Banh Mi", revenue: 100, quantity: 5},
			},
			limit: 0,
			want:  []string{"Banh Mi", "Pho Bo"},
		},
		{
			name: "Empate total desempata por nome sem distincao de maiusculas",
			entities: []*rankedEntity{
				{name: "pho bo", revenue: 100, quantity: 2},
				{name: "Banh Mi", revenue: 100, quantity: 2},
				{name: "com tam", revenue: 100, quantity: 2},
			},
			limit: 0,
			want:  []string{"Banh Mi", "com tam", "pho bo"},
		},
		{
			name: "Limite recorta o ranking",
			entities: []*rankedEntity{
				{name: "A", revenue: 4},
				{name: "B", revenue: 3},
				{name: "C", revenue: 2},
				{name: "D", revenue: 1},
			},
			limit: 2,
			want:  []string{"A", "B"},
		},
		{
			name: "Limite acima do conjunto mantem todos",
			entities: []*rankedEntity{
				{name: "A", revenue: 2},
				{name: "B", revenue: 1},
			},
			limit: 10,
			want:  []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.entities,
				func(e *rankedEntity) float64 { return e.revenue },
				func(e *rankedEntity) int { return e.quantity },
				func(e *rankedEntity) string { return e.name },
				tt.limit,
			)

			got := make([]string, len(ranked))
			for i, e := range ranked {
				got[i] = e.name
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	entities := []*rankedEntity{
		{name: "B", revenue: 1},
		{name: "A", revenue: 2},
	}

	Rank(entities,
		func(e *rankedEntity) float64 { return e.revenue },
		func(e *rankedEntity) int { return e.quantity },
		func(e *rankedEntity) string { return e.name },
		0,
	)

	assert.Equal(t, "B", entities[0].name)
	assert.Equal(t, "A", entities[1].name)
}

func TestNormalizePercentages(t *testing.T) {
	tests := []struct {
		name     string
		revenues map[string]float64
		want     map[string]float64
	}{
		{
			name:     "Divisao exata",
			revenues: map[string]float64{"A": 600, "B": 400, "C": 0},
			want:     map[string]float64{"A": 60.0, "B": 40.0, "C": 0.0},
		},
		{
			name:     "Tercos fecham em 100.0 pelo metodo dos maiores restos",
			revenues: map[string]float64{"A": 100, "B": 100, "C": 100},
			want:     map[string]float64{"A": 33.4, "B": 33.3, "C": 33.3},
		},
		{
			name:     "Total zerado zera todas, nunca NaN",
			revenues: map[string]float64{"A": 0, "B": 0},
			want:     map[string]float64{"A": 0.0, "B": 0.0},
		},
		{
			name:     "Entidade unica recebe 100.0",
			revenues: map[string]float64{"A": 123.45},
			want:     map[string]float64{"A": 100.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Ordem estavel de entrada (ranking por receita)
			entities := make([]*rankedEntity, 0, len(tt.revenues))
			for _, name := range []string{"A", "B", "C", "D"} {
				if revenue, ok := tt.revenues[name]; ok {
					entities = append(entities, &rankedEntity{name: name, revenue: revenue})
				}
			}

			NormalizePercentages(entities,
				func(e *rankedEntity) float64 { return e.revenue },
				func(e *rankedEntity, pct float64) { e.percent = pct },
			)

			for _, e := range entities {
				assert.InDelta(t, tt.want[e.name], e.percent, 1e-9, "entidade %s", e.name)
			}
		})
	}
}

func TestNormalizePercentages_SumIsExactlyOneHundred(t *testing.T) {
	// Valores escolhidos para que o arredondamento ingenuo por entidade
	// acumulasse 99.9 em vez de 100.0
	entities := []*rankedEntity{
		{name: "A", revenue: 1},
		{name: "B", revenue: 1},
		{name: "C", revenue: 1},
		{name: "D", revenue: 1},
		{name: "E", revenue: 1},
		{name: "F", revenue: 1},
		{name: "G", revenue: 1},
	}

	NormalizePercentages(entities,
		func(e *rankedEntity) float64 { return e.revenue },
		func(e *rankedEntity, pct float64) { e.percent = pct },
	)

	var sum float64
	for _, e := range entities {
		sum += e.percent
	}

	assert.InDelta(t, 100.0, sum, 1e-9)
}

package analytics

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBucketer_Enumerate(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	bucketer := NewBucketer(loc, 366)

	tests := []struct {
		name        string
		start       time.Time
		end         time.Time
		granularity Granularity
		wantErr     error
		validate    func(t *testing.T, set *BucketSet)
	}{
		{
			name:        "Sete dias por dia - um bucket por dia, sem lacunas",
			start:       time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
			end:         time.Date(2024, 3, 8, 0, 0, 0, 0, loc),
			granularity: GranularityDay,
			validate: func(t *testing.T, set *BucketSet) {
				assert.Len(t, set.Buckets, 7)
				assert.Equal(t, "2024-03-01", set.Buckets[0].Key)
				assert.Equal(t, "2024-03-07", set.Buckets[6].Key)
				assert.Equal(t, "01/03", set.Buckets[0].Label)
			},
		},
		{
			name:        "Uniao dos buckets cobre exatamente o periodo",
			start:       time.Date(2024, 3, 5, 10, 30, 0, 0, loc),
			end:         time.Date(2024, 3, 8, 14, 0, 0, 0, loc),
			granularity: GranularityDay,
			validate: func(t *testing.T, set *BucketSet) {
				assert.True(t, set.Buckets[0].Start.Equal(time.Date(2024, 3, 5, 10, 30, 0, 0, loc)))
				assert.True(t, set.Buckets[len(set.Buckets)-1].End.Equal(time.Date(2024, 3, 8, 14, 0, 0, 0, loc)))

				for i := 1; i < len(set.Buckets); i++ {
					assert.True(t, set.Buckets[i].Start.Equal(set.Buckets[i-1].End),
						"buckets devem ser contiguos")
				}
			},
		},
		{
			name:        "Semanas comecam na segunda-feira",
			start:       time.Date(2024, 3, 6, 0, 0, 0, 0, loc), // quarta-feira
			end:         time.Date(2024, 3, 20, 0, 0, 0, 0, loc),
			granularity: GranularityWeek,
			validate: func(t *testing.T, set *BucketSet) {
				assert.Len(t, set.Buckets, 3)

				// A chave vem do piso de calendário (segunda), o inicio vem
				// recortado no comeco do periodo
				assert.Equal(t, "2024-03-04", set.Buckets[0].Key)
				assert.True(t, set.Buckets[0].Start.Equal(time.Date(2024, 3, 6, 0, 0, 0, 0, loc)))
				assert.Equal(t, "2024-03-11", set.Buckets[1].Key)
				assert.Equal(t, time.Monday, set.Buckets[1].Start.Weekday())
			},
		},
		{
			name:        "Meses de tamanhos diferentes",
			start:       time.Date(2024, 1, 15, 0, 0, 0, 0, loc),
			end:         time.Date(2024, 4, 10, 0, 0, 0, 0, loc),
			granularity: GranularityMonth,
			validate: func(t *testing.T, set *BucketSet) {
				assert.Len(t, set.Buckets, 4)
				assert.Equal(t, "2024-01", set.Buckets[0].Key)
				assert.Equal(t, "2024-04", set.Buckets[3].Key)
				assert.Equal(t, "02/2024", set.Buckets[1].Label)
			},
		},
		{
			name:        "Granularidade por hora dentro de um dia",
			start:       time.Date(2024, 3, 1, 9, 0, 0, 0, loc),
			end:         time.Date(2024, 3, 1, 12, 0, 0, 0, loc),
			granularity: GranularityHour,
			validate: func(t *testing.T, set *BucketSet) {
				assert.Len(t, set.Buckets, 3)
				assert.Equal(t, "2024-03-01T09", set.Buckets[0].Key)
				assert.Equal(t, "09:00", set.Buckets[0].Label)
			},
		},
		{
			name:        "Fim igual ao inicio e invalido",
			start:       time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
			end:         time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
			granularity: GranularityDay,
			wantErr:     ErrInvalidRange,
		},
		{
			name:        "Fim antes do inicio e invalido",
			start:       time.Date(2024, 3, 2, 0, 0, 0, 0, loc),
			end:         time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
			granularity: GranularityDay,
			wantErr:     ErrInvalidRange,
		},
		{
			name:        "Periodo acima do maximo configurado e invalido",
			start:       time.Date(2023, 1, 1, 0, 0, 0, 0, loc),
			end:         time.Date(2024, 6, 1, 0, 0, 0, 0, loc),
			granularity: GranularityMonth,
			wantErr:     ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := bucketer.Enumerate(tt.start, tt.end, tt.granularity)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			assert.NoError(t, err)
			tt.validate(t, set)
		})
	}
}

func TestBucketer_EnumerateIsDeterministic(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	bucketer := NewBucketer(loc, 366)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	first, err := bucketer.Enumerate(start, end, GranularityDay)
	assert.NoError(t, err)

	second, err := bucketer.Enumerate(start, end, GranularityDay)
	assert.NoError(t, err)

	assert.Equal(t, first.Buckets, second.Buckets)
}

func TestBucketSet_IndexFor(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	bucketer := NewBucketer(loc, 366)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 8, 0, 0, 0, 0, loc)

	set, err := bucketer.Enumerate(start, end, GranularityDay)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		ts        time.Time
		wantIndex int
		wantErr   bool
	}{
		{
			name:      "Primeiro instante do periodo",
			ts:        start,
			wantIndex: 0,
		},
		{
			name:      "Meio do periodo",
			ts:        time.Date(2024, 3, 4, 18, 45, 0, 0, loc),
			wantIndex: 3,
		},
		{
			name:      "Ultimo instante antes do fim",
			ts:        time.Date(2024, 3, 7, 23, 59, 59, 0, loc),
			wantIndex: 6,
		},
		{
			name:      "Instante em outro fuso cai no bucket do fuso configurado",
			ts:        time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC), // 02/03 03:00 em ICT
			wantIndex: 1,
		},
		{
			name:    "Fim do periodo fica fora (intervalo semiaberto)",
			ts:      end,
			wantErr: true,
		},
		{
			name:    "Antes do inicio fica fora",
			ts:      start.Add(-time.Second),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := set.IndexFor(tt.ts)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRange))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantIndex, idx)
		})
	}
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Granularity
		wantErr bool
	}{
		{name: "Vazio usa o padrao diario", input: "", want: GranularityDay},
		{name: "Hora", input: "hour", want: GranularityHour},
		{name: "Dia", input: "day", want: GranularityDay},
		{name: "Semana", input: "week", want: GranularityWeek},
		{name: "Mes", input: "month", want: GranularityMonth},
		{name: "Valor desconhecido e invalido", input: "quarter", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGranularity(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidGranularity))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

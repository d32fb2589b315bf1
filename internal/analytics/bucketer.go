package analytics

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Bucket é um intervalo semiaberto [Start, End) com chave canônica ordenável e
// rótulo de exibição
type Bucket struct {
	Key   string
	Label string
	Start time.Time
	End   time.Time
}

// BucketSet é o resultado de uma enumeração: buckets ordenados, sem lacunas e
// sem sobreposição, cuja união cobre exatamente [start, end)
type BucketSet struct {
	Buckets []Bucket

	start       time.Time
	end         time.Time
	granularity Granularity
	loc         *time.Location
	indexByKey  map[string]int
}

// Bucketer calcula limites de bucket sempre no fuso horário configurado,
// nunca no fuso de cada linha. Chamadas repetidas com os mesmos argumentos
// produzem exatamente a mesma sequência.
type Bucketer struct {
	loc     *time.Location
	maxSpan time.Duration
}

func NewBucketer(loc *time.Location, maxRangeDays int) *Bucketer {
	return &Bucketer{
		loc:     loc,
		maxSpan: time.Duration(maxRangeDays) * 24 * time.Hour,
	}
}

// Enumerate produz a sequência ordenada de buckets que cobre [start, end).
// Os limites seguem o calendário (hora cheia, meia-noite local, segunda-feira,
// primeiro dia do mês); o primeiro e o último bucket são recortados nos
// limites do período para que a união dos intervalos seja exata.
func (b *Bucketer) Enumerate(start, end time.Time, g Granularity) (*BucketSet, error) {
	if !end.After(start) {
		return nil, errors.Wrap(ErrInvalidRange, "endDate must be after startDate")
	}

	if end.Sub(start) > b.maxSpan {
		return nil, errors.Wrapf(ErrInvalidRange,
			"range exceeds the maximum of %d days", int(b.maxSpan.Hours()/24))
	}

	cursor, err := truncate(start, g, b.loc)
	if err != nil {
		return nil, err
	}

	set := &BucketSet{
		start:       start,
		end:         end,
		granularity: g,
		loc:         b.loc,
		indexByKey:  make(map[string]int),
	}

	for cursor.Before(end) {
		next := advance(cursor, g, b.loc)

		bucket := Bucket{
			Key:   bucketKey(cursor, g),
			Label: bucketLabel(cursor, g),
			Start: cursor,
			End:   next,
		}

		// Recorte nos limites do período solicitado
		if bucket.Start.Before(start) {
			bucket.Start = start
		}
		if bucket.End.After(end) {
			bucket.End = end
		}

		set.indexByKey[bucket.Key] = len(set.Buckets)
		set.Buckets = append(set.Buckets, bucket)
		cursor = next
	}

	return set, nil
}

// IndexFor retorna a posição do bucket que contém o instante informado.
// Instantes fora de [start, end) são um erro de faixa.
func (s *BucketSet) IndexFor(ts time.Time) (int, error) {
	if ts.Before(s.start) || !ts.Before(s.end) {
		return 0, errors.Wrapf(ErrInvalidRange,
			"timestamp %s outside of [%s, %s)",
			ts.Format(time.RFC3339), s.start.Format(time.RFC3339), s.end.Format(time.RFC3339))
	}

	floor, err := truncate(ts, s.granularity, s.loc)
	if err != nil {
		return 0, err
	}

	idx, ok := s.indexByKey[bucketKey(floor, s.granularity)]
	if !ok {
		// Não deve acontecer: a enumeração cobre todo o período
		return 0, errors.Wrapf(ErrInvalidRange, "no bucket for timestamp %s", ts.Format(time.RFC3339))
	}

	return idx, nil
}

// KeyFor retorna a chave canônica do bucket que contém o instante
func (s *BucketSet) KeyFor(ts time.Time) (string, error) {
	idx, err := s.IndexFor(ts)
	if err != nil {
		return "", err
	}
	return s.Buckets[idx].Key, nil
}

// truncate rebaixa o instante para o início do bucket que o contém
func truncate(ts time.Time, g Granularity, loc *time.Location) (time.Time, error) {
	t := ts.In(loc)

	switch g {
	case GranularityHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc), nil
	case GranularityDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	case GranularityWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		monday := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -monday), nil
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc), nil
	default:
		return time.Time{}, errors.Wrapf(ErrInvalidGranularity, "granularity %q", g)
	}
}

// advance retorna o início do bucket seguinte. time.Date normaliza estouros
// de hora/dia/mês, o que mantém o alinhamento em trocas de horário de verão.
func advance(start time.Time, g Granularity, loc *time.Location) time.Time {
	switch g {
	case GranularityHour:
		return time.Date(start.Year(), start.Month(), start.Day(), start.Hour()+1, 0, 0, 0, loc)
	case GranularityWeek:
		return start.AddDate(0, 0, 7)
	case GranularityMonth:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

func bucketKey(floor time.Time, g Granularity) string {
	switch g {
	case GranularityHour:
		return floor.Format("2006-01-02T15")
	case GranularityMonth:
		return floor.Format("2006-01")
	default:
		// day e week usam a data do início do bucket
		return floor.Format(time.DateOnly)
	}
}

func bucketLabel(floor time.Time, g Granularity) string {
	switch g {
	case GranularityHour:
		return floor.Format("15:04")
	case GranularityWeek:
		_, week := floor.ISOWeek()
		return fmt.Sprintf("Semana %02d", week)
	case GranularityMonth:
		return floor.Format("01/2006")
	default:
		return floor.Format("02/01")
	}
}

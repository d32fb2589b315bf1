package analytics

import "github.com/pkg/errors"

// PageInfo descreve a página retornada nos painéis de detalhe
type PageInfo struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Paginate recorta uma página estável de linhas já ordenadas pelo chamador
// (este componente nunca reordena). Uma página além da última retorna a lista
// vazia com Total/TotalPages corretos, em vez de erro ou de recuo para a
// última página.
func Paginate[T any](rows []T, page, pageSize int) ([]T, PageInfo, error) {
	if page < 1 || pageSize < 1 {
		return nil, PageInfo{}, errors.Wrapf(ErrInvalidPage, "page %d, pageSize %d", page, pageSize)
	}

	total := len(rows)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	info := PageInfo{
		Page:       page,
		Limit:      pageSize,
		Total:      total,
		TotalPages: totalPages,
	}

	offset := (page - 1) * pageSize
	if offset >= total {
		return []T{}, info, nil
	}

	end := offset + pageSize
	if end > total {
		end = total
	}

	items := make([]T, end-offset)
	copy(items, rows[offset:end])

	return items, info, nil
}

package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
)

const (
	reviewsTable = "reviews r"
)

// ReviewRepository busca avaliações já filtradas por período e por tipo de
// alvo (restaurante ou prato do cardápio)
type ReviewRepository interface {
	// GetByDateRange retorna as avaliações do tipo informado com created_at em [start, end)
	GetByDateRange(subjectType domain.ReviewSubjectType, start, end time.Time) ([]*domain.ReviewRecord, error)

	// GetDetailByDateRange retorna as avaliações com dados de cliente/mesa/prato
	// resolvidos, ordenadas da mais recente para a mais antiga
	GetDetailByDateRange(subjectType domain.ReviewSubjectType, start, end time.Time) ([]*domain.ReviewDetail, error)

	// ListRecent retorna as últimas avaliações do tipo informado
	ListRecent(subjectType domain.ReviewSubjectType, limit int) ([]*domain.ReviewDetail, error)

	// GetDishRatings retorna as avaliações de pratos com os dados do prato
	// resolvidos, para os rankings de melhores/piores pratos
	GetDishRatings(start, end time.Time) ([]*domain.DishRatingRow, error)
}

type reviewRepository struct {
	conn *postgres.Connection
}

func NewReviewRepository(conn *postgres.Connection) ReviewRepository {
	return &reviewRepository{
		conn: conn,
	}
}

func (r *reviewRepository) GetByDateRange(subjectType domain.ReviewSubjectType, start, end time.Time) ([]*domain.ReviewRecord, error) {
	query, args, err := squirrel.
		Select("r.id, r.subject_type, r.subject_id, r.rating, r.comment, c.name, t.table_number, r.created_at").
		From(reviewsTable).
		LeftJoin("customers c ON r.customer_id = c.id").
		LeftJoin("tables t ON r.table_id = t.id").
		Where(squirrel.Eq{"r.subject_type": string(subjectType)}).
		Where(squirrel.GtOrEq{"r.created_at": start}).
		Where(squirrel.Lt{"r.created_at": end}).
		OrderBy("r.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de avaliações")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query de avaliações")
	}
	defer rows.Close()

	reviews := make([]*domain.ReviewRecord, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear avaliação")
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de avaliações")
	}

	return reviews, nil
}

func (r *reviewRepository) GetDetailByDateRange(subjectType domain.ReviewSubjectType, start, end time.Time) ([]*domain.ReviewDetail, error) {
	builder := r.detailQuery(subjectType).
		Where(squirrel.GtOrEq{"r.created_at": start}).
		Where(squirrel.Lt{"r.created_at": end})

	return r.queryDetails(builder)
}

func (r *reviewRepository) ListRecent(subjectType domain.ReviewSubjectType, limit int) ([]*domain.ReviewDetail, error) {
	builder := r.detailQuery(subjectType).
		Limit(uint64(limit))

	return r.queryDetails(builder)
}

func (r *reviewRepository) GetDishRatings(start, end time.Time) ([]*domain.DishRatingRow, error) {
	query, args, err := squirrel.
		Select("mi.id, mi.name, COALESCE(MAX(mc.name), ''), mi.price, r.rating, r.created_at").
		From(reviewsTable).
		Join("menu_items mi ON r.subject_id = mi.id").
		LeftJoin("menu_item_categories mic ON mi.id = mic.item_id").
		LeftJoin("menu_categories mc ON mic.category_id = mc.id").
		Where(squirrel.Eq{"r.subject_type": string(domain.ReviewSubjectDish)}).
		Where(squirrel.GtOrEq{"r.created_at": start}).
		Where(squirrel.Lt{"r.created_at": end}).
		Where("mi.deleted_at IS NULL").
		GroupBy("r.id", "mi.id", "mi.name", "mi.price", "r.rating", "r.created_at").
		OrderBy("r.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de notas por prato")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query de notas por prato")
	}
	defer rows.Close()

	ratings := make([]*domain.DishRatingRow, 0)
	for rows.Next() {
		var row domain.DishRatingRow

		err := rows.Scan(
			&row.DishID,
			&row.DishName,
			&row.CategoryName,
			&row.Price,
			&row.Rating,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear nota de prato")
		}

		ratings = append(ratings, &row)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de notas por prato")
	}

	return ratings, nil
}

// detailQuery monta a projeção de detalhe comum a GetDetailByDateRange e
// ListRecent, sempre da mais recente para a mais antiga
func (r *reviewRepository) detailQuery(subjectType domain.ReviewSubjectType) squirrel.SelectBuilder {
	return squirrel.
		Select("r.id, r.rating, r.comment, r.created_at, t.table_number, COALESCE(c.name, 'Cliente'), mi.id, mi.name").
		From(reviewsTable).
		LeftJoin("customers c ON r.customer_id = c.id").
		LeftJoin("tables t ON r.table_id = t.id").
		LeftJoin("menu_items mi ON r.subject_id = mi.id AND r.subject_type = 'DISH'").
		Where(squirrel.Eq{"r.subject_type": string(subjectType)}).
		OrderBy("r.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *reviewRepository) queryDetails(builder squirrel.SelectBuilder) ([]*domain.ReviewDetail, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de detalhe de avaliações")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query de detalhe de avaliações")
	}
	defer rows.Close()

	details := make([]*domain.ReviewDetail, 0)
	for rows.Next() {
		var (
			detail      domain.ReviewDetail
			comment     sql.NullString
			tableNumber sql.NullString
			dishID      sql.NullString
			dishName    sql.NullString
		)

		err := rows.Scan(
			&detail.ID,
			&detail.Rating,
			&comment,
			&detail.CreatedAt,
			&tableNumber,
			&detail.CustomerName,
			&dishID,
			&dishName,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear detalhe de avaliação")
		}

		if comment.Valid {
			detail.Comment = &comment.String
		}
		if tableNumber.Valid {
			detail.TableNumber = &tableNumber.String
		}
		if dishID.Valid {
			detail.DishID = &dishID.String
		}
		if dishName.Valid {
			detail.DishName = &dishName.String
		}

		details = append(details, &detail)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de detalhes de avaliações")
	}

	return details, nil
}

func scanReview(rows *sql.Rows) (*domain.ReviewRecord, error) {
	var (
		review       domain.ReviewRecord
		subjectID    sql.NullString
		comment      sql.NullString
		customerName sql.NullString
		tableNumber  sql.NullString
	)

	err := rows.Scan(
		&review.ID,
		&review.SubjectType,
		&subjectID,
		&review.Rating,
		&comment,
		&customerName,
		&tableNumber,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if subjectID.Valid {
		review.SubjectID = &subjectID.String
	}
	if comment.Valid {
		review.Comment = &comment.String
	}
	if customerName.Valid {
		review.CustomerName = customerName.String
	} else {
		review.CustomerName = "Cliente"
	}
	if tableNumber.Valid {
		review.TableNumber = &tableNumber.String
	}

	return &review, nil
}

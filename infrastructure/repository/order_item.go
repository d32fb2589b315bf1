package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
)

const (
	orderItemsTable = "order_items oi"
)

// OrderItemRepository busca itens de pedido com prato e categorias já
// resolvidos, prontos para os rollups de receita por prato e por categoria
type OrderItemRepository interface {
	// GetByDateRange retorna os itens de pedidos concluídos com created_at do
	// pedido em [start, end)
	GetByDateRange(start, end time.Time) ([]*domain.OrderLineItem, error)
}

type orderItemRepository struct {
	conn *postgres.Connection
}

func NewOrderItemRepository(conn *postgres.Connection) OrderItemRepository {
	return &orderItemRepository{
		conn: conn,
	}
}

func (r *orderItemRepository) GetByDateRange(start, end time.Time) ([]*domain.OrderLineItem, error) {
	query, args, err := squirrel.
		Select(
			"oi.order_id",
			"mi.id",
			"mi.name",
			"COALESCE(ARRAY_AGG(mc.id) FILTER (WHERE mc.id IS NOT NULL), '{}')",
			"COALESCE(ARRAY_AGG(mc.name) FILTER (WHERE mc.id IS NOT NULL), '{}')",
			"oi.quantity",
			"oi.unit_price",
			"o.created_at",
		).
		From(orderItemsTable).
		Join("orders o ON oi.order_id = o.id").
		Join("menu_items mi ON oi.menu_item_id = mi.id").
		LeftJoin("menu_item_categories mic ON mi.id = mic.item_id").
		LeftJoin("menu_categories mc ON mic.category_id = mc.id").
		Where(squirrel.Eq{"o.status": completedOrderStatuses}).
		Where(squirrel.GtOrEq{"o.created_at": start}).
		Where(squirrel.Lt{"o.created_at": end}).
		Where("mi.deleted_at IS NULL").
		GroupBy("oi.order_id", "mi.id", "mi.name", "oi.quantity", "oi.unit_price", "o.created_at").
		OrderBy("o.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de itens de pedido")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query de itens de pedido")
	}
	defer rows.Close()

	items := make([]*domain.OrderLineItem, 0)
	for rows.Next() {
		var item domain.OrderLineItem

		err := rows.Scan(
			&item.OrderID,
			&item.DishID,
			&item.DishName,
			pq.Array(&item.CategoryIDs),
			pq.Array(&item.CategoryNames),
			&item.Quantity,
			&item.UnitPrice,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item de pedido")
		}

		items = append(items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de itens de pedido")
	}

	return items, nil
}

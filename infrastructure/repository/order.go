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
	ordersTable = "orders o"
)

// Apenas pedidos concluídos entram nos relatórios
var completedOrderStatuses = []string{"DONE", "PAID"}

// OrderRepository busca pedidos já filtrados por período. O motor de
// agregação nunca monta queries: recebe as linhas prontas daqui.
type OrderRepository interface {
	// GetByDateRange retorna os pedidos concluídos com created_at em [start, end)
	GetByDateRange(start, end time.Time) ([]*domain.OrderRecord, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) GetByDateRange(start, end time.Time) ([]*domain.OrderRecord, error) {
	query, args, err := squirrel.
		Select("o.id, o.created_at, o.total_price, o.payment_method, o.customer_id").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": completedOrderStatuses}).
		Where(squirrel.GtOrEq{"o.created_at": start}).
		Where(squirrel.Lt{"o.created_at": end}).
		OrderBy("o.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de pedidos")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query de pedidos")
	}
	defer rows.Close()

	orders := make([]*domain.OrderRecord, 0)
	for rows.Next() {
		var (
			order      domain.OrderRecord
			customerID sql.NullString
		)

		err := rows.Scan(
			&order.ID,
			&order.CreatedAt,
			&order.TotalPrice,
			&order.PaymentMethod,
			&customerID,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pedido")
		}

		if customerID.Valid {
			order.CustomerID = &customerID.String
		}

		orders = append(orders, &order)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de pedidos")
	}

	return orders, nil
}

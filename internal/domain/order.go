package domain

import "time"

// PaymentMethod identifica o meio de pagamento registrado para o pedido
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "CASH"
	PaymentMethodQRBanking PaymentMethod = "QR_BANKING"
)

// OrderRecord é uma linha de pedido já filtrada por período pela camada de
// armazenamento; o motor de agregação nunca a modifica
type OrderRecord struct {
	ID            string
	CreatedAt     time.Time
	TotalPrice    float64
	PaymentMethod PaymentMethod
	CustomerID    *string
	LineItems     []*OrderLineItem
}

// OrderLineItem é um item de pedido com as categorias do prato já resolvidas.
// CategoryIDs e CategoryNames são paralelos (mesmo índice, mesma categoria).
type OrderLineItem struct {
	OrderID       string
	DishID        string
	DishName      string
	CategoryIDs   []string
	CategoryNames []string
	Quantity      int
	UnitPrice     float64
	CreatedAt     time.Time
}

// Revenue retorna a receita do item (quantidade x preço unitário)
func (i *OrderLineItem) Revenue() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

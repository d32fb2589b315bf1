package domain

// DishRevenueItem é uma entrada do ranking de receita por prato.
// Growth é nulo quando o prato não vendeu no período anterior.
type DishRevenueItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Quantity       int      `json:"quantity"`
	Revenue        float64  `json:"revenue"`
	PercentOfTotal float64  `json:"percentOfTotal"`
	Growth         *float64 `json:"growth"`
	Rank           int      `json:"rank"`
}

// CategoryRevenueItem é uma entrada do rateio de receita por categoria.
//
// Contrato importante para o consumidor: um item de pedido que pertence a mais
// de uma categoria contribui com sua receita integral para CADA categoria, por
// isso a soma das receitas das categorias pode exceder a receita total dos
// pedidos. PercentOfTotal é normalizado contra a soma das receitas das
// categorias, não contra a receita total dos pedidos.
type CategoryRevenueItem struct {
	ID             string  `json:"id"`
	Category       string  `json:"category"`
	Quantity       int     `json:"quantity"`
	Revenue        float64 `json:"revenue"`
	PercentOfTotal float64 `json:"percentOfTotal"`
	Dishes         int     `json:"dishes"`
	Color          string  `json:"color"`
	Rank           int     `json:"rank"`
}

// CategoryColors são as cores atribuídas por posição no ranking de categorias,
// na mesma paleta usada pelo dashboard
var CategoryColors = []string{
	"#1890ff",
	"#52c41a",
	"#faad14",
	"#f5222d",
	"#722ed1",
	"#13c2c2",
}

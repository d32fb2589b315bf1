package domain

import "time"

// ReviewSubjectType indica se a avaliação é do restaurante ou de um prato
type ReviewSubjectType string

const (
	ReviewSubjectRestaurant ReviewSubjectType = "RESTAURANT"
	ReviewSubjectDish       ReviewSubjectType = "DISH"
)

// ReviewRecord é uma avaliação já filtrada por período pela camada de
// armazenamento. SubjectID é nulo para avaliações do restaurante.
type ReviewRecord struct {
	ID           string
	SubjectType  ReviewSubjectType
	SubjectID    *string
	Rating       int
	Comment      *string
	CustomerName string
	TableNumber  *string
	CreatedAt    time.Time
}

// ReviewDetail é a projeção usada nos painéis de detalhe de avaliações
type ReviewDetail struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	TableNumber  *string   `json:"tableNumber"`
	CustomerName string    `json:"customerName"`
	DishID       *string   `json:"dishId,omitempty"`
	DishName     *string   `json:"dishName,omitempty"`
}

// DishRatingRow é uma linha crua de avaliação de prato com os dados do prato
// já resolvidos, consumida pelos rankings de melhores/piores pratos
type DishRatingRow struct {
	DishID       string
	DishName     string
	CategoryName string
	Price        float64
	Rating       int
	CreatedAt    time.Time
}

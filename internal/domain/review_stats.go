package domain

import "time"

// RatingDistribution é o histograma de avaliações por nota (1 a 5)
type RatingDistribution struct {
	FiveStar  int `json:"5"`
	FourStar  int `json:"4"`
	ThreeStar int `json:"3"`
	TwoStar   int `json:"2"`
	OneStar   int `json:"1"`
}

// ReviewGrowth compara quantidade e nota média com o período anterior de mesma
// duração; campos nulos indicam ausência de baseline
type ReviewGrowth struct {
	Reviews *float64 `json:"reviews"`
	Rating  *float64 `json:"rating"`
}

// ReviewStatsResponse resume as avaliações do período. AvgRating é nulo quando
// não há avaliações (distinção entre "sem dados" e nota zero).
type ReviewStatsResponse struct {
	TotalReviews int                `json:"totalReviews"`
	AvgRating    *float64           `json:"avgRating"`
	Distribution RatingDistribution `json:"distribution"`
	Growth       ReviewGrowth       `json:"growth"`
}

// CombinedTrendPoint mescla por bucket as duas séries independentes de
// avaliações (restaurante e pratos do cardápio). Um bucket presente em apenas
// uma das séries aparece com os campos da outra zerados, nunca omitido.
type CombinedTrendPoint struct {
	Date                time.Time `json:"date"`
	Label               string    `json:"label"`
	RestaurantCount     int       `json:"restaurantCount"`
	RestaurantAvgRating float64   `json:"restaurantAvgRating"`
	MenuCount           int       `json:"menuCount"`
	MenuAvgRating       float64   `json:"menuAvgRating"`
}

// Pagination descreve a página retornada nos painéis de detalhe
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ReviewDetailResponse struct {
	Reviews    []*ReviewDetail `json:"reviews"`
	Pagination Pagination      `json:"pagination"`
}

// RatedDishItem é uma entrada dos rankings de pratos melhor/pior avaliados
type RatedDishItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	ReviewCount   int     `json:"reviewCount"`
	AvgRating     float64 `json:"avgRating"`
	FiveStarCount int     `json:"fiveStarCount"`
}

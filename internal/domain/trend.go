package domain

import "time"

// TrendPoint é um ponto da série de tendência de negócio, um por bucket de
// tempo. Buckets sem pedidos aparecem com métricas zeradas.
type TrendPoint struct {
	Date             time.Time `json:"date"`
	Label            string    `json:"label"`
	Revenue          float64   `json:"revenue"`
	RevenueQrBanking float64   `json:"revenueQrBanking"`
	RevenueCash      float64   `json:"revenueCash"`
	Orders           int       `json:"orders"`
	Customers        int       `json:"customers"`
	AvgOrderValue    float64   `json:"avgOrderValue"`
}

// GrowthSummary compara o período atual com o período imediatamente anterior
// de mesma duração. Campos nulos indicam ausência de baseline (período
// anterior zerado), nunca crescimento de 0%.
type GrowthSummary struct {
	Revenue   *float64 `json:"revenue"`
	Orders    *float64 `json:"orders"`
	Customers *float64 `json:"customers"`
}

// TrendSummary consolida os totais de todos os buckets do período
type TrendSummary struct {
	TotalRevenue   float64       `json:"totalRevenue"`
	TotalOrders    int           `json:"totalOrders"`
	TotalCustomers int           `json:"totalCustomers"`
	AvgOrderValue  float64       `json:"avgOrderValue"`
	Growth         GrowthSummary `json:"growth"`
}

type BusinessTrendResponse struct {
	Trend   []*TrendPoint `json:"trend"`
	Summary *TrendSummary `json:"summary"`
}

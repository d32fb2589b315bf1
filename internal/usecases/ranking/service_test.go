package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetDishRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := time.FixedZone("ICT", 7*3600)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 8, 0, 0, 0, 0, loc)
	prevStart, prevEnd := analytics.PreviousWindow(start, end)

	mockItemRepo := mocks.NewMockOrderItemRepository(ctrl)

	service := &Service{
		orderItemRepo: mockItemRepo,
	}

	filters := &domain.ReportFilters{StartDate: &start, EndDate: &end}

	tests := []struct {
		name     string
		limit    int
		setup    func()
		validate func(t *testing.T, result []*domain.DishRevenueItem)
	}{
		{
			name:  "Ranking por receita com percentual e crescimento",
			limit: 0,
			setup: func() {
				mockItemRepo.EXPECT().
					GetByDateRange(start, end).
					Return([]*domain.OrderLineItem{
						{
							OrderID:       "ORD001",
							DishID:        "DISH001",
							DishName:      "Pho Bo",
							CategoryNames: []string{"Sopas"},
							Quantity:      4,
							UnitPrice:     75000,
						},
						{
							OrderID:   "ORD002",
							DishID:    "DISH001",
							DishName:  "Pho Bo",
							Quantity:  4,
							UnitPrice: 75000,
						},
						{
							OrderID:       "ORD002",
							DishID:        "DISH002",
							DishName:      "Banh Mi",
							CategoryNames: []string{"Lanches"},
							Quantity:      10,
							UnitPrice:     40000,
						},
					}, nil)

				mockItemRepo.EXPECT().
					GetByDateRange(prevStart, prevEnd).
					Return([]*domain.OrderLineItem{
						{
							OrderID:   "ORD000",
							DishID:    "DISH001",
							DishName:  "Pho Bo",
							Quantity:  4,
							UnitPrice: 125000,
						},
					}, nil)
			},
			validate: func(t *testing.T, result []*domain.DishRevenueItem) {
				assert.Len(t, result, 2)

				first := result[0]
				assert.Equal(t, "DISH001", first.ID)
				assert.Equal(t, "Pho Bo", first.Name)
				assert.Equal(t, "Sopas", first.Category)
				assert.Equal(t, 8, first.Quantity)
				assert.Equal(t, float64(600000), first.Revenue)
				assert.Equal(t, 1, first.Rank)
				assert.InDelta(t, 60.0, first.PercentOfTotal, 1e-9)

				// 600000 vs 500000 no período anterior
				assert.NotNil(t, first.Growth)
				assert.InDelta(t, 20.0, *first.Growth, 1e-9)

				second := result[1]
				assert.Equal(t, "DISH002", second.ID)
				assert.Equal(t, float64(400000), second.Revenue)
				assert.Equal(t, 2, second.Rank)
				assert.InDelta(t, 40.0, second.PercentOfTotal, 1e-9)

				// Sem venda no período anterior: crescimento nulo
				assert.Nil(t, second.Growth)
			},
		},
		{
			name:  "Limite recorta depois da normalizacao",
			limit: 1,
			setup: func() {
				mockItemRepo.EXPECT().
					GetByDateRange(start, end).
					Return([]*domain.OrderLineItem{
						{OrderID: "ORD001", DishID: "DISH001", DishName: "Pho Bo", Quantity: 3, UnitPrice: 100000},
						{OrderID: "ORD001", DishID: "DISH002", DishName: "Banh Mi", Quantity: 1, UnitPrice: 100000},
					}, nil)

				mockItemRepo.EXPECT().
					GetByDateRange(prevStart, prevEnd).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result []*domain.DishRevenueItem) {
				assert.Len(t, result, 1)
				assert.Equal(t, "DISH001", result[0].ID)

				// O percentual e calculado sobre o conjunto completo
				assert.InDelta(t, 75.0, result[0].PercentOfTotal, 1e-9)
			},
		},
		{
			name:  "Periodo sem vendas retorna lista vazia",
			limit: 0,
			setup: func() {
				mockItemRepo.EXPECT().
					GetByDateRange(start, end).
					Return(nil, nil)

				mockItemRepo.EXPECT().
					GetByDateRange(prevStart, prevEnd).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result []*domain.DishRevenueItem) {
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetDishRevenue(filters, tt.limit)

			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_GetCategoryRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := time.FixedZone("ICT", 7*3600)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 8, 0, 0, 0, 0, loc)

	mockItemRepo := mocks.NewMockOrderItemRepository(ctrl)

	service := &Service{
		orderItemRepo: mockItemRepo,
	}

	filters := &domain.ReportFilters{StartDate: &start, EndDate: &end}

	t.Run("Item multi-categoria contribui com a receita integral para cada categoria", func(t *testing.T) {
		mockItemRepo.EXPECT().
			GetByDateRange(start, end).
			Return([]*domain.OrderLineItem{
				{
					OrderID:       "ORD001",
					DishID:        "DISH001",
					DishName:      "Pho Bo",
					CategoryIDs:   []string{"CAT001", "CAT002"},
					CategoryNames: []string{"Sopas", "Destaques"},
					Quantity:      2,
					UnitPrice:     100000,
				},
				{
					OrderID:       "ORD002",
					DishID:        "DISH002",
					DishName:      "Banh Mi",
					CategoryIDs:   []string{"CAT003"},
					CategoryNames: []string{"Lanches"},
					Quantity:      1,
					UnitPrice:     50000,
				},
			}, nil)

		result, err := service.GetCategoryRevenue(filters)

		assert.NoError(t, err)
		assert.Len(t, result, 3)

		// A receita do prato multi-categoria aparece inteira nas duas
		// categorias: a soma (450000) excede a receita dos pedidos (250000)
		var sum float64
		for _, category := range result {
			sum += category.Revenue
		}
		assert.Equal(t, float64(450000), sum)

		first := result[0]
		assert.Equal(t, float64(200000), first.Revenue)
		assert.Equal(t, 1, first.Rank)
		assert.Equal(t, domain.CategoryColors[0], first.Color)
		assert.Equal(t, 1, first.Dishes)

		// Os percentuais sao normalizados contra a soma das categorias
		var pctSum float64
		for _, category := range result {
			pctSum += category.PercentOfTotal
		}
		assert.InDelta(t, 100.0, pctSum, 1e-9)
	})

	t.Run("Cores seguem a posicao no ranking", func(t *testing.T) {
		mockItemRepo.EXPECT().
			GetByDateRange(start, end).
			Return([]*domain.OrderLineItem{
				{OrderID: "ORD001", DishID: "DISH001", DishName: "A", CategoryIDs: []string{"CAT001"}, CategoryNames: []string{"Sopas"}, Quantity: 3, UnitPrice: 10000},
				{OrderID: "ORD001", DishID: "DISH002", DishName: "B", CategoryIDs: []string{"CAT002"}, CategoryNames: []string{"Lanches"}, Quantity: 2, UnitPrice: 10000},
				{OrderID: "ORD001", DishID: "DISH003", DishName: "C", CategoryIDs: []string{"CAT003"}, CategoryNames: []string{"Bebidas"}, Quantity: 1, UnitPrice: 10000},
			}, nil)

		result, err := service.GetCategoryRevenue(filters)

		assert.NoError(t, err)
		assert.Len(t, result, 3)

		for i, category := range result {
			assert.Equal(t, i+1, category.Rank)
			assert.Equal(t, domain.CategoryColors[i], category.Color)
		}
	})
}

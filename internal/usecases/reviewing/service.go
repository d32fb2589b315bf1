package reviewing

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
)

// Limiares dos rankings de pratos por nota, os mesmos exibidos no dashboard
const (
	topRatedMinAvg      = 4.5
	lowestRatedMaxAvg   = 4.0
	lowestRatedMinCount = 2
)

// Service implementa a interface Reviewer sobre as avaliações de clientes
type Service struct {
	bucketer   *analytics.Bucketer
	reviewRepo repository.ReviewRepository
}

// NewService cria uma nova instância do serviço de avaliações
func NewService(bucketer *analytics.Bucketer, reviewRepo repository.ReviewRepository) Reviewer {
	return &Service{
		bucketer:   bucketer,
		reviewRepo: reviewRepo,
	}
}

// GetReviewStats retorna o resumo de avaliações do período. A nota média é
// nula quando não há avaliações, nunca zero; o crescimento compara com a
// janela imediatamente anterior de mesma duração.
func (s *Service) GetReviewStats(subjectType domain.ReviewSubjectType, filters *domain.ReportFilters) (*domain.ReviewStatsResponse, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	start, end := *filters.StartDate, *filters.EndDate
	prevStart, prevEnd := analytics.PreviousWindow(start, end)

	var (
		current  []*domain.ReviewRecord
		previous []*domain.ReviewRecord
		currErr  error
		prevErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currErr = s.reviewRepo.GetByDateRange(subjectType, start, end)
	}()

	go func() {
		defer wg.Done()
		previous, prevErr = s.reviewRepo.GetByDateRange(subjectType, prevStart, prevEnd)
	}()

	wg.Wait()

	if currErr != nil {
		logrus.Error("Erro ao buscar avaliações do período", map[string]any{
			"subjectType": subjectType,
			"startDate":   start,
			"endDate":     end,
			"error":       currErr,
		})
		return nil, currErr
	}

	if prevErr != nil {
		logrus.Error("Erro ao buscar avaliações do período anterior", map[string]any{
			"subjectType": subjectType,
			"startDate":   prevStart,
			"endDate":     prevEnd,
			"error":       prevErr,
		})
		return nil, prevErr
	}

	stats := &domain.ReviewStatsResponse{
		TotalReviews: len(current),
		Distribution: distribution(current),
	}

	currAvg := averageRating(current)
	prevAvg := averageRating(previous)

	if currAvg != nil {
		rounded := roundRating(*currAvg)
		stats.AvgRating = &rounded
	}

	stats.Growth = domain.ReviewGrowth{
		Reviews: analytics.Growth(float64(len(current)), float64(len(previous))),
	}

	if currAvg != nil && prevAvg != nil {
		stats.Growth.Rating = analytics.Growth(*currAvg, *prevAvg)
	}

	return stats, nil
}

// GetCombinedTrend mescla por bucket as séries de avaliações do restaurante e
// dos pratos. As duas séries saem da mesma enumeração de buckets: um bucket
// presente em só uma delas aparece com a outra zerada, nunca omitido.
func (s *Service) GetCombinedTrend(filters *domain.ReportFilters, groupBy analytics.Granularity) ([]*domain.CombinedTrendPoint, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	start, end := *filters.StartDate, *filters.EndDate

	buckets, err := s.bucketer.Enumerate(start, end, groupBy)
	if err != nil {
		return nil, err
	}

	var (
		restaurant []*domain.ReviewRecord
		menu       []*domain.ReviewRecord
		restErr    error
		menuErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		restaurant, restErr = s.reviewRepo.GetByDateRange(domain.ReviewSubjectRestaurant, start, end)
	}()

	go func() {
		defer wg.Done()
		menu, menuErr = s.reviewRepo.GetByDateRange(domain.ReviewSubjectDish, start, end)
	}()

	wg.Wait()

	if restErr != nil {
		logrus.Error("Erro ao buscar avaliações do restaurante", map[string]any{
			"startDate": start,
			"endDate":   end,
			"error":     restErr,
		})
		return nil, restErr
	}

	if menuErr != nil {
		logrus.Error("Erro ao buscar avaliações de pratos", map[string]any{
			"startDate": start,
			"endDate":   end,
			"error":     menuErr,
		})
		return nil, menuErr
	}

	trend := make([]*domain.CombinedTrendPoint, len(buckets.Buckets))
	restSums := make([]int, len(buckets.Buckets))
	menuSums := make([]int, len(buckets.Buckets))

	for i, bucket := range buckets.Buckets {
		trend[i] = &domain.CombinedTrendPoint{
			Date:  bucket.Start,
			Label: bucket.Label,
		}
	}

	for _, review := range restaurant {
		idx, err := buckets.IndexFor(review.CreatedAt)
		if err != nil {
			return nil, err
		}
		trend[idx].RestaurantCount++
		restSums[idx] += review.Rating
	}

	for _, review := range menu {
		idx, err := buckets.IndexFor(review.CreatedAt)
		if err != nil {
			return nil, err
		}
		trend[idx].MenuCount++
		menuSums[idx] += review.Rating
	}

	for i, point := range trend {
		if point.RestaurantCount > 0 {
			point.RestaurantAvgRating = roundRating(float64(restSums[i]) / float64(point.RestaurantCount))
		}
		if point.MenuCount > 0 {
			point.MenuAvgRating = roundRating(float64(menuSums[i]) / float64(point.MenuCount))
		}
	}

	return trend, nil
}

// GetReviewsDetail retorna uma página de avaliações, da mais recente para a
// mais antiga. Páginas além da última retornam a lista vazia com o total
// correto, nunca erro.
func (s *Service) GetReviewsDetail(subjectType domain.ReviewSubjectType, filters *domain.ReportFilters, page, limit int) (*domain.ReviewDetailResponse, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	reviews, err := s.reviewRepo.GetDetailByDateRange(subjectType, *filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.Error("Erro ao buscar detalhe de avaliações do período", map[string]any{
			"subjectType": subjectType,
			"startDate":   filters.StartDate,
			"endDate":     filters.EndDate,
			"error":       err,
		})
		return nil, err
	}

	items, info, err := analytics.Paginate(reviews, page, limit)
	if err != nil {
		return nil, err
	}

	return &domain.ReviewDetailResponse{
		Reviews: items,
		Pagination: domain.Pagination{
			Page:       info.Page,
			Limit:      info.Limit,
			Total:      info.Total,
			TotalPages: info.TotalPages,
		},
	}, nil
}

// GetTopRatedDishes retorna os pratos com nota média maior ou igual a 4.5 no
// período, da melhor média para a pior
func (s *Service) GetTopRatedDishes(filters *domain.ReportFilters, limit int) ([]*domain.RatedDishItem, error) {
	dishes, err := s.aggregateDishRatings(filters)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.RatedDishItem, 0, len(dishes))
	for _, dish := range dishes {
		if dish.AvgRating >= topRatedMinAvg {
			filtered = append(filtered, dish)
		}
	}

	sortRatedDishes(filtered, true)

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return filtered, nil
}

// GetLowestRatedDishes retorna os pratos com nota média abaixo de 4.0 e pelo
// menos duas avaliações no período, da pior média para a melhor. A exigência
// de duas avaliações evita destacar um prato por uma única nota ruim.
func (s *Service) GetLowestRatedDishes(filters *domain.ReportFilters, limit int) ([]*domain.RatedDishItem, error) {
	dishes, err := s.aggregateDishRatings(filters)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.RatedDishItem, 0, len(dishes))
	for _, dish := range dishes {
		if dish.AvgRating < lowestRatedMaxAvg && dish.ReviewCount >= lowestRatedMinCount {
			filtered = append(filtered, dish)
		}
	}

	sortRatedDishes(filtered, false)

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return filtered, nil
}

// GetRecentReviews retorna as últimas avaliações do tipo informado
func (s *Service) GetRecentReviews(subjectType domain.ReviewSubjectType, limit int) ([]*domain.ReviewDetail, error) {
	reviews, err := s.reviewRepo.ListRecent(subjectType, limit)
	if err != nil {
		logrus.Error("Erro ao buscar avaliações recentes", map[string]any{
			"subjectType": subjectType,
			"limit":       limit,
			"error":       err,
		})
		return nil, err
	}

	return reviews, nil
}

// aggregateDishRatings agrupa as avaliações de pratos do período por prato,
// com média já arredondada para uma casa decimal
func (s *Service) aggregateDishRatings(filters *domain.ReportFilters) ([]*domain.RatedDishItem, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	ratings, err := s.reviewRepo.GetDishRatings(*filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.Error("Erro ao buscar notas por prato do período", map[string]any{
			"startDate": filters.StartDate,
			"endDate":   filters.EndDate,
			"error":     err,
		})
		return nil, err
	}

	byDish := make(map[string]*domain.RatedDishItem)
	sums := make(map[string]int)

	for _, row := range ratings {
		dish, ok := byDish[row.DishID]
		if !ok {
			dish = &domain.RatedDishItem{
				ID:       row.DishID,
				Name:     row.DishName,
				Category: row.CategoryName,
				Price:    row.Price,
			}
			byDish[row.DishID] = dish
		}

		dish.ReviewCount++
		sums[row.DishID] += row.Rating
		if row.Rating == 5 {
			dish.FiveStarCount++
		}
	}

	dishes := make([]*domain.RatedDishItem, 0, len(byDish))
	for id, dish := range byDish {
		dish.AvgRating = roundRating(float64(sums[id]) / float64(dish.ReviewCount))
		dishes = append(dishes, dish)
	}

	return dishes, nil
}

// sortRatedDishes ordena por média (decrescente quando best, crescente quando
// não), desempatando por quantidade de avaliações e por nome
func sortRatedDishes(dishes []*domain.RatedDishItem, best bool) {
	sort.SliceStable(dishes, func(i, j int) bool {
		if dishes[i].AvgRating != dishes[j].AvgRating {
			if best {
				return dishes[i].AvgRating > dishes[j].AvgRating
			}
			return dishes[i].AvgRating < dishes[j].AvgRating
		}

		if dishes[i].ReviewCount != dishes[j].ReviewCount {
			return dishes[i].ReviewCount > dishes[j].ReviewCount
		}

		return strings.ToLower(dishes[i].Name) < strings.ToLower(dishes[j].Name)
	})
}

func distribution(reviews []*domain.ReviewRecord) domain.RatingDistribution {
	var dist domain.RatingDistribution

	for _, review := range reviews {
		switch review.Rating {
		case 5:
			dist.FiveStar++
		case 4:
			dist.FourStar++
		case 3:
			dist.ThreeStar++
		case 2:
			dist.TwoStar++
		case 1:
			dist.OneStar++
		}
	}

	return dist
}

// averageRating retorna nil quando não há avaliações: "sem dados" é diferente
// de nota zero
func averageRating(reviews []*domain.ReviewRecord) *float64 {
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	avg := float64(sum) / float64(len(reviews))
	return &avg
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

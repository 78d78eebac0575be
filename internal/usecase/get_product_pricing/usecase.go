package get_product_pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	productClient "github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
)

// UseCase сборка снимка ценообразования продукта: реестр бандов и все
// строки календаря одним согласованным чтением
type UseCase struct {
	bandRepo      BandRepository
	calendarRepo  CalendarRepository
	productClient ProductServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bandRepo BandRepository,
	calendarRepo CalendarRepository,
	productClient ProductServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bandRepo:      bandRepo,
		calendarRepo:  calendarRepo,
		productClient: productClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute возвращает снимок ценообразования продукта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetProductPricing: product=%d", req.ProductID)

	product, err := uc.productClient.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productClient.ErrProductNotFound) {
			uc.logger.Warn("GetProductPricing: product=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("GetProductPricing: product catalog error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: product catalog error: %v", ErrInternal, err)
	}

	var (
		bands     []*domain.GlobalBand
		calendars []*domain.MonthlyPriceCalendar
	)

	// Банды и календари читаются в одной транзакции, чтобы пометки
	// неразрешённых ячеек считались по тому же словарю, что и выдаваемый
	// список бандов
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		if bands, err = uc.bandRepo.ListByProduct(ctx, req.ProductID); err != nil {
			return fmt.Errorf("%w: list bands: %v", ErrInternal, err)
		}
		if calendars, err = uc.calendarRepo.ListByProduct(ctx, req.ProductID); err != nil {
			return fmt.Errorf("%w: list calendars: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GetProductPricing: failed for product=%d: %v", req.ProductID, err)
		return nil, err
	}

	resp := buildResponse(product.ID, product.Name, product.Provider, bands, calendars)

	uc.logger.Info("GetProductPricing: product=%d, %d bands, %d calendars",
		req.ProductID, len(resp.Bands), len(resp.Calendars))
	return resp, nil
}

func buildResponse(
	productID int64,
	productName, provider string,
	bands []*domain.GlobalBand,
	calendars []*domain.MonthlyPriceCalendar,
) *Response {
	vocabulary := make(map[domain.BandName]struct{}, len(bands))
	respBands := make([]*Band, 0, len(bands))
	for _, band := range bands {
		vocabulary[band.Name] = struct{}{}

		prices := make([]float64, domain.MaxStayDays)
		copy(prices, band.DayPrices[:])
		respBands = append(respBands, &Band{
			ID:             band.ID,
			Name:           string(band.Name),
			IncrementValue: band.IncrementValue,
			DayPrices:      prices,
		})
	}

	respCalendars := make([]*Calendar, 0, len(calendars))
	for _, cal := range calendars {
		days := make([]string, domain.CalendarDays)
		copy(days, cal.Days[:])

		respCalendars = append(respCalendars, &Calendar{
			ID:             cal.ID,
			Year:           cal.Year,
			Month:          string(cal.Month),
			Days:           days,
			UnresolvedDays: unresolvedDays(cal, vocabulary),
		})
	}

	return &Response{
		ProductID:   productID,
		ProductName: productName,
		Provider:    provider,
		Bands:       respBands,
		Calendars:   respCalendars,
	}
}

// unresolvedDays возвращает дни, ссылающиеся на несуществующий банд
func unresolvedDays(cal *domain.MonthlyPriceCalendar, vocabulary map[domain.BandName]struct{}) []int {
	unresolved := make([]int, 0)
	for i := 0; i < cal.ActiveDays(); i++ {
		if cal.Days[i] == domain.EmptyCell {
			continue
		}
		if _, ok := vocabulary[domain.BandName(cal.Days[i])]; !ok {
			unresolved = append(unresolved, i+1)
		}
	}
	return unresolved
}

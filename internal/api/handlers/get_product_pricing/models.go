package get_product_pricing

import getProductPricing "github.com/m04kA/SMC-PricingService/internal/usecase/get_product_pricing"

// BandResponse банд в HTTP ответе
type BandResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	IncrementValue float64   `json:"incrementValue"`
	DayPrices      []float64 `json:"dayPrices"`
}

// CalendarResponse строка календаря в HTTP ответе
type CalendarResponse struct {
	ID             int64    `json:"id"`
	Year           int      `json:"year"`
	Month          string   `json:"month"`
	Days           []string `json:"days"`
	UnresolvedDays []int    `json:"unresolvedDays"`
}

// PricingResponse снимок ценообразования продукта
type PricingResponse struct {
	ProductID   int64               `json:"productId"`
	ProductName string              `json:"productName"`
	Provider    string              `json:"provider"`
	Bands       []*BandResponse     `json:"bands"`
	Calendars   []*CalendarResponse `json:"calendars"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getProductPricing.Response) *PricingResponse {
	bands := make([]*BandResponse, 0, len(resp.Bands))
	for _, band := range resp.Bands {
		bands = append(bands, &BandResponse{
			ID:             band.ID,
			Name:           band.Name,
			IncrementValue: band.IncrementValue,
			DayPrices:      band.DayPrices,
		})
	}

	calendars := make([]*CalendarResponse, 0, len(resp.Calendars))
	for _, cal := range resp.Calendars {
		calendars = append(calendars, &CalendarResponse{
			ID:             cal.ID,
			Year:           cal.Year,
			Month:          cal.Month,
			Days:           cal.Days,
			UnresolvedDays: cal.UnresolvedDays,
		})
	}

	return &PricingResponse{
		ProductID:   resp.ProductID,
		ProductName: resp.ProductName,
		Provider:    resp.Provider,
		Bands:       bands,
		Calendars:   calendars,
	}
}

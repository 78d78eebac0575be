package create_band

import "github.com/m04kA/SMC-PricingService/internal/service/bands/models"

// CreateBandRequest HTTP request model.
// Имя банда не передается - следующую свободную букву назначает реестр
type CreateBandRequest struct {
	IncrementValue float64   `json:"incrementValue"`
	DayPrices      []float64 `json:"dayPrices"` // day_1..day_30
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBandRequest) ToServiceRequest(productID int64) *models.CreateBandRequest {
	return &models.CreateBandRequest{
		ProductID:      productID,
		IncrementValue: r.IncrementValue,
		DayPrices:      r.DayPrices,
	}
}

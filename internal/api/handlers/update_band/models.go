package update_band

import "github.com/m04kA/SMC-PricingService/internal/service/bands/models"

// UpdateBandRequest HTTP request model.
// DayPrices - 30 явных цен либо 31 (форма редактирования отдает и первую
// экстраполированную ячейку); снимок хвоста в любом случае пересчитывается
type UpdateBandRequest struct {
	BandName       string    `json:"bandName"`
	IncrementValue float64   `json:"incrementValue"`
	DayPrices      []float64 `json:"dayPrices"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBandRequest) ToServiceRequest(bandID int64) *models.UpdateBandRequest {
	return &models.UpdateBandRequest{
		ID:             bandID,
		BandName:       r.BandName,
		IncrementValue: r.IncrementValue,
		DayPrices:      r.DayPrices,
	}
}

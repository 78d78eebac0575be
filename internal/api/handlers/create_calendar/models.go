package create_calendar

import "github.com/m04kA/SMC-PricingService/internal/service/calendars/models"

// CreateCalendarRequest HTTP request model
type CreateCalendarRequest struct {
	Year  int    `json:"year"`
	Month string `json:"month"` // каноническое английское название, "March"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCalendarRequest) ToServiceRequest(productID int64) *models.CreateCalendarRequest {
	return &models.CreateCalendarRequest{
		ProductID: productID,
		Year:      r.Year,
		Month:     r.Month,
	}
}

package apply_band

import (
	"time"

	applyBand "github.com/m04kA/SMC-PricingService/internal/usecase/apply_band"
)

// ApplyBandRequest HTTP request model. Ровно один режим на запрос:
//   - mode=bulk: bandName - буква банда на весь месяц;
//   - mode=cell: dayIndex (1..31) и value - ручной ввод в одну ячейку;
//   - mode=row:  days - полная замена всех 31 ячейки
type ApplyBandRequest struct {
	Mode     string   `json:"mode"`
	BandName string   `json:"bandName,omitempty"`
	DayIndex int      `json:"dayIndex,omitempty"`
	Value    string   `json:"value,omitempty"`
	Days     []string `json:"days,omitempty"`
}

// CalendarResponse HTTP response model: итоговая строка после записи
type CalendarResponse struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"productId"`
	Year      int      `json:"year"`
	Month     string   `json:"month"`
	Days      []string `json:"days"`
	UpdatedAt string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyBandRequest) ToUseCaseRequest(calendarID int64) *applyBand.Request {
	return &applyBand.Request{
		CalendarID: calendarID,
		Mode:       applyBand.Mode(r.Mode),
		BandName:   r.BandName,
		DayIndex:   r.DayIndex,
		Value:      r.Value,
		Days:       r.Days,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyBand.Response) *CalendarResponse {
	return &CalendarResponse{
		ID:        resp.ID,
		ProductID: resp.ProductID,
		Year:      resp.Year,
		Month:     resp.Month,
		Days:      resp.Days,
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

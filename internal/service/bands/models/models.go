package models

import (
	"time"

	"github.com/m04kA/SMC-PricingService/internal/domain"
)

// Request модели

// CreateBandRequest запрос на создание банда.
// Имя не передается: следующая свободная буква выводится сервисом
// из фактического списка бандов продукта
type CreateBandRequest struct {
	ProductID      int64     `json:"productId"`
	IncrementValue float64   `json:"incrementValue"`
	DayPrices      []float64 `json:"dayPrices"` // ровно 30 цен, day_1..day_30
}

// UpdateBandRequest запрос на полную перезапись банда.
// DayPrices может содержать 30 или 31 значение: исходная форма редактирования
// отдавала первую экстраполированную ячейку (day_31) вместе с явными.
// Снимок day_31..day_60 в любом случае пересчитывается от day_30 и инкремента
type UpdateBandRequest struct {
	ID             int64     `json:"id"`
	BandName       string    `json:"bandName"`
	IncrementValue float64   `json:"incrementValue"`
	DayPrices      []float64 `json:"dayPrices"`
}

// Response модели

// BandResponse банд в ответе сервиса
type BandResponse struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"productId"`
	BandName       string    `json:"bandName"`
	IncrementValue float64   `json:"incrementValue"`
	DayPrices      []float64 `json:"dayPrices"` // 60 цен: 30 явных + 30 экстраполированных
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

// BandListResponse список бандов продукта
type BandListResponse struct {
	Bands []*BandResponse `json:"bands"`
	Total int             `json:"total"`
}

// NextBandNameResponse следующая свободная буква банда
type NextBandNameResponse struct {
	BandName string `json:"bandName"`
}

// FromDomainBand конвертирует domain банд в response модель
func FromDomainBand(band *domain.GlobalBand) *BandResponse {
	prices := make([]float64, domain.MaxStayDays)
	copy(prices, band.DayPrices[:])

	return &BandResponse{
		ID:             band.ID,
		ProductID:      band.ProductID,
		BandName:       string(band.Name),
		IncrementValue: band.IncrementValue,
		DayPrices:      prices,
		CreatedAt:      band.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      band.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBandList конвертирует список domain бандов в response модель
func FromDomainBandList(bands []*domain.GlobalBand) *BandListResponse {
	result := make([]*BandResponse, 0, len(bands))
	for _, band := range bands {
		result = append(result, FromDomainBand(band))
	}
	return &BandListResponse{
		Bands: result,
		Total: len(result),
	}
}

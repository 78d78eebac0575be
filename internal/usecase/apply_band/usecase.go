package apply_band

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-PricingService/internal/infra/storage/calendar"
)

// UseCase аппликатор бандов: валидированная запись ячеек одной строки
// календаря в режимах bulk, cell и row
type UseCase struct {
	calendarRepo CalendarRepository
	bandRepo     BandRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр аппликатора
func NewUseCase(
	calendarRepo CalendarRepository,
	bandRepo BandRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarRepo: calendarRepo,
		bandRepo:     bandRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute применяет запрошенное изменение к строке календаря.
// Валидация значений против живого словаря бандов и запись выполняются
// в одной сериализуемой транзакции, чтобы проверка и запись видели один
// снимок данных. Отклонённое значение не доходит до записи - строка
// остаётся нетронутой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyBand: calendar=%d, mode=%s", req.CalendarID, req.Mode)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyBand: validation failed for calendar=%d: %v", req.CalendarID, err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		cal, err := uc.calendarRepo.GetByID(ctx, req.CalendarID)
		if err != nil {
			if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
				return ErrCalendarNotFound
			}
			return fmt.Errorf("%w: load calendar: %v", ErrInternal, err)
		}

		vocabulary, err := uc.loadBandVocabulary(ctx, cal.ProductID)
		if err != nil {
			return err
		}

		days, err := nextDays(cal, req, vocabulary)
		if err != nil {
			return err
		}

		if err := uc.calendarRepo.UpdateDays(ctx, cal.ID, days); err != nil {
			return fmt.Errorf("%w: update days: %v", ErrInternal, err)
		}

		cal.Days = days
		result = fromDomainCalendar(cal)
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrCalendarNotFound),
			errors.Is(err, ErrInvalidBandReference),
			errors.Is(err, ErrInvalidDayIndex):
			uc.logger.Warn("ApplyBand: rejected for calendar=%d: %v", req.CalendarID, err)
		default:
			uc.logger.Error("ApplyBand: failed for calendar=%d: %v", req.CalendarID, err)
		}
		return nil, err
	}

	uc.logger.Info("ApplyBand: calendar=%d updated (mode=%s)", req.CalendarID, req.Mode)
	return result, nil
}

// loadBandVocabulary загружает словарь живых букв бандов продукта
func (uc *UseCase) loadBandVocabulary(ctx context.Context, productID int64) (map[domain.BandName]struct{}, error) {
	bands, err := uc.bandRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: load bands: %v", ErrInternal, err)
	}

	vocabulary := make(map[domain.BandName]struct{}, len(bands))
	for _, band := range bands {
		vocabulary[band.Name] = struct{}{}
	}
	return vocabulary, nil
}

// nextDays вычисляет новое состояние строки для запрошенного режима
func nextDays(cal *domain.MonthlyPriceCalendar, req *Request, vocabulary map[domain.BandName]struct{}) (domain.DayCells, error) {
	switch req.Mode {
	case ModeBulk:
		return bulkFill(cal, req.BandName, vocabulary)
	case ModeCell:
		return cellEdit(cal, req.DayIndex, req.Value, vocabulary)
	case ModeRow:
		return rowReplace(cal, req.Days, vocabulary)
	default:
		return domain.DayCells{}, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}
}

// bulkFill записывает букву банда во все дни месяца (1..N, где N - число
// дней месяца с учётом года). Ячейки за пределами месяца не трогаются
func bulkFill(cal *domain.MonthlyPriceCalendar, value string, vocabulary map[domain.BandName]struct{}) (domain.DayCells, error) {
	name, err := resolveBandValue(value, vocabulary)
	if err != nil {
		return domain.DayCells{}, err
	}

	days := cal.Days
	for i := 0; i < cal.ActiveDays(); i++ {
		days[i] = string(name)
	}
	return days, nil
}

// cellEdit записывает букву в одну ячейку.
//
// FirstDayCascade: редактирование первой ячейки (день 1) намеренно
// эквивалентно массовому выбору банда - принятая буква переносится во все
// дни месяца, затирая покомпонентную настройку. Любая другая ячейка
// изменяется строго в одиночку. Правило перенесено из исходной системы
// как явное, а не как побочный эффект
func cellEdit(cal *domain.MonthlyPriceCalendar, dayIndex int, value string, vocabulary map[domain.BandName]struct{}) (domain.DayCells, error) {
	if dayIndex < domain.FirstDayIndex || dayIndex > cal.ActiveDays() {
		return domain.DayCells{}, fmt.Errorf("%w: day %d, month has %d days", ErrInvalidDayIndex, dayIndex, cal.ActiveDays())
	}

	name, err := resolveBandValue(value, vocabulary)
	if err != nil {
		return domain.DayCells{}, err
	}

	if dayIndex == domain.FirstDayIndex {
		return bulkFill(cal, string(name), vocabulary)
	}

	days := cal.Days
	days[dayIndex-1] = string(name)
	return days, nil
}

// rowReplace полностью заменяет строку: все 31 ячейка за один вызов.
// Каждая заполненная ячейка проверяется по словарю до записи
func rowReplace(cal *domain.MonthlyPriceCalendar, values []string, vocabulary map[domain.BandName]struct{}) (domain.DayCells, error) {
	days := domain.NormalizeDayCells(values)

	for i := range days {
		if days[i] == domain.EmptyCell {
			continue
		}
		name, err := resolveBandValue(days[i], vocabulary)
		if err != nil {
			return domain.DayCells{}, fmt.Errorf("day %d: %w", i+1, ErrInvalidBandReference)
		}
		days[i] = string(name)
	}
	return days, nil
}

// resolveBandValue приводит введённое значение к верхнему регистру и
// проверяет его по словарю живых бандов
func resolveBandValue(value string, vocabulary map[domain.BandName]struct{}) (domain.BandName, error) {
	name := domain.BandName(strings.ToUpper(strings.TrimSpace(value)))
	if !name.Valid() {
		return "", fmt.Errorf("%w: %q is not a band letter", ErrInvalidBandReference, value)
	}
	if _, ok := vocabulary[name]; !ok {
		return "", fmt.Errorf("%w: no band %q for this product", ErrInvalidBandReference, name)
	}
	return name, nil
}

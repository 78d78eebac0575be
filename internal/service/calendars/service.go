package calendars

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-PricingService/internal/infra/storage/calendar"
	productClient "github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
	"github.com/m04kA/SMC-PricingService/internal/service/calendars/models"
)

// Service хранилище ценовых календарей: выдача нормализованных строк,
// создание по политике доступных месяцев, жёсткое удаление
type Service struct {
	calendarRepo  CalendarRepository
	productClient ProductServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса календарей
func NewService(
	calendarRepo CalendarRepository,
	productClient ProductServiceClient,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo:  calendarRepo,
		productClient: productClient,
		timeProvider:  RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник времени; используется в тестах
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List получает все строки календаря продукта.
// Каждая строка нормализована ровно до 31 ячейки
func (s *Service) List(ctx context.Context, productID int64) (*models.CalendarListResponse, error) {
	s.logger.Info("List: fetching calendars for product=%d", productID)

	calendars, err := s.calendarRepo.ListByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("List: repository error for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d calendars for product=%d", len(calendars), productID)
	return models.FromDomainCalendarList(calendars), nil
}

// AllowedMonths возвращает месяцы, в которых для запрошенного года
// разрешено создавать календарь (прошедшие месяцы текущего года исключены)
func (s *Service) AllowedMonths(year int) *models.AllowedMonthsResponse {
	months := domain.AllowedMonths(s.timeProvider.Now(), year)
	return models.FromDomainMonths(year, months)
}

// Create создает строку календаря с пустыми ячейками.
// Последовательность проверок:
//  1. продукт существует в каталоге;
//  2. месяц входит в политику доступных месяцев для года;
//  3. быстрая проверка дубликата по загруженному списку;
//  4. вставка - уникальный индекс хранилища закрывает гонку двух операторов,
//     проскочивших быструю проверку одновременно
func (s *Service) Create(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error) {
	s.logger.Info("Create: creating calendar for product=%d, year=%d, month=%s", req.ProductID, req.Year, req.Month)

	if req.ProductID <= 0 {
		return nil, fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	month, err := domain.ParseMonth(req.Month)
	if err != nil {
		s.logger.Warn("Create: unknown month %q for product=%d", req.Month, req.ProductID)
		return nil, fmt.Errorf("%w: unknown month %q", ErrInvalidInput, req.Month)
	}

	if _, err := s.productClient.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, productClient.ErrProductNotFound) {
			s.logger.Warn("Create: product=%d not found in catalog", req.ProductID)
			return nil, ErrProductNotFound
		}
		s.logger.Error("Create: product catalog error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: Create - product catalog error: %v", ErrInternal, err)
	}

	if !domain.MonthAllowed(s.timeProvider.Now(), req.Year, month) {
		s.logger.Warn("Create: month %s not allowed for year %d (product=%d)", month, req.Year, req.ProductID)
		return nil, ErrMonthNotAllowed
	}

	// Быстрый путь: дубликат по последнему загруженному списку
	existing, err := s.calendarRepo.ListByProduct(ctx, req.ProductID)
	if err != nil {
		s.logger.Error("Create: repository error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	for _, cal := range existing {
		if cal.Year == req.Year && cal.Month == month {
			s.logger.Warn("Create: duplicate calendar for product=%d, year=%d, month=%s", req.ProductID, req.Year, month)
			return nil, ErrDuplicateCalendar
		}
	}

	created, err := s.calendarRepo.Create(ctx, &domain.MonthlyPriceCalendar{
		ProductID: req.ProductID,
		Year:      req.Year,
		Month:     month,
	})
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDuplicateCalendar) {
			s.logger.Warn("Create: unique index rejected duplicate for product=%d, year=%d, month=%s",
				req.ProductID, req.Year, month)
			return nil, ErrDuplicateCalendar
		}
		s.logger.Error("Create: failed to persist calendar for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: calendar id=%d created for product=%d (%s %d)", created.ID, req.ProductID, month, req.Year)
	return models.FromDomainCalendar(created), nil
}

// Delete жёстко и безвозвратно удаляет строку календаря
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting calendar id=%d", id)

	if err := s.calendarRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("Delete: calendar id=%d not found", id)
			return ErrCalendarNotFound
		}
		s.logger.Error("Delete: repository error for calendar id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: calendar id=%d deleted", id)
	return nil
}

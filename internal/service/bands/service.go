package bands

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	bandRepo "github.com/m04kA/SMC-PricingService/internal/infra/storage/band"
	productClient "github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
	"github.com/m04kA/SMC-PricingService/internal/service/bands/models"
)

// Service реестр тарифных бандов: выдача следующей буквы, создание
// со снимком экстраполяции, полная перезапись, жёсткое удаление
type Service struct {
	bandRepo      BandRepository
	productClient ProductServiceClient
	logger        Logger
}

// NewService создает новый экземпляр реестра бандов
func NewService(
	bandRepo BandRepository,
	productClient ProductServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bandRepo:      bandRepo,
		productClient: productClient,
		logger:        logger,
	}
}

// List получает все банды продукта в порядке создания
func (s *Service) List(ctx context.Context, productID int64) (*models.BandListResponse, error) {
	s.logger.Info("List: fetching bands for product=%d", productID)

	bands, err := s.bandRepo.ListByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("List: repository error for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bands for product=%d", len(bands), productID)
	return models.FromDomainBandList(bands), nil
}

// NextName возвращает следующую свободную букву для продукта.
// Буква всегда выводится из живого списка бандов, а не из счётчика
func (s *Service) NextName(ctx context.Context, productID int64) (*models.NextBandNameResponse, error) {
	bands, err := s.bandRepo.ListByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("NextName: repository error for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: NextName - repository error: %v", ErrInternal, err)
	}

	name, err := nextNameFromBands(bands)
	if err != nil {
		s.logger.Warn("NextName: product=%d has exhausted band letters", productID)
		return nil, err
	}

	return &models.NextBandNameResponse{BandName: string(name)}, nil
}

// Create создает банд: проверяет продукт в каталоге, назначает следующую
// букву, вычисляет снимок day_31..day_60 и сохраняет строку.
// При исчерпании букв (за "Z") обращения к хранилищу не происходит
func (s *Service) Create(ctx context.Context, req *models.CreateBandRequest) (*models.BandResponse, error) {
	s.logger.Info("Create: creating band for product=%d, increment=%v", req.ProductID, req.IncrementValue)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for product=%d: %v", req.ProductID, err)
		return nil, err
	}

	if _, err := s.productClient.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, productClient.ErrProductNotFound) {
			s.logger.Warn("Create: product=%d not found in catalog", req.ProductID)
			return nil, ErrProductNotFound
		}
		s.logger.Error("Create: product catalog error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: Create - product catalog error: %v", ErrInternal, err)
	}

	existing, err := s.bandRepo.ListByProduct(ctx, req.ProductID)
	if err != nil {
		s.logger.Error("Create: repository error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	name, err := nextNameFromBands(existing)
	if err != nil {
		s.logger.Warn("Create: product=%d has exhausted band letters, aborting before persistence", req.ProductID)
		return nil, err
	}

	band := &domain.GlobalBand{
		ProductID:      req.ProductID,
		Name:           name,
		IncrementValue: req.IncrementValue,
	}
	copy(band.DayPrices[:domain.ExplicitStayDays], req.DayPrices)
	band.ExtrapolateTail()

	created, err := s.bandRepo.Create(ctx, band)
	if err != nil {
		s.logger.Error("Create: failed to persist band %s for product=%d: %v", name, req.ProductID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: band id=%d name=%s created for product=%d", created.ID, created.Name, created.ProductID)
	return models.FromDomainBand(created), nil
}

// Update полностью перезаписывает банд. Календари, ссылающиеся на старое
// имя, не затрагиваются, даже если имя изменилось: ссылка слабая, по букве
func (s *Service) Update(ctx context.Context, req *models.UpdateBandRequest) (*models.BandResponse, error) {
	s.logger.Info("Update: updating band id=%d, name=%s", req.ID, req.BandName)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for band id=%d: %v", req.ID, err)
		return nil, err
	}

	band, err := s.bandRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, bandRepo.ErrBandNotFound) {
			s.logger.Warn("Update: band id=%d not found", req.ID)
			return nil, ErrBandNotFound
		}
		s.logger.Error("Update: repository error for band id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	band.Name = domain.BandName(req.BandName)
	band.IncrementValue = req.IncrementValue
	copy(band.DayPrices[:domain.ExplicitStayDays], req.DayPrices)
	// Снимок хвоста пересчитывается целиком, включая day_31: присланное
	// формой значение day_31 не может разойтись с формулой
	band.ExtrapolateTail()

	if err := s.bandRepo.Update(ctx, band); err != nil {
		if errors.Is(err, bandRepo.ErrBandNotFound) {
			return nil, ErrBandNotFound
		}
		s.logger.Error("Update: failed to persist band id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: band id=%d updated", req.ID)
	return models.FromDomainBand(band), nil
}

// Delete жёстко удаляет банд. Каскада в календари нет: ячейки, ссылающиеся
// на удалённую букву, помечаются неразрешёнными при выдаче снимка
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting band id=%d", id)

	if err := s.bandRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bandRepo.ErrBandNotFound) {
			s.logger.Warn("Delete: band id=%d not found", id)
			return ErrBandNotFound
		}
		s.logger.Error("Delete: repository error for band id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: band id=%d deleted", id)
	return nil
}

// nextNameFromBands выводит следующую букву из списка бандов
func nextNameFromBands(bands []*domain.GlobalBand) (domain.BandName, error) {
	names := make([]domain.BandName, 0, len(bands))
	for _, band := range bands {
		names = append(names, band.Name)
	}

	name, err := domain.NextBandName(names)
	if err != nil {
		if errors.Is(err, domain.ErrBandNameExhausted) {
			return "", ErrBandLimitExceeded
		}
		return "", fmt.Errorf("%w: next band name: %v", ErrInternal, err)
	}
	return name, nil
}

func validateCreateRequest(req *models.CreateBandRequest) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}
	if len(req.DayPrices) != domain.ExplicitStayDays {
		return fmt.Errorf("%w: expected %d day prices, got %d", ErrInvalidInput, domain.ExplicitStayDays, len(req.DayPrices))
	}
	return validatePrices(req.DayPrices, req.IncrementValue)
}

func validateUpdateRequest(req *models.UpdateBandRequest) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: band ID must be positive", ErrInvalidInput)
	}
	if !domain.BandName(req.BandName).Valid() {
		return fmt.Errorf("%w: band name must be a single letter A-Z", ErrInvalidInput)
	}
	// Форма редактирования может прислать и первую экстраполированную ячейку
	if len(req.DayPrices) != domain.ExplicitStayDays && len(req.DayPrices) != domain.ExplicitStayDays+1 {
		return fmt.Errorf("%w: expected %d or %d day prices, got %d",
			ErrInvalidInput, domain.ExplicitStayDays, domain.ExplicitStayDays+1, len(req.DayPrices))
	}
	return validatePrices(req.DayPrices, req.IncrementValue)
}

func validatePrices(prices []float64, increment float64) error {
	if increment < domain.MinIncrementValue || increment > domain.MaxIncrementValue {
		return fmt.Errorf("%w: increment value out of range", ErrInvalidInput)
	}
	for i, price := range prices {
		if price < domain.MinPrice || price > domain.MaxPrice {
			return fmt.Errorf("%w: day %d price out of range", ErrInvalidInput, i+1)
		}
	}
	return nil
}

package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/address-navigator/internal/domain"
	"github.com/address-navigator/internal/domain/repository"
	"github.com/address-navigator/internal/pkg/utils"
	"github.com/address-navigator/internal/usecase/dto"
)

// publishTimeout ограничивает публикацию события, чтобы не задерживать ответ
const publishTimeout = 2 * time.Second

// AddressUseCase - use case для поиска адресов по почтовому индексу
type AddressUseCase struct {
	lookupRepo repository.AddressLookupRepository
	streamRepo repository.StreamRepository
	stream     string
	logger     *zap.Logger
}

// NewAddressUseCase - создание нового AddressUseCase.
// streamRepo может быть nil: тогда события поиска не публикуются.
func NewAddressUseCase(
	lookupRepo repository.AddressLookupRepository,
	streamRepo repository.StreamRepository,
	stream string,
	logger *zap.Logger,
) *AddressUseCase {
	if stream == "" {
		stream = domain.StreamAddressLookup
	}
	return &AddressUseCase{
		lookupRepo: lookupRepo,
		streamRepo: streamRepo,
		stream:     stream,
		logger:     logger,
	}
}

// Search ищет адреса по индексу.
// nil означает "ничего не найдено": и сбой API, и пустой ответ сводятся к нему.
func (uc *AddressUseCase) Search(ctx context.Context, req dto.AddressSearchRequest) []dto.ResponseAddress {
	resp := uc.lookupRepo.SearchZipcode(ctx, req.Zipcode)
	addresses := dto.ConvertAddresses(resp)

	uc.logger.Debug("Address search completed",
		zap.String("zipcode", req.Zipcode),
		zap.Int("results", len(addresses)))

	uc.publishLookup(ctx, req.Zipcode, len(addresses))

	return addresses
}

func (uc *AddressUseCase) publishLookup(ctx context.Context, zipcode string, resultCount int) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.NewLookupEvent(utils.RequestIDFromContext(ctx), zipcode, resultCount)

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := uc.streamRepo.PublishToStream(pubCtx, uc.stream, event); err != nil {
		uc.logger.Warn("Failed to publish lookup event",
			zap.String("stream", uc.stream),
			zap.String("event_id", event.EventID.String()),
			zap.Error(err))
	}
}

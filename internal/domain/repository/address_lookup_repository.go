package repository

import (
	"context"

	"github.com/address-navigator/internal/domain"
)

// AddressLookupRepository определяет методы для работы с API поиска адресов
type AddressLookupRepository interface {
	// SearchZipcode ищет адреса по почтовому индексу.
	// nil означает отсутствие результата: любая ошибка вызова логируется
	// внутри реализации и наружу не пробрасывается.
	SearchZipcode(ctx context.Context, zipcode string) *domain.ZipcodeSearchResponse
}

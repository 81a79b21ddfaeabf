package dto

import "github.com/address-navigator/internal/domain"

// ResponseAddress - адрес в виде, удобном для отображения
type ResponseAddress struct {
	Zipcode    string `json:"zipcode"`
	Address    string `json:"address"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
}

// ConvertAddresses разворачивает ответ API в плоский список адресов,
// по одному на Feature в исходном порядке.
// Возвращает nil, если ответа нет или в нём нет ни одного Feature.
func ConvertAddresses(resp *domain.ZipcodeSearchResponse) []ResponseAddress {
	if resp == nil || resp.Body == nil || len(resp.Body.Features) == 0 {
		return nil
	}

	addresses := make([]ResponseAddress, 0, len(resp.Body.Features))
	for _, feature := range resp.Body.Features {
		addresses = append(addresses, ConvertAddress(feature))
	}

	return addresses
}

// ConvertAddress - один Feature в ResponseAddress.
// При повторе уровня побеждает последний элемент, прочие уровни пропускаются.
func ConvertAddress(feature domain.Feature) ResponseAddress {
	address := ResponseAddress{
		Zipcode: feature.Name,
		Address: feature.Property.Address,
	}

	for _, element := range feature.Property.AddressElements {
		switch element.Level {
		case domain.LevelPrefecture:
			address.Prefecture = element.Name
		case domain.LevelCity:
			address.City = element.Name
		}
	}

	return address
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/address-navigator/internal/domain"
)

func feature(name, address string, elements ...domain.AddressElement) domain.Feature {
	return domain.Feature{
		Name: name,
		Property: domain.Property{
			Address:         address,
			AddressElements: elements,
		},
	}
}

func element(level, name string) domain.AddressElement {
	return domain.AddressElement{Name: name, Level: level}
}

func response(features ...domain.Feature) *domain.ZipcodeSearchResponse {
	return &domain.ZipcodeSearchResponse{
		StatusCode: 200,
		Body:       &domain.ZipcodeSearchResult{Features: features},
	}
}

func TestConvertAddresses_NoResults(t *testing.T) {
	tests := []struct {
		name string
		resp *domain.ZipcodeSearchResponse
	}{
		{"nil response", nil},
		{"nil body", &domain.ZipcodeSearchResponse{StatusCode: 200}},
		{"nil feature list", response()},
		{"empty feature list", &domain.ZipcodeSearchResponse{Body: &domain.ZipcodeSearchResult{Features: []domain.Feature{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ConvertAddresses(tt.resp))
		})
	}
}

func TestConvertAddresses_OnePerFeatureInOrder(t *testing.T) {
	resp := response(
		feature("100-0001", "first"),
		feature("100-0002", "second", element(domain.LevelCity, "C")),
		feature("100-0003", "third"),
	)

	result := ConvertAddresses(resp)
	require.Len(t, result, 3)
	assert.Equal(t, "100-0001", result[0].Zipcode)
	assert.Equal(t, "second", result[1].Address)
	assert.Equal(t, "C", result[1].City)
	assert.Equal(t, "100-0003", result[2].Zipcode)
}

func TestConvertAddress(t *testing.T) {
	t.Run("prefecture and city", func(t *testing.T) {
		got := ConvertAddress(feature("150-0002", "addr",
			element(domain.LevelPrefecture, "Tokyo"),
			element(domain.LevelCity, "Shibuya"),
		))
		assert.Equal(t, ResponseAddress{Zipcode: "150-0002", Address: "addr", Prefecture: "Tokyo", City: "Shibuya"}, got)
	})

	t.Run("last element wins", func(t *testing.T) {
		got := ConvertAddress(feature("1", "addr",
			element(domain.LevelPrefecture, "A"),
			element(domain.LevelPrefecture, "B"),
		))
		assert.Equal(t, "B", got.Prefecture)
	})

	t.Run("only oaza leaves prefecture and city unset", func(t *testing.T) {
		got := ConvertAddress(feature("1", "addr",
			element(domain.LevelOaza, "Shibuya"),
			element(domain.LevelOaza, "Dogenzaka"),
		))
		assert.Empty(t, got.Prefecture)
		assert.Empty(t, got.City)
		assert.Equal(t, "addr", got.Address)
	})

	t.Run("unknown levels are skipped", func(t *testing.T) {
		got := ConvertAddress(feature("1", "addr",
			element("detail1", "x"),
			element(domain.LevelAza, "y"),
			element(domain.LevelCity, "Shibuya-ku"),
			element("", "z"),
		))
		assert.Equal(t, "Shibuya-ku", got.City)
		assert.Empty(t, got.Prefecture)
	})

	t.Run("no elements", func(t *testing.T) {
		got := ConvertAddress(feature("1", "addr"))
		assert.Equal(t, ResponseAddress{Zipcode: "1", Address: "addr"}, got)
	})
}

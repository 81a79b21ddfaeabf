package handler

import (
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/address-navigator/internal/pkg/errors"
	"github.com/address-navigator/internal/pkg/utils"
	"github.com/address-navigator/internal/pkg/validator"
	"github.com/address-navigator/internal/usecase"
	"github.com/address-navigator/internal/usecase/dto"
)

// AddressHandler - обработчик JSON API поиска адресов
type AddressHandler struct {
	addressUC *usecase.AddressUseCase
	logger    *zap.Logger
}

// NewAddressHandler - создание нового AddressHandler
func NewAddressHandler(addressUC *usecase.AddressUseCase, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{
		addressUC: addressUC,
		logger:    logger,
	}
}

// Search godoc
// @Summary Поиск адресов по почтовому индексу
// @Description Ищет адреса по индексу через внешний API. Если API недоступен или ничего не найдено, data = null.
// @Tags Addresses
// @Produce json
// @Param zipcode query string true "Почтовый индекс" example(150-0002)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ResponseAddress}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/addresses [get]
func (h *AddressHandler) Search(c *fiber.Ctx) error {
	var req dto.AddressSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	req.Zipcode = fiberutils.CopyString(req.Zipcode)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err)))
	}

	addresses := h.addressUC.Search(c.UserContext(), req)

	return utils.SendSuccess(c, addresses, &utils.Meta{
		Total: len(addresses),
	})
}

package handler

import (
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/address-navigator/internal/pkg/validator"
	"github.com/address-navigator/internal/usecase"
	"github.com/address-navigator/internal/usecase/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

const indexTemplate = "index.html"

// AddressPageData - данные для шаблона страницы поиска адреса
type AddressPageData struct {
	Title     string
	Zipcode   string
	Searched  bool
	Error     string
	Addresses []dto.ResponseAddress
}

// AddressPageHandler - хендлер HTML-страницы поиска адреса по индексу
type AddressPageHandler struct {
	templates *template.Template
	addressUC *usecase.AddressUseCase
	logger    *zap.Logger
}

// NewAddressPageHandler - создание нового хендлера страницы поиска
func NewAddressPageHandler(addressUC *usecase.AddressUseCase, logger *zap.Logger) (*AddressPageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &AddressPageHandler{
		templates: tmpl,
		addressUC: addressUC,
		logger:    logger,
	}, nil
}

// ShowSearchForm - [GET] страница с пустой формой поиска
func (h *AddressPageHandler) ShowSearchForm(c *fiber.Ctx) error {
	h.logger.Debug("Address search page requested")

	return h.render(c, AddressPageData{})
}

// SubmitSearchForm - [POST] поиск адресов по индексу из формы
func (h *AddressPageHandler) SubmitSearchForm(c *fiber.Ctx) error {
	var req dto.AddressSearchRequest
	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return h.render(c, AddressPageData{Error: "Invalid form data"})
	}
	// значения формы указывают в буфер запроса fasthttp
	req.Zipcode = fiberutils.CopyString(req.Zipcode)

	if err := validator.Validate(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return h.render(c, AddressPageData{
			Zipcode: req.Zipcode,
			Error:   "Please enter a postal code (up to 16 characters)",
		})
	}

	addresses := h.addressUC.Search(c.UserContext(), req)

	return h.render(c, AddressPageData{
		Zipcode:   req.Zipcode,
		Searched:  true,
		Addresses: addresses,
	})
}

func (h *AddressPageHandler) render(c *fiber.Ctx, data AddressPageData) error {
	if data.Title == "" {
		data.Title = "Address Navigator"
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), indexTemplate, data)
}

package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"cambiazo/internal/domain/search"
	"cambiazo/internal/usecase"
	"cambiazo/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Condition   string   `json:"condition" validate:"required,oneof=New Used"`
	City        string   `json:"city" validate:"required"`
	ImageURLs   []string `json:"image_urls" validate:"max=9,dive,url"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	product, err := h.productUseCase.Create(c.Request().Context(), userID, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		City:        req.City,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

// ListProducts serves the catalog filtered by the query string. Every filter
// is optional; unset filters match everything.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	criteria := criteriaFromQuery(c)

	products, err := h.productUseCase.Search(c.Request().Context(), criteria)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

type generateDescriptionRequest struct {
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
}

func (h *ProductHandler) GenerateDescription(c echo.Context) error {
	var req generateDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	description, err := h.productUseCase.GenerateDescription(c.Request().Context(), req.Name, req.Category, req.Condition)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"description": description})
}

func criteriaFromQuery(c echo.Context) search.Criteria {
	criteria := search.Criteria{
		Text:      c.QueryParam("q"),
		City:      c.QueryParam("city"),
		Category:  c.QueryParam("category"),
		Condition: c.QueryParam("condition"),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MinPrice = &v
		}
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MaxPrice = &v
		}
	}

	return criteria
}

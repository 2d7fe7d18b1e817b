package handler

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/usecase"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)
	email, _ := c.Get("email").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID, email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	email, _ := c.Get("email").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, email, usecase.UpdateProfileInput{
		Name:     req.Name,
		Location: req.Location,
		Role:     req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// UploadPhoto accepts a multipart photo and stores it at the account's fixed
// storage key, replacing any previous photo.
func (h *UserHandler) UploadPhoto(c echo.Context) error {
	userID := c.Get("uid").(string)
	email, _ := c.Get("email").(string)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.Error(c, errors.BadRequest("Photo file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read photo", err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := h.userUseCase.UploadProfilePhoto(c.Request().Context(), userID, email, file, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"photo_url": url})
}

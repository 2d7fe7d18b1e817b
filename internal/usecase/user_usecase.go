package usecase

import (
	"context"
	"io"
	"strings"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/internal/domain/search"
	"cambiazo/internal/infrastructure/storage"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

type UserUseCase struct {
	userRepo      repository.UserRepository
	storageClient *storage.CloudStorageClient
}

func NewUserUseCase(userRepo repository.UserRepository, storageClient *storage.CloudStorageClient) *UserUseCase {
	return &UserUseCase{
		userRepo:      userRepo,
		storageClient: storageClient,
	}
}

// GetProfile loads the caller's profile, creating it with defaults on first
// access. The default name is derived from the email's local part.
func (uc *UserUseCase) GetProfile(ctx context.Context, userID, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user = &entity.User{
		ID:       userID,
		Name:     defaultName(email),
		Email:    email,
		Location: "Managua",
		Role:     entity.RoleBuyer,
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Profile created for %s", userID)
	return user, nil
}

func defaultName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "Usuario"
}

type UpdateProfileInput struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID, email string, input UpdateProfileInput) (*entity.User, error) {
	if !search.ValidCity(input.Location) {
		return nil, errors.BadRequest("Unknown city", nil)
	}
	if input.Role != entity.RoleBuyer && input.Role != entity.RoleSeller {
		return nil, errors.BadRequest("Role must be buyer or seller", nil)
	}

	user := &entity.User{
		ID:       userID,
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Location: input.Location,
		Role:     input.Role,
	}

	if user.Name == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UploadProfilePhoto stores the photo at the account's fixed key and saves
// the public URL on the profile. Re-uploading replaces the previous photo.
func (uc *UserUseCase) UploadProfilePhoto(ctx context.Context, userID, email string, file io.Reader, contentType string) (string, error) {
	if uc.storageClient == nil {
		return "", errors.Unavailable("Photo storage is not configured", nil)
	}

	url, err := uc.storageClient.UploadProfilePhoto(ctx, userID, file, contentType)
	if err != nil {
		return "", errors.Internal("Failed to upload photo", err)
	}

	user, err := uc.GetProfile(ctx, userID, email)
	if err != nil {
		return "", err
	}

	user.PhotoURL = url
	if err := uc.userRepo.Save(ctx, user); err != nil {
		return "", err
	}

	return url, nil
}

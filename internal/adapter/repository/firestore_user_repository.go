package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) profile(id string) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(id).Collection("profiles").Doc(id)
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.profile(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) Save(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = user.UpdatedAt
	}

	// MergeAll wants a map; merge keeps stored fields the caller left unset.
	data := map[string]interface{}{
		"name":      user.Name,
		"email":     user.Email,
		"location":  user.Location,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	}
	if user.PhotoURL != "" {
		data["photoURL"] = user.PhotoURL
	}

	_, err := r.profile(user.ID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to save profile", err)
	}

	return nil
}

package user

import (
	"context"
	"errors"

	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Repository interface {
	GetById(ctx context.Context, userID ulid.ULID) (*User, error)

	// DeleteCascade soft-deletes the user together with their transactions
	// and evaluation results inside one database transaction.
	DeleteCascade(ctx context.Context, userID ulid.ULID) error
}

// Service covers only what the evaluation engine needs from users:
// existence checks and the cascading delete. Profile management lives in a
// separate system.
type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) GetByID(ctx context.Context, userID ulid.ULID) (*User, error) {
	u, err := s.Repository.GetById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID ulid.ULID) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.Repository.DeleteCascade(ctx, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

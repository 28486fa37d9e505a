package hierarchy

import (
	"context"
	"errors"

	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Service exposes the read-only account type → category → subcategory tree.
type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) GetTree(ctx context.Context) ([]*AccountType, error) {
	tree, err := s.Repository.GetTree(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return tree, nil
}

// EnsureSubcategoryExists validates that an active subcategory backs the
// given id, as transaction writes require.
func (s *Service) EnsureSubcategoryExists(ctx context.Context, subcategoryID ulid.ULID) error {
	_, err := s.Repository.GetSubcategoryByID(ctx, subcategoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrSubcategoryNotFound
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetSubcategoryPath(ctx context.Context, subcategoryID ulid.ULID) (*SubcategoryPath, error) {
	path, err := s.Repository.GetSubcategoryPath(ctx, subcategoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrSubcategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return path, nil
}

package ratio

import (
	"context"
	"errors"

	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Service reads the ratio catalog. Definitions are seeded data; there is no
// write path outside migrations.
type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// ListActive returns the non-deleted catalog entries with their active
// components. Entries whose components were all soft-deleted are still
// listed; whether such a ratio is evaluable is the caller's call.
func (s *Service) ListActive(ctx context.Context) ([]*Ratio, error) {
	ratios, err := s.Repository.GetAllActive(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return ratios, nil
}

func (s *Service) GetByID(ctx context.Context, ratioID ulid.ULID) (*Ratio, error) {
	r, err := s.Repository.GetByID(ctx, ratioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRatioNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return r, nil
}

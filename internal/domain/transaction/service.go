package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/user"
	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const maxDescriptionLength = 255

type Service struct {
	Repository       Repository
	HierarchyService *hierarchy.Service
	UserService      *user.Service
}

func NewService(repo Repository, hierarchySvc *hierarchy.Service, userSvc *user.Service) *Service {
	return &Service{
		Repository:       repo,
		HierarchyService: hierarchySvc,
		UserService:      userSvc,
	}
}

func (s *Service) CreateTransaction(ctx context.Context, t *Transaction) error {
	if err := s.ensureUserExists(ctx, t.UserId); err != nil {
		return err
	}

	if err := s.validate(ctx, t); err != nil {
		return err
	}

	t.Id = pkg.GenerateULIDObject()
	now := pkg.SetTimestamps()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.Repository.Create(ctx, t); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateTransaction(ctx context.Context, t *Transaction) error {
	if err := s.ensureUserExists(ctx, t.UserId); err != nil {
		return err
	}

	stored, err := s.GetTransactionByID(ctx, t.Id, t.UserId)
	if err != nil {
		return err
	}

	if err := s.validate(ctx, t); err != nil {
		return err
	}

	stored.SubcategoryId = t.SubcategoryId
	stored.Amount = t.Amount
	stored.Description = t.Description
	if !t.Date.IsZero() {
		stored.Date = t.Date
	}
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID, userID ulid.ULID) error {
	if _, err := s.GetTransactionByID(ctx, transactionID, userID); err != nil {
		return err
	}

	if err := s.Repository.SoftDelete(ctx, transactionID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID, userID ulid.ULID) (*Transaction, error) {
	t, err := s.Repository.GetByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return t, nil
}

func (s *Service) GetAllTransactions(ctx context.Context, userID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, 0, err
	}

	if filters != nil && filters.DateFrom != nil && filters.DateTo != nil && filters.DateTo.Before(*filters.DateFrom) {
		return nil, 0, appErrors.NewValidationError("endDate", "tanggal akhir harus setelah tanggal awal")
	}

	transactions, total, err := s.Repository.GetAll(ctx, userID, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

// ToggleBookmark flips the bookmark flag and returns the stored entry.
func (s *Service) ToggleBookmark(ctx context.Context, transactionID, userID ulid.ULID) (*Transaction, error) {
	stored, err := s.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	stored.IsBookmarked = !stored.IsBookmarked
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return stored, nil
}

func (s *Service) CountTransactions(ctx context.Context, userID ulid.ULID) (int64, error) {
	count, err := s.Repository.CountByUser(ctx, userID)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (s *Service) validate(ctx context.Context, t *Transaction) error {
	if t.Date.IsZero() {
		return appErrors.NewValidationError("date", "tanggal wajib diisi")
	}

	t.Description = strings.TrimSpace(t.Description)
	if len(t.Description) > maxDescriptionLength {
		return appErrors.NewValidationError("description", "deskripsi maksimal 255 karakter")
	}

	if s.HierarchyService != nil {
		if err := s.HierarchyService.EnsureSubcategoryExists(ctx, t.SubcategoryId); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) ensureUserExists(ctx context.Context, userID ulid.ULID) error {
	if s.UserService == nil {
		return appErrors.ErrInternalServer.WithError(errors.New("user service not configured"))
	}
	if _, err := s.UserService.GetByID(ctx, userID); err != nil {
		return appErrors.ErrUserNotFound
	}
	return nil
}

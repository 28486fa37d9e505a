package transaction_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/user"
	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeTransactionRepository struct {
	createFn         func(ctx context.Context, t *transaction.Transaction) error
	updateFn         func(ctx context.Context, t *transaction.Transaction) error
	softDeleteFn     func(ctx context.Context, transactionID, userID ulid.ULID) error
	getByIDAndUserFn func(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error)
	countByUserFn    func(ctx context.Context, userID ulid.ULID) (int64, error)
}

func (f *fakeTransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTransactionRepository) SoftDelete(ctx context.Context, transactionID, userID ulid.ULID) error {
	if f.softDeleteFn != nil {
		return f.softDeleteFn(ctx, transactionID, userID)
	}
	return nil
}

func (f *fakeTransactionRepository) GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error) {
	if f.getByIDAndUserFn != nil {
		return f.getByIDAndUserFn(ctx, transactionID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeTransactionRepository) GetInWindow(ctx context.Context, userID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) BalanceAsOf(ctx context.Context, userID, subcategoryID ulid.ULID, asOf time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeTransactionRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	if f.countByUserFn != nil {
		return f.countByUserFn(ctx, userID)
	}
	return 0, nil
}

type fakeHierarchyRepository struct {
	getSubcategoryByIDFn func(ctx context.Context, subcategoryID ulid.ULID) (*hierarchy.Subcategory, error)
}

func (f *fakeHierarchyRepository) GetTree(ctx context.Context) ([]*hierarchy.AccountType, error) {
	return nil, nil
}

func (f *fakeHierarchyRepository) GetSubcategoryByID(ctx context.Context, subcategoryID ulid.ULID) (*hierarchy.Subcategory, error) {
	if f.getSubcategoryByIDFn != nil {
		return f.getSubcategoryByIDFn(ctx, subcategoryID)
	}
	return &hierarchy.Subcategory{Id: subcategoryID}, nil
}

func (f *fakeHierarchyRepository) GetSubcategoryPath(ctx context.Context, subcategoryID ulid.ULID) (*hierarchy.SubcategoryPath, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeUserRepository struct {
	getByIdFn func(ctx context.Context, userID ulid.ULID) (*user.User, error)
}

func (f *fakeUserRepository) GetById(ctx context.Context, userID ulid.ULID) (*user.User, error) {
	if f.getByIdFn != nil {
		return f.getByIdFn(ctx, userID)
	}
	return &user.User{Id: userID}, nil
}

func (f *fakeUserRepository) DeleteCascade(ctx context.Context, userID ulid.ULID) error {
	return nil
}

func newService(repo *fakeTransactionRepository, hierarchyRepo *fakeHierarchyRepository, userRepo *fakeUserRepository) *transaction.Service {
	return transaction.NewService(
		repo,
		hierarchy.NewService(hierarchyRepo),
		user.NewService(userRepo),
	)
}

func TestCreateTransactionValidations(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	subcategoryID := ulid.Make()

	tests := []struct {
		name        string
		entity      *transaction.Transaction
		missingSub  bool
		missingUser bool
		wantErrCode string
	}{
		{
			name: "missing date",
			entity: &transaction.Transaction{
				UserId:        userID,
				SubcategoryId: subcategoryID,
				Amount:        decimal.NewFromInt(100),
			},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name: "description too long",
			entity: &transaction.Transaction{
				UserId:        userID,
				SubcategoryId: subcategoryID,
				Amount:        decimal.NewFromInt(100),
				Date:          time.Now(),
				Description:   strings.Repeat("a", 256),
			},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name: "unknown subcategory",
			entity: &transaction.Transaction{
				UserId:        userID,
				SubcategoryId: subcategoryID,
				Amount:        decimal.NewFromInt(100),
				Date:          time.Now(),
			},
			missingSub:  true,
			wantErrCode: appErrors.ErrSubcategoryNotFound.Code,
		},
		{
			name: "unknown user",
			entity: &transaction.Transaction{
				UserId:        userID,
				SubcategoryId: subcategoryID,
				Amount:        decimal.NewFromInt(100),
				Date:          time.Now(),
			},
			missingUser: true,
			wantErrCode: appErrors.ErrUserNotFound.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hierarchyRepo := &fakeHierarchyRepository{}
			if tt.missingSub {
				hierarchyRepo.getSubcategoryByIDFn = func(ctx context.Context, id ulid.ULID) (*hierarchy.Subcategory, error) {
					return nil, gorm.ErrRecordNotFound
				}
			}

			userRepo := &fakeUserRepository{}
			if tt.missingUser {
				userRepo.getByIdFn = func(ctx context.Context, id ulid.ULID) (*user.User, error) {
					return nil, gorm.ErrRecordNotFound
				}
			}

			svc := newService(&fakeTransactionRepository{}, hierarchyRepo, userRepo)
			err := svc.CreateTransaction(context.Background(), tt.entity)
			if err == nil {
				t.Fatal("expected an error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErrCode {
				t.Fatalf("expected %s, got %s", tt.wantErrCode, appErr.Code)
			}
		})
	}
}

func TestCreateTransactionAssignsIDAndTimestamps(t *testing.T) {
	t.Parallel()

	var created *transaction.Transaction
	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			created = tx
			return nil
		},
	}

	svc := newService(repo, &fakeHierarchyRepository{}, &fakeUserRepository{})
	entity := &transaction.Transaction{
		UserId:        ulid.Make(),
		SubcategoryId: ulid.Make(),
		Amount:        decimal.NewFromInt(-250),
		Date:          time.Now(),
		Description:   "  cicilan KPR  ",
	}

	if err := svc.CreateTransaction(context.Background(), entity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected the repository create to be called")
	}
	if pkg.IsEmptyULID(created.Id) {
		t.Fatal("service must assign an id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("service must stamp created/updated times")
	}
	if created.Description != "cicilan KPR" {
		t.Fatalf("description should be trimmed, got %q", created.Description)
	}
}

func TestToggleBookmark(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	transactionID := ulid.Make()

	stored := &transaction.Transaction{
		Id:           transactionID,
		UserId:       userID,
		IsBookmarked: false,
	}

	var updated *transaction.Transaction
	repo := &fakeTransactionRepository{
		getByIDAndUserFn: func(ctx context.Context, id, uid ulid.ULID) (*transaction.Transaction, error) {
			clone := *stored
			return &clone, nil
		},
		updateFn: func(ctx context.Context, tx *transaction.Transaction) error {
			updated = tx
			return nil
		},
	}

	svc := newService(repo, &fakeHierarchyRepository{}, &fakeUserRepository{})
	got, err := svc.ToggleBookmark(context.Background(), transactionID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsBookmarked {
		t.Fatal("bookmark should flip to true")
	}
	if updated == nil || !updated.IsBookmarked {
		t.Fatal("flipped flag must reach the repository")
	}
}

func TestCountTransactions(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	repo := &fakeTransactionRepository{
		countByUserFn: func(ctx context.Context, uid ulid.ULID) (int64, error) {
			if uid != userID {
				t.Fatalf("user id mismatch: %s", uid)
			}
			return 7, nil
		},
	}

	svc := newService(repo, &fakeHierarchyRepository{}, &fakeUserRepository{})
	count, err := svc.CountTransactions(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected 7, got %d", count)
	}
}

func TestDeleteTransactionNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeTransactionRepository{}, &fakeHierarchyRepository{}, &fakeUserRepository{})
	err := svc.DeleteTransaction(context.Background(), ulid.Make(), ulid.Make())
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrTransactionNotFound.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrTransactionNotFound.Code, appErr.Code)
	}
}

package infrastructure

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId        string          `gorm:"type:varchar(26);index;not null;column:user_id"`
	SubcategoryId string          `gorm:"type:varchar(26);index;not null;column:subcategory_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	Date          time.Time       `gorm:"index;not null;column:date"`
	Description   string          `gorm:"size:255;column:description"`
	IsBookmarked  bool            `gorm:"not null;default:false;column:is_bookmarked"`
	CreatedAt     time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt     time.Time       `gorm:"not null;column:updated_at"`
	DeletedAt     *time.Time      `gorm:"index;column:deleted_at"`

	SubcategoryName string `gorm:"->;column:subcategory_name"`
	CategoryName    string `gorm:"->;column:category_name"`
	AccountTypeName string `gorm:"->;column:account_type_name"`
}

func (transactionDB) TableName() string { return "transactions" }

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	uid, err := pkg.ParseULID(tdb.UserId)
	if err != nil {
		return nil, err
	}
	sid, err := pkg.ParseULID(tdb.SubcategoryId)
	if err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Id:              id,
		UserId:          uid,
		SubcategoryId:   sid,
		Amount:          tdb.Amount,
		Date:            tdb.Date,
		Description:     tdb.Description,
		IsBookmarked:    tdb.IsBookmarked,
		CreatedAt:       tdb.CreatedAt,
		UpdatedAt:       tdb.UpdatedAt,
		DeletedAt:       tdb.DeletedAt,
		SubcategoryName: tdb.SubcategoryName,
		CategoryName:    tdb.CategoryName,
		AccountTypeName: tdb.AccountTypeName,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:            t.Id.String(),
		UserId:        t.UserId.String(),
		SubcategoryId: t.SubcategoryId.String(),
		Amount:        t.Amount,
		Date:          t.Date,
		Description:   t.Description,
		IsBookmarked:  t.IsBookmarked,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		DeletedAt:     t.DeletedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", tdb.Id, tdb.UserId).
		Updates(map[string]interface{}{
			"subcategory_id": tdb.SubcategoryId,
			"amount":         tdb.Amount,
			"date":           tdb.Date,
			"description":    tdb.Description,
			"is_bookmarked":  tdb.IsBookmarked,
			"updated_at":     tdb.UpdatedAt,
		}).Error
}

func (r *TransactionRepository) SoftDelete(ctx context.Context, transactionID, userID ulid.ULID) error {
	now := time.Now()
	result := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", transactionID.String(), userID.String()).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, s.name as subcategory_name, c.name as category_name, at.name as account_type_name").
		Joins("LEFT JOIN subcategories s ON t.subcategory_id = s.id").
		Joins("LEFT JOIN categories c ON s.category_id = c.id").
		Joins("LEFT JOIN account_types at ON c.account_type_id = at.id").
		Where("t.id = ? AND t.user_id = ? AND t.deleted_at IS NULL", transactionID.String(), userID.String()).
		First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, s.name as subcategory_name, c.name as category_name, at.name as account_type_name").
		Joins("LEFT JOIN subcategories s ON t.subcategory_id = s.id").
		Joins("LEFT JOIN categories c ON s.category_id = c.id").
		Joins("LEFT JOIN account_types at ON c.account_type_id = at.id").
		Where("t.user_id = ? AND t.deleted_at IS NULL", userID.String())

	if filters != nil {
		if filters.SubcategoryId != nil {
			query = query.Where("t.subcategory_id = ?", filters.SubcategoryId.String())
		}

		if filters.DateFrom != nil {
			query = query.Where("t.date >= ?", *filters.DateFrom)
		}

		if filters.DateTo != nil {
			query = query.Where("t.date <= ?", *filters.DateTo)
		}

		if filters.Bookmarked != nil {
			query = query.Where("t.is_bookmarked = ?", *filters.Bookmarked)
		}

		if filters.Search != nil && *filters.Search != "" {
			query = query.Where("t.description ILIKE ?", "%"+*filters.Search+"%")
		}
	}

	return pkg.Paginate(query, pagination, "t.date DESC, t.created_at DESC", toDomainTransaction)
}

func (r *TransactionRepository) GetInWindow(ctx context.Context, userID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, s.name as subcategory_name, c.name as category_name, at.name as account_type_name").
		Joins("LEFT JOIN subcategories s ON t.subcategory_id = s.id").
		Joins("LEFT JOIN categories c ON s.category_id = c.id").
		Joins("LEFT JOIN account_types at ON c.account_type_id = at.id").
		Where("t.user_id = ? AND t.deleted_at IS NULL AND t.date >= ? AND t.date <= ?", userID.String(), start, end).
		Order("t.date ASC, t.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		item, err := toDomainTransaction(&rows[i])
		if err != nil {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *TransactionRepository) BalanceAsOf(ctx context.Context, userID, subcategoryID ulid.ULID, asOf time.Time) (decimal.Decimal, error) {
	var balance decimal.NullDecimal
	err := r.DB.WithContext(ctx).Table("transactions").
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND subcategory_id = ? AND deleted_at IS NULL AND date <= ?", userID.String(), subcategoryID.String(), asOf).
		Scan(&balance).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !balance.Valid {
		return decimal.Zero, nil
	}
	return balance.Decimal, nil
}

func (r *TransactionRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("user_id = ? AND deleted_at IS NULL", userID.String()).
		Count(&count).Error
	return count, err
}

package infrastructure

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type RatioRepository struct {
	DB *gorm.DB
}

var _ ratio.Repository = (*RatioRepository)(nil)

type ratioDB struct {
	Id                    string     `gorm:"type:varchar(26);primaryKey;column:id"`
	Code                  string     `gorm:"size:50;uniqueIndex;not null;column:code"`
	Title                 string     `gorm:"size:100;not null;column:title"`
	Multiplier            float64    `gorm:"not null;default:1;column:multiplier"`
	LowerBound            *float64   `gorm:"column:lower_bound"`
	UpperBound            *float64   `gorm:"column:upper_bound"`
	IsLowerBoundInclusive bool       `gorm:"not null;default:true;column:is_lower_bound_inclusive"`
	IsUpperBoundInclusive bool       `gorm:"not null;default:true;column:is_upper_bound_inclusive"`
	IdealText             *string    `gorm:"size:100;column:ideal_text"`
	Policy                string     `gorm:"size:50;not null;default:'STANDARD';column:policy"`
	CreatedAt             time.Time  `gorm:"not null;column:created_at"`
	UpdatedAt             time.Time  `gorm:"not null;column:updated_at"`
	DeletedAt             *time.Time `gorm:"index;column:deleted_at"`
}

func (ratioDB) TableName() string { return "ratios" }

type ratioComponentDB struct {
	Id            string     `gorm:"type:varchar(26);primaryKey;column:id"`
	RatioId       string     `gorm:"type:varchar(26);index;not null;uniqueIndex:uq_ratio_component,priority:1;column:ratio_id"`
	SubcategoryId string     `gorm:"type:varchar(26);index;not null;uniqueIndex:uq_ratio_component,priority:2;column:subcategory_id"`
	Side          string     `gorm:"size:15;not null;uniqueIndex:uq_ratio_component,priority:3;column:side"`
	Sign          int        `gorm:"not null;default:1;column:sign"`
	DeletedAt     *time.Time `gorm:"index;column:deleted_at"`

	SubcategoryName string `gorm:"->;column:subcategory_name"`
	CategoryName    string `gorm:"->;column:category_name"`
	AccountTypeName string `gorm:"->;column:account_type_name"`
}

func (ratioComponentDB) TableName() string { return "ratio_components" }

func toDomainRatio(rdb *ratioDB) (*ratio.Ratio, error) {
	id, err := pkg.ParseULID(rdb.Id)
	if err != nil {
		return nil, err
	}
	return &ratio.Ratio{
		Id:                    id,
		Code:                  rdb.Code,
		Title:                 rdb.Title,
		Multiplier:            rdb.Multiplier,
		LowerBound:            rdb.LowerBound,
		UpperBound:            rdb.UpperBound,
		IsLowerBoundInclusive: rdb.IsLowerBoundInclusive,
		IsUpperBoundInclusive: rdb.IsUpperBoundInclusive,
		IdealText:             rdb.IdealText,
		Policy:                ratio.Policy(rdb.Policy),
		CreatedAt:             rdb.CreatedAt,
		UpdatedAt:             rdb.UpdatedAt,
		DeletedAt:             rdb.DeletedAt,
	}, nil
}

func toDomainComponent(cdb *ratioComponentDB) (*ratio.Component, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	rid, err := pkg.ParseULID(cdb.RatioId)
	if err != nil {
		return nil, err
	}
	sid, err := pkg.ParseULID(cdb.SubcategoryId)
	if err != nil {
		return nil, err
	}
	return &ratio.Component{
		Id:              id,
		RatioId:         rid,
		SubcategoryId:   sid,
		Side:            ratio.Side(cdb.Side),
		Sign:            cdb.Sign,
		DeletedAt:       cdb.DeletedAt,
		SubcategoryName: cdb.SubcategoryName,
		CategoryName:    cdb.CategoryName,
		AccountTypeName: cdb.AccountTypeName,
	}, nil
}

// activeComponents loads non-deleted components whose subcategory chain is
// itself non-deleted, annotated with the chain names. INNER joins drop
// components pointing at a soft-deleted hierarchy row.
func (r *RatioRepository) activeComponents(ctx context.Context, ratioIDs []string) (map[string][]*ratio.Component, error) {
	var rows []ratioComponentDB
	query := r.DB.WithContext(ctx).Table("ratio_components rc").
		Select("rc.*, s.name as subcategory_name, c.name as category_name, at.name as account_type_name").
		Joins("JOIN subcategories s ON rc.subcategory_id = s.id AND s.deleted_at IS NULL").
		Joins("JOIN categories c ON s.category_id = c.id AND c.deleted_at IS NULL").
		Joins("JOIN account_types at ON c.account_type_id = at.id AND at.deleted_at IS NULL").
		Where("rc.deleted_at IS NULL")

	if len(ratioIDs) > 0 {
		query = query.Where("rc.ratio_id IN ?", ratioIDs)
	}

	if err := query.Order("rc.side ASC, s.name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string][]*ratio.Component)
	for i := range rows {
		component, err := toDomainComponent(&rows[i])
		if err != nil {
			continue
		}
		out[rows[i].RatioId] = append(out[rows[i].RatioId], component)
	}

	return out, nil
}

func (r *RatioRepository) GetAllActive(ctx context.Context) ([]*ratio.Ratio, error) {
	var rdbRows []ratioDB
	err := r.DB.WithContext(ctx).Table("ratios").
		Where("deleted_at IS NULL").
		Order("code ASC").
		Find(&rdbRows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rdbRows))
	for i := range rdbRows {
		ids = append(ids, rdbRows[i].Id)
	}

	componentsByRatio, err := r.activeComponents(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*ratio.Ratio, 0, len(rdbRows))
	for i := range rdbRows {
		item, err := toDomainRatio(&rdbRows[i])
		if err != nil {
			continue
		}
		item.Components = componentsByRatio[rdbRows[i].Id]
		out = append(out, item)
	}

	return out, nil
}

func (r *RatioRepository) GetByID(ctx context.Context, ratioID ulid.ULID) (*ratio.Ratio, error) {
	var rdb ratioDB
	err := r.DB.WithContext(ctx).Table("ratios").
		Where("id = ? AND deleted_at IS NULL", ratioID.String()).
		First(&rdb).Error
	if err != nil {
		return nil, err
	}

	item, err := toDomainRatio(&rdb)
	if err != nil {
		return nil, err
	}

	componentsByRatio, err := r.activeComponents(ctx, []string{rdb.Id})
	if err != nil {
		return nil, err
	}
	item.Components = componentsByRatio[rdb.Id]

	return item, nil
}

package infrastructure

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/evaluation"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvaluationRepository struct {
	DB *gorm.DB
}

var _ evaluation.Repository = (*EvaluationRepository)(nil)

type evaluationResultDB struct {
	Id           string     `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId       string     `gorm:"type:varchar(26);not null;uniqueIndex:uq_evaluation_window,priority:1;column:user_id"`
	RatioId      string     `gorm:"type:varchar(26);not null;uniqueIndex:uq_evaluation_window,priority:2;column:ratio_id"`
	StartDate    time.Time  `gorm:"not null;uniqueIndex:uq_evaluation_window,priority:3;column:start_date"`
	EndDate      time.Time  `gorm:"not null;uniqueIndex:uq_evaluation_window,priority:4;column:end_date"`
	Value        float64    `gorm:"not null;column:value"`
	Status       string     `gorm:"size:15;not null;column:status"`
	CalculatedAt time.Time  `gorm:"not null;column:calculated_at"`
	DeletedAt    *time.Time `gorm:"index;column:deleted_at"`

	RatioCode  string `gorm:"->;column:ratio_code"`
	RatioTitle string `gorm:"->;column:ratio_title"`
}

func (evaluationResultDB) TableName() string { return "evaluation_results" }

func toDomainResult(edb *evaluationResultDB) (*evaluation.Result, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, err
	}
	uid, err := pkg.ParseULID(edb.UserId)
	if err != nil {
		return nil, err
	}
	rid, err := pkg.ParseULID(edb.RatioId)
	if err != nil {
		return nil, err
	}

	return &evaluation.Result{
		Id:           id,
		UserId:       uid,
		RatioId:      rid,
		StartDate:    edb.StartDate,
		EndDate:      edb.EndDate,
		Value:        edb.Value,
		Status:       evaluation.Status(edb.Status),
		CalculatedAt: edb.CalculatedAt,
		DeletedAt:    edb.DeletedAt,
		RatioCode:    edb.RatioCode,
		RatioTitle:   edb.RatioTitle,
	}, nil
}

func toDBResult(result *evaluation.Result) *evaluationResultDB {
	return &evaluationResultDB{
		Id:           result.Id.String(),
		UserId:       result.UserId.String(),
		RatioId:      result.RatioId.String(),
		StartDate:    result.StartDate,
		EndDate:      result.EndDate,
		Value:        result.Value,
		Status:       string(result.Status),
		CalculatedAt: result.CalculatedAt,
		DeletedAt:    result.DeletedAt,
	}
}

// Upsert is a single INSERT ... ON CONFLICT DO UPDATE on the window key, so
// recomputations never race into duplicate rows. The existing row keeps its
// id; only value, status and calculated_at are refreshed.
func (r *EvaluationRepository) Upsert(ctx context.Context, result *evaluation.Result) error {
	edb := toDBResult(result)
	return r.DB.WithContext(ctx).Table("evaluation_results").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "ratio_id"},
				{Name: "start_date"},
				{Name: "end_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "status", "calculated_at", "deleted_at"}),
		}).
		Create(edb).Error
}

func (r *EvaluationRepository) FindHistory(ctx context.Context, userID ulid.ULID, from, to *time.Time, pagination *pkg.PaginationParams) ([]*evaluation.Result, int64, error) {
	query := r.DB.WithContext(ctx).Table("evaluation_results e").
		Select("e.*, r.code as ratio_code, r.title as ratio_title").
		Joins("LEFT JOIN ratios r ON e.ratio_id = r.id").
		Where("e.user_id = ? AND e.deleted_at IS NULL", userID.String())

	if from != nil {
		query = query.Where("e.start_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("e.end_date <= ?", *to)
	}

	return pkg.Paginate(query, pagination, "e.start_date DESC, e.calculated_at DESC", toDomainResult)
}

func (r *EvaluationRepository) FindByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*evaluation.Result, error) {
	var edb evaluationResultDB
	err := r.DB.WithContext(ctx).Table("evaluation_results e").
		Select("e.*, r.code as ratio_code, r.title as ratio_title").
		Joins("LEFT JOIN ratios r ON e.ratio_id = r.id").
		Where("e.id = ? AND e.user_id = ? AND e.deleted_at IS NULL", id.String(), userID.String()).
		First(&edb).Error
	if err != nil {
		return nil, err
	}
	return toDomainResult(&edb)
}

package infrastructure

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/user"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

var _ user.Repository = (*UserRepository)(nil)

type userDB struct {
	Id        string     `gorm:"type:varchar(26);primaryKey;column:id"`
	Name      string     `gorm:"size:100;not null;column:name"`
	Email     string     `gorm:"size:255;uniqueIndex;not null;column:email"`
	CreatedAt time.Time  `gorm:"not null;column:created_at"`
	UpdatedAt time.Time  `gorm:"not null;column:updated_at"`
	DeletedAt *time.Time `gorm:"index;column:deleted_at"`
}

func (userDB) TableName() string { return "users" }

func toDomainUser(udb *userDB) (*user.User, error) {
	id, err := pkg.ParseULID(udb.Id)
	if err != nil {
		return nil, err
	}
	return &user.User{
		Id:        id,
		Name:      udb.Name,
		Email:     udb.Email,
		CreatedAt: udb.CreatedAt,
		UpdatedAt: udb.UpdatedAt,
		DeletedAt: udb.DeletedAt,
	}, nil
}

func (r *UserRepository) GetById(ctx context.Context, userID ulid.ULID) (*user.User, error) {
	var udb userDB
	err := r.DB.WithContext(ctx).Table("users").
		Where("id = ? AND deleted_at IS NULL", userID.String()).
		First(&udb).Error
	if err != nil {
		return nil, err
	}
	return toDomainUser(&udb)
}

// DeleteCascade soft-deletes the user and their owned rows in one database
// transaction, so a half-deleted account never becomes visible.
func (r *UserRepository) DeleteCascade(ctx context.Context, userID ulid.ULID) error {
	now := time.Now()
	uid := userID.String()

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table("users").
			Where("id = ? AND deleted_at IS NULL", uid).
			Updates(map[string]interface{}{"deleted_at": now, "updated_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		err := tx.Table("transactions").
			Where("user_id = ? AND deleted_at IS NULL", uid).
			Updates(map[string]interface{}{"deleted_at": now, "updated_at": now}).Error
		if err != nil {
			return err
		}

		return tx.Table("evaluation_results").
			Where("user_id = ? AND deleted_at IS NULL", uid).
			Update("deleted_at", now).Error
	})
}

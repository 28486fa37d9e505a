package infrastructure

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type HierarchyRepository struct {
	DB *gorm.DB
}

var _ hierarchy.Repository = (*HierarchyRepository)(nil)

type accountTypeDB struct {
	Id        string     `gorm:"type:varchar(26);primaryKey;column:id"`
	Name      string     `gorm:"size:100;uniqueIndex;not null;column:name"`
	CreatedAt time.Time  `gorm:"not null;column:created_at"`
	UpdatedAt time.Time  `gorm:"not null;column:updated_at"`
	DeletedAt *time.Time `gorm:"index;column:deleted_at"`
}

func (accountTypeDB) TableName() string { return "account_types" }

type categoryDB struct {
	Id            string     `gorm:"type:varchar(26);primaryKey;column:id"`
	AccountTypeId string     `gorm:"type:varchar(26);index;not null;column:account_type_id"`
	Name          string     `gorm:"size:100;not null;column:name"`
	CreatedAt     time.Time  `gorm:"not null;column:created_at"`
	UpdatedAt     time.Time  `gorm:"not null;column:updated_at"`
	DeletedAt     *time.Time `gorm:"index;column:deleted_at"`
}

func (categoryDB) TableName() string { return "categories" }

type subcategoryDB struct {
	Id         string     `gorm:"type:varchar(26);primaryKey;column:id"`
	CategoryId string     `gorm:"type:varchar(26);index;not null;column:category_id"`
	Name       string     `gorm:"size:100;not null;column:name"`
	CreatedAt  time.Time  `gorm:"not null;column:created_at"`
	UpdatedAt  time.Time  `gorm:"not null;column:updated_at"`
	DeletedAt  *time.Time `gorm:"index;column:deleted_at"`
}

func (subcategoryDB) TableName() string { return "subcategories" }

type subcategoryPathDB struct {
	SubcategoryId   string `gorm:"column:subcategory_id"`
	SubcategoryName string `gorm:"column:subcategory_name"`
	CategoryName    string `gorm:"column:category_name"`
	AccountTypeName string `gorm:"column:account_type_name"`
}

func toDomainAccountType(adb *accountTypeDB) (*hierarchy.AccountType, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, err
	}
	return &hierarchy.AccountType{
		Id:        id,
		Name:      adb.Name,
		CreatedAt: adb.CreatedAt,
		UpdatedAt: adb.UpdatedAt,
		DeletedAt: adb.DeletedAt,
	}, nil
}

func toDomainCategory(cdb *categoryDB) (*hierarchy.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	atID, err := pkg.ParseULID(cdb.AccountTypeId)
	if err != nil {
		return nil, err
	}
	return &hierarchy.Category{
		Id:            id,
		AccountTypeId: atID,
		Name:          cdb.Name,
		CreatedAt:     cdb.CreatedAt,
		UpdatedAt:     cdb.UpdatedAt,
		DeletedAt:     cdb.DeletedAt,
	}, nil
}

func toDomainSubcategory(sdb *subcategoryDB) (*hierarchy.Subcategory, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}
	catID, err := pkg.ParseULID(sdb.CategoryId)
	if err != nil {
		return nil, err
	}
	return &hierarchy.Subcategory{
		Id:         id,
		CategoryId: catID,
		Name:       sdb.Name,
		CreatedAt:  sdb.CreatedAt,
		UpdatedAt:  sdb.UpdatedAt,
		DeletedAt:  sdb.DeletedAt,
	}, nil
}

// GetTree loads the three levels in bulk and assembles them in memory.
func (r *HierarchyRepository) GetTree(ctx context.Context) ([]*hierarchy.AccountType, error) {
	var atRows []accountTypeDB
	err := r.DB.WithContext(ctx).Table("account_types").
		Where("deleted_at IS NULL").
		Order("name ASC").
		Find(&atRows).Error
	if err != nil {
		return nil, err
	}

	var catRows []categoryDB
	err = r.DB.WithContext(ctx).Table("categories").
		Where("deleted_at IS NULL").
		Order("name ASC").
		Find(&catRows).Error
	if err != nil {
		return nil, err
	}

	var subRows []subcategoryDB
	err = r.DB.WithContext(ctx).Table("subcategories").
		Where("deleted_at IS NULL").
		Order("name ASC").
		Find(&subRows).Error
	if err != nil {
		return nil, err
	}

	categoriesByAccountType := make(map[string][]*hierarchy.Category)
	categoryIndex := make(map[string]*hierarchy.Category)
	for i := range catRows {
		cat, err := toDomainCategory(&catRows[i])
		if err != nil {
			continue
		}
		categoriesByAccountType[catRows[i].AccountTypeId] = append(categoriesByAccountType[catRows[i].AccountTypeId], cat)
		categoryIndex[catRows[i].Id] = cat
	}

	for i := range subRows {
		sub, err := toDomainSubcategory(&subRows[i])
		if err != nil {
			continue
		}
		if parent, ok := categoryIndex[subRows[i].CategoryId]; ok {
			parent.Subcategories = append(parent.Subcategories, sub)
		}
	}

	out := make([]*hierarchy.AccountType, 0, len(atRows))
	for i := range atRows {
		at, err := toDomainAccountType(&atRows[i])
		if err != nil {
			continue
		}
		at.Categories = categoriesByAccountType[atRows[i].Id]
		out = append(out, at)
	}

	return out, nil
}

func (r *HierarchyRepository) GetSubcategoryByID(ctx context.Context, subcategoryID ulid.ULID) (*hierarchy.Subcategory, error) {
	var sdb subcategoryDB
	err := r.DB.WithContext(ctx).Table("subcategories").
		Where("id = ? AND deleted_at IS NULL", subcategoryID.String()).
		First(&sdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainSubcategory(&sdb)
}

func (r *HierarchyRepository) GetSubcategoryPath(ctx context.Context, subcategoryID ulid.ULID) (*hierarchy.SubcategoryPath, error) {
	var pdb subcategoryPathDB
	err := r.DB.WithContext(ctx).Table("subcategories s").
		Select("s.id as subcategory_id, s.name as subcategory_name, c.name as category_name, at.name as account_type_name").
		Joins("JOIN categories c ON s.category_id = c.id AND c.deleted_at IS NULL").
		Joins("JOIN account_types at ON c.account_type_id = at.id AND at.deleted_at IS NULL").
		Where("s.id = ? AND s.deleted_at IS NULL", subcategoryID.String()).
		First(&pdb).Error
	if err != nil {
		return nil, err
	}

	sid, err := pkg.ParseULID(pdb.SubcategoryId)
	if err != nil {
		return nil, err
	}

	return &hierarchy.SubcategoryPath{
		SubcategoryId:   sid,
		SubcategoryName: pdb.SubcategoryName,
		CategoryName:    pdb.CategoryName,
		AccountTypeName: pdb.AccountTypeName,
	}, nil
}

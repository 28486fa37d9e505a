package infrastructure

import (
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
	"github.com/arindama-pkmk/ta-server-sub000/internal/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedDefaults inserts the default hierarchy tree and ratio catalog. Seed
// rows carry deterministic ids, so reruns insert nothing new; existing rows
// are left untouched to preserve operator edits.
func seedDefaults(db *gorm.DB) error {
	if err := seedHierarchy(db); err != nil {
		return err
	}
	if err := seedRatios(db); err != nil {
		return err
	}
	logger.Info().Msg("data awal hierarki dan katalog rasio siap")
	return nil
}

func seedHierarchy(db *gorm.DB) error {
	now := time.Now()

	var accountTypes []accountTypeDB
	var categories []categoryDB
	var subcategories []subcategoryDB

	for _, at := range hierarchy.DefaultTree {
		atID := hierarchy.AccountTypeID(at.Name).String()
		accountTypes = append(accountTypes, accountTypeDB{
			Id:        atID,
			Name:      at.Name,
			CreatedAt: now,
			UpdatedAt: now,
		})

		for _, cat := range at.Categories {
			catID := hierarchy.CategoryID(at.Name, cat.Name).String()
			categories = append(categories, categoryDB{
				Id:            catID,
				AccountTypeId: atID,
				Name:          cat.Name,
				CreatedAt:     now,
				UpdatedAt:     now,
			})

			for _, sub := range cat.Subcategories {
				subcategories = append(subcategories, subcategoryDB{
					Id:         hierarchy.SubcategoryID(sub.Name).String(),
					CategoryId: catID,
					Name:       sub.Name,
					CreatedAt:  now,
					UpdatedAt:  now,
				})
			}
		}
	}

	insertIgnore := clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}

	if err := db.Table("account_types").Clauses(insertIgnore).Create(&accountTypes).Error; err != nil {
		return err
	}
	if err := db.Table("categories").Clauses(insertIgnore).Create(&categories).Error; err != nil {
		return err
	}
	return db.Table("subcategories").Clauses(insertIgnore).Create(&subcategories).Error
}

func seedRatios(db *gorm.DB) error {
	now := time.Now()

	var ratios []ratioDB
	var components []ratioComponentDB

	for _, def := range ratio.DefaultRatios {
		ratioID := ratio.RatioID(def.Code).String()
		ratios = append(ratios, ratioDB{
			Id:                    ratioID,
			Code:                  def.Code,
			Title:                 def.Title,
			Multiplier:            def.Multiplier,
			LowerBound:            def.LowerBound,
			UpperBound:            def.UpperBound,
			IsLowerBoundInclusive: def.IsLowerBoundInclusive,
			IsUpperBoundInclusive: def.IsUpperBoundInclusive,
			IdealText:             def.IdealText,
			Policy:                string(def.Policy),
			CreatedAt:             now,
			UpdatedAt:             now,
		})

		for _, c := range def.Components {
			components = append(components, ratioComponentDB{
				Id:            ratio.ComponentID(def.Code, c.SubcategoryName, c.Side).String(),
				RatioId:       ratioID,
				SubcategoryId: hierarchy.SubcategoryID(c.SubcategoryName).String(),
				Side:          string(c.Side),
				Sign:          c.Sign,
			})
		}
	}

	insertIgnore := clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}

	if err := db.Table("ratios").Clauses(insertIgnore).Create(&ratios).Error; err != nil {
		return err
	}
	return db.Table("ratio_components").Clauses(insertIgnore).Create(&components).Error
}

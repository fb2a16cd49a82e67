package handlers

import (
	"context"

	"github.com/adrirubim/laserpack/internal/models"
	"gorm.io/gorm"
)

// ArticleStore is the persistence surface the handlers need. Kept narrow
// so tests can run against an in-memory fake.
type ArticleStore interface {
	// ListArticles returns the listing projection, in code order.
	ListArticles(ctx context.Context) ([]models.Article, error)
	// FindArticle loads the fully-populated aggregate.
	// Returns gorm.ErrRecordNotFound when the uuid is unknown.
	FindArticle(ctx context.Context, uuid string) (*models.Article, error)
	// DeleteArticle removes the aggregate and its children.
	DeleteArticle(ctx context.Context, uuid string) error
	// FindOffer loads one offer reference record.
	FindOffer(ctx context.Context, id uint) (*models.Offer, error)
}

// GormStore is the production ArticleStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) ListArticles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.WithContext(ctx).
		Select("uuid", "cod_article_las", "description").
		Order("cod_article_las").
		Find(&articles).Error
	return articles, err
}

func (s *GormStore) FindArticle(ctx context.Context, uuid string) (*models.Article, error) {
	var article models.Article
	err := s.db.WithContext(ctx).
		Preload("Offer").
		Preload("Category").
		Preload("PalletType").
		Preload("PalletSheet").
		Preload("QualityModel").
		Preload("Materials").
		Preload("Machinery.Parameters").
		Preload("Machinery").
		Preload("CriticalIssues").
		Preload("PackagingInstructions").
		Preload("OperatingInstructions").
		Preload("PalletizingInstructions").
		Preload("CheckMaterials").
		Preload("Orders").
		Where("uuid = ?", uuid).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *GormStore) DeleteArticle(ctx context.Context, uuid string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Material{}, &models.CriticalIssue{},
			&models.PackagingInstruction{}, &models.OperatingInstruction{},
			&models.PalletizingInstruction{}, &models.CheckMaterial{},
			&models.ProductionOrder{},
		} {
			if err := tx.Where("article_uuid = ?", uuid).Delete(model).Error; err != nil {
				return err
			}
		}

		var machineryIDs []uint
		if err := tx.Model(&models.Machinery{}).Where("article_uuid = ?", uuid).Pluck("id", &machineryIDs).Error; err != nil {
			return err
		}
		if len(machineryIDs) > 0 {
			if err := tx.Where("machinery_id IN ?", machineryIDs).Delete(&models.MachineryParameter{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("article_uuid = ?", uuid).Delete(&models.Machinery{}).Error; err != nil {
			return err
		}

		result := tx.Where("uuid = ?", uuid).Delete(&models.Article{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *GormStore) FindOffer(ctx context.Context, id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := s.db.WithContext(ctx).First(&offer, id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

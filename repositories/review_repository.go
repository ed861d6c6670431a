package repositories

import (
	"context"
	"errors"

	"studycards.app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IReviewRepository tekrar zamanlaması ile ilgili sorgular.
type IReviewRepository interface {
	FindDueCards(ctx context.Context, today models.Date) ([]models.Card, error)
	FindAllCards(ctx context.Context) ([]models.Card, error)
	CountDue(ctx context.Context, today models.Date) (int64, error)
	// FindMetadataForUpdate satırları kilitleyerek getirir; card_id -> metadata.
	FindMetadataForUpdate(ctx context.Context, cardIDs []uint) (map[uint]models.CardMetadata, error)
	SaveMetadata(ctx context.Context, m *models.CardMetadata) error
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) IReviewRepository {
	return &ReviewRepository{db: db}
}

func NewReviewRepositoryTx(tx *gorm.DB) IReviewRepository {
	return &ReviewRepository{db: tx}
}

func (r *ReviewRepository) dueQuery(ctx context.Context, today models.Date) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Card{}).
		Joins("JOIN card_metadata ON card_metadata.card_id = flashcards.id").
		Where("card_metadata.next_review <= ?", today)
}

// FindDueCards next_review tarihi bugün veya öncesi olan kartları döndürür.
func (r *ReviewRepository) FindDueCards(ctx context.Context, today models.Date) ([]models.Card, error) {
	cards := []models.Card{}
	err := r.dueQuery(ctx, today).
		Preload("Metadata").
		Order("card_metadata.next_review ASC").
		Order("flashcards.id ASC").
		Select("flashcards.*").
		Find(&cards).Error
	return cards, err
}

func (r *ReviewRepository) FindAllCards(ctx context.Context) ([]models.Card, error) {
	cards := []models.Card{}
	err := r.db.WithContext(ctx).
		Joins("JOIN card_metadata ON card_metadata.card_id = flashcards.id").
		Preload("Metadata").
		Order("flashcards.id ASC").
		Select("flashcards.*").
		Find(&cards).Error
	return cards, err
}

func (r *ReviewRepository) CountDue(ctx context.Context, today models.Date) (int64, error) {
	var count int64
	err := r.dueQuery(ctx, today).Count(&count).Error
	return count, err
}

func (r *ReviewRepository) FindMetadataForUpdate(ctx context.Context, cardIDs []uint) (map[uint]models.CardMetadata, error) {
	out := make(map[uint]models.CardMetadata, len(cardIDs))
	if len(cardIDs) == 0 {
		return out, nil
	}

	var rows []models.CardMetadata
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("card_id IN ?", cardIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, m := range rows {
		out[m.CardID] = m
	}
	return out, nil
}

// SaveMetadata zamanlama alanlarını birincil anahtara göre yazar.
func (r *ReviewRepository) SaveMetadata(ctx context.Context, m *models.CardMetadata) error {
	if m == nil || m.CardID == 0 {
		return errors.New("kaydedilecek metadata geçerli değil")
	}
	result := r.db.WithContext(ctx).
		Model(&models.CardMetadata{}).
		Where("card_id = ?", m.CardID).
		Updates(map[string]interface{}{
			"interval":    m.Interval,
			"ease_factor": m.EaseFactor,
			"next_review": m.NextReview,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IReviewRepository = (*ReviewRepository)(nil)

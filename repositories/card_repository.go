package repositories

import (
	"context"
	"errors"
	"strings"

	"studycards.app/configs/configslog"
	"studycards.app/models"
	"studycards.app/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kart veritabanı işlemleri için arayüz.
type ICardRepository interface {
	GetAllCards(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error)
	GetCardByID(ctx context.Context, id uint) (*models.Card, error)
	// CreateCard kartı ve Metadata alanını birlikte yazar.
	CreateCard(ctx context.Context, card *models.Card) error
	UpdateCard(ctx context.Context, id uint, data map[string]interface{}) error
	DeleteCard(ctx context.Context, id uint) error
	GetCardCount(ctx context.Context) (int64, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) ICardRepository {
	return &CardRepository{db: db}
}

// NewCardRepositoryTx transaction içinde çalışan bir repository döndürür.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return &CardRepository{db: tx}
}

// GetAllCards kartları id sırasıyla ve sayfalayarak listeler. Q doluysa soru ve
// cevap metninde büyük/küçük harf duyarsız arama yapılır.
func (r *CardRepository) GetAllCards(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error) {
	var results []models.Card
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Card{})
	if q := strings.TrimSpace(params.Q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(question) LIKE ? OR LOWER(answer) LIKE ?", like, like)
	}
	// Count ve Find aynı koşullarla ayrı ifadeler üretsin.
	query = query.Session(&gorm.Session{})

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return []models.Card{}, 0, nil
	}

	err := query.
		Preload("Metadata").
		Order("id ASC").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&results).Error
	if err != nil {
		configslog.Log.Error("CardRepository.GetAllCards: DB error", zap.Error(err))
		return nil, 0, err
	}
	return results, totalCount, nil
}

// GetCardByID kartı Metadata ile birlikte getirir.
func (r *CardRepository) GetCardByID(ctx context.Context, id uint) (*models.Card, error) {
	var result models.Card
	err := r.db.WithContext(ctx).Preload("Metadata").First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	if card == nil {
		return errors.New("oluşturulacak kart nil olamaz")
	}
	// has-one ilişki: GORM önce flashcards satırını, sonra card_metadata satırını ekler.
	return r.db.WithContext(ctx).Create(card).Error
}

// UpdateCard yalnızca flashcards tablosundaki alanları günceller.
func (r *CardRepository) UpdateCard(ctx context.Context, id uint, data map[string]interface{}) error {
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	db := r.db.WithContext(ctx)
	result := db.Model(&models.Card{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := db.Model(&models.Card{}).Where("id = ?", id).Count(&exists).Error; err == nil && exists == 0 {
			return ErrNotFound
		}
		configslog.SLog.Debugf("CardRepository.UpdateCard: satır etkilenmedi (id %d)", id)
	}
	return nil
}

// DeleteCard önce metadata satırını, sonra kartı siler. Çağıran taraf bunu bir
// transaction içinde çalıştırmalıdır.
func (r *CardRepository) DeleteCard(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("card_id = ?", id).Delete(&models.CardMetadata{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Card{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CardRepository) GetCardCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Count(&count).Error
	return count, err
}

var _ ICardRepository = (*CardRepository)(nil)

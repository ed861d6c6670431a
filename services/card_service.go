package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"studycards.app/configs/configslog"
	"studycards.app/models"
	"studycards.app/pkg/queryparams"
	"studycards.app/pkg/validation"
	"studycards.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "card not found"
	ErrCardInvalidInput   CardServiceError = "invalid card input"
	ErrCardCreationFailed CardServiceError = "card could not be created"
	ErrCardUpdateFailed   CardServiceError = "card could not be updated"
	ErrCardDeletionFailed CardServiceError = "card could not be deleted"
)

// CardInput oluşturma ve güncelleme gövdesi.
type CardInput struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Normalize boşlukları kırpar; yalnızca boşluktan oluşan alanlar boş sayılır.
func (in CardInput) Normalize() CardInput {
	return CardInput{
		Question: strings.TrimSpace(in.Question),
		Answer:   strings.TrimSpace(in.Answer),
	}
}

// ICardService kart işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, in CardInput) (*models.Card, error)
	GetCard(ctx context.Context, id uint) (*models.Card, error)
	ListCards(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error)
	UpdateCard(ctx context.Context, id uint, in CardInput) (*models.Card, error)
	DeleteCard(ctx context.Context, id uint) error
	CountCards(ctx context.Context) (int64, error)
	CountDue(ctx context.Context) (int64, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	db         *gorm.DB
	repo       repositories.ICardRepository
	reviewRepo repositories.IReviewRepository
	clock      Clock
}

func NewCardService(db *gorm.DB, clock Clock) ICardService {
	return &CardService{
		db:         db,
		repo:       repositories.NewCardRepository(db),
		reviewRepo: repositories.NewReviewRepository(db),
		clock:      clock,
	}
}

func validateCardInput(in CardInput) (CardInput, error) {
	in = in.Normalize()
	if err := validation.ValidateStruct(in); err != nil {
		return in, fmt.Errorf("%w: %v", ErrCardInvalidInput, err)
	}
	return in, nil
}

// CreateCard kartı ve varsayılan metadata'yı TEK BİR TRANSACTION içinde oluşturur.
func (s *CardService) CreateCard(ctx context.Context, in CardInput) (*models.Card, error) {
	in, err := validateCardInput(in)
	if err != nil {
		return nil, err
	}

	card := &models.Card{
		Question: in.Question,
		Answer:   in.Answer,
		Metadata: models.NewCardMetadata(s.clock.Today()),
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewCardRepositoryTx(tx).CreateCard(ctx, card); err != nil {
			configslog.Log.Error("Kart oluşturulurken transaction hatası", zap.Error(err))
			return ErrCardCreationFailed
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Kart başarıyla oluşturuldu: ID %d", card.ID)
	return card, nil
}

func (s *CardService) GetCard(ctx context.Context, id uint) (*models.Card, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: invalid id", ErrCardInvalidInput)
	}
	card, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("Kart alınırken hata", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (s *CardService) ListCards(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error) {
	params.Validate()
	cards, total, err := s.repo.GetAllCards(ctx, params)
	if err != nil {
		configslog.Log.Error("Kartlar listelenirken hata", zap.Error(err))
		return nil, 0, err
	}
	return cards, total, nil
}

// UpdateCard soru ve cevabı günceller; tekrar zamanlaması değişmez.
func (s *CardService) UpdateCard(ctx context.Context, id uint, in CardInput) (*models.Card, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: invalid id", ErrCardInvalidInput)
	}
	in, err := validateCardInput(in)
	if err != nil {
		return nil, err
	}

	var updated *models.Card
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("UpdateCard: kayıt alınamadı (kilitli)", zap.Uint("id", id), zap.Error(err))
			return err
		}

		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		if err := cardRepoTx.UpdateCard(ctx, id, map[string]interface{}{
			"question": in.Question,
			"answer":   in.Answer,
		}); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("Kart güncellenirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrCardUpdateFailed
		}

		updated, err = cardRepoTx.GetCardByID(ctx, id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Kart başarıyla güncellendi: ID %d", id)
	return updated, nil
}

// DeleteCard kartı ve metadata'sını TEK BİR TRANSACTION içinde siler.
func (s *CardService) DeleteCard(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: invalid id", ErrCardInvalidInput)
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewCardRepositoryTx(tx).DeleteCard(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			configslog.Log.Error("Kart silinirken transaction hatası", zap.Uint("id", id), zap.Error(err))
			return ErrCardDeletionFailed
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	configslog.SLog.Infof("Kart başarıyla silindi: ID %d", id)
	return nil
}

func (s *CardService) CountCards(ctx context.Context) (int64, error) {
	return s.repo.GetCardCount(ctx)
}

// CountDue bugün tekrar edilmesi gereken kart sayısı.
func (s *CardService) CountDue(ctx context.Context) (int64, error) {
	return s.reviewRepo.CountDue(ctx, s.clock.Today())
}

var _ ICardService = (*CardService)(nil)

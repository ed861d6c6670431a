package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"studycards.app/configs/configslog"
	"studycards.app/models"
	"studycards.app/pkg/answercheck"
	"studycards.app/pkg/srs"
	"studycards.app/pkg/validation"
	"studycards.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReviewServiceError string

func (e ReviewServiceError) Error() string { return string(e) }

const (
	ErrReviewEmptyBatch   ReviewServiceError = "updates must be a non-empty array"
	ErrReviewInvalidInput ReviewServiceError = "invalid review update"
	ErrReviewCardNotFound ReviewServiceError = "card not found"
	ErrReviewUpdateFailed ReviewServiceError = "review results could not be saved"
)

// ReviewUpdate bir kartın tekrar sonucu. Interval veya EaseFactor gönderilmezse
// veritabanındaki değer kullanılır.
type ReviewUpdate struct {
	CardID     uint     `json:"card_id" validate:"required"`
	IsCorrect  *bool    `json:"is_correct" validate:"required"`
	Interval   *int     `json:"interval" validate:"omitempty,gte=0,lte=36500"`
	EaseFactor *float64 `json:"ease_factor" validate:"omitempty,gt=0,lte=1000"`
}

// AnswerResult yazılan cevabın kontrol sonucu.
type AnswerResult struct {
	CardID   uint   `json:"card_id"`
	Correct  bool   `json:"correct"`
	Expected string `json:"expected"`
}

type IReviewService interface {
	GetDueCards(ctx context.Context) ([]models.ReviewCard, error)
	GetAllCards(ctx context.Context) ([]models.ReviewCard, error)
	ApplyReviewBatch(ctx context.Context, updates []ReviewUpdate) ([]models.CardMetadata, error)
	CheckAnswer(ctx context.Context, cardID uint, answer string) (*AnswerResult, error)
}

type ReviewService struct {
	db       *gorm.DB
	repo     repositories.IReviewRepository
	cardRepo repositories.ICardRepository
	clock    Clock
}

func NewReviewService(db *gorm.DB, clock Clock) IReviewService {
	return &ReviewService{
		db:       db,
		repo:     repositories.NewReviewRepository(db),
		cardRepo: repositories.NewCardRepository(db),
		clock:    clock,
	}
}

// GetDueCards next_review tarihi bugün veya öncesi olan kartlar; next_review, sonra id sırasıyla.
func (s *ReviewService) GetDueCards(ctx context.Context) ([]models.ReviewCard, error) {
	cards, err := s.repo.FindDueCards(ctx, s.clock.Today())
	if err != nil {
		configslog.Log.Error("Tekrar zamanı gelen kartlar alınamadı", zap.Error(err))
		return nil, err
	}
	return toReviewCards(cards), nil
}

func (s *ReviewService) GetAllCards(ctx context.Context) ([]models.ReviewCard, error) {
	cards, err := s.repo.FindAllCards(ctx)
	if err != nil {
		configslog.Log.Error("Kartlar alınamadı", zap.Error(err))
		return nil, err
	}
	return toReviewCards(cards), nil
}

func toReviewCards(cards []models.Card) []models.ReviewCard {
	out := make([]models.ReviewCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, models.NewReviewCard(c))
	}
	return out
}

// ApplyReviewBatch her sonucu sırayla uygular ve hepsini TEK BİR TRANSACTION içinde
// yazar. Bilinmeyen bir kart veya yazma hatası tüm grubu geri alır. Aynı kart birden
// fazla kez geçerse sonuçlar sırayla birbirinin üzerine uygulanır.
func (s *ReviewService) ApplyReviewBatch(ctx context.Context, updates []ReviewUpdate) ([]models.CardMetadata, error) {
	if len(updates) == 0 {
		return nil, ErrReviewEmptyBatch
	}
	ids := make([]uint, 0, len(updates))
	seen := make(map[uint]bool, len(updates))
	for i, u := range updates {
		if err := validation.ValidateStruct(u); err != nil {
			return nil, fmt.Errorf("%w: updates[%d]: %v", ErrReviewInvalidInput, i, err)
		}
		if !seen[u.CardID] {
			seen[u.CardID] = true
			ids = append(ids, u.CardID)
		}
	}

	today := s.clock.Today()
	var saved []models.CardMetadata

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewReviewRepositoryTx(tx)

		current, err := repoTx.FindMetadataForUpdate(ctx, ids)
		if err != nil {
			configslog.Log.Error("Metadata kilitlenemedi", zap.Error(err))
			return ErrReviewUpdateFailed
		}

		for _, u := range updates {
			m, ok := current[u.CardID]
			if !ok {
				return fmt.Errorf("%w: id %d", ErrReviewCardNotFound, u.CardID)
			}
			if u.Interval != nil {
				m.Interval = *u.Interval
			}
			if u.EaseFactor != nil {
				m.EaseFactor = *u.EaseFactor
			}
			srs.Apply(&m, *u.IsCorrect, today)
			current[u.CardID] = m
		}

		saved = make([]models.CardMetadata, 0, len(ids))
		for _, id := range ids {
			m := current[id]
			if err := repoTx.SaveMetadata(ctx, &m); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return fmt.Errorf("%w: id %d", ErrReviewCardNotFound, id)
				}
				configslog.Log.Error("Metadata yazılamadı", zap.Uint("card_id", id), zap.Error(err))
				return ErrReviewUpdateFailed
			}
			saved = append(saved, m)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("%d kartın tekrar sonucu kaydedildi", len(saved))
	return saved, nil
}

// CheckAnswer yazılan cevabı kayıtlı cevapla gevşek biçimde karşılaştırır.
func (s *ReviewService) CheckAnswer(ctx context.Context, cardID uint, answer string) (*AnswerResult, error) {
	if cardID == 0 {
		return nil, fmt.Errorf("%w: card_id is required", ErrReviewInvalidInput)
	}
	card, err := s.cardRepo.GetCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReviewCardNotFound
		}
		return nil, err
	}

	return &AnswerResult{
		CardID:   card.ID,
		Correct:  answercheck.Match(strings.TrimSpace(answer), card.Answer),
		Expected: card.Answer,
	}, nil
}

var _ IReviewService = (*ReviewService)(nil)

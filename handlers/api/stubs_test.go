package handlers

import (
	"context"
	"time"

	"studycards.app/models"
	"studycards.app/pkg/authtoken"
	"studycards.app/pkg/queryparams"
	"studycards.app/services"
)

// Testlerde yalnızca ihtiyaç duyulan metotlar doldurulur.

type stubCardService struct {
	services.ICardService
	list   func(params queryparams.ListParams) ([]models.Card, int64, error)
	get    func(id uint) (*models.Card, error)
	create func(in services.CardInput) (*models.Card, error)
	update func(id uint, in services.CardInput) (*models.Card, error)
	delete func(id uint) error
}

func (s *stubCardService) ListCards(_ context.Context, params queryparams.ListParams) ([]models.Card, int64, error) {
	return s.list(params)
}

func (s *stubCardService) GetCard(_ context.Context, id uint) (*models.Card, error) {
	return s.get(id)
}

func (s *stubCardService) CreateCard(_ context.Context, in services.CardInput) (*models.Card, error) {
	return s.create(in)
}

func (s *stubCardService) UpdateCard(_ context.Context, id uint, in services.CardInput) (*models.Card, error) {
	return s.update(id, in)
}

func (s *stubCardService) DeleteCard(_ context.Context, id uint) error {
	return s.delete(id)
}

type stubReviewService struct {
	services.IReviewService
	due   []models.ReviewCard
	apply func(updates []services.ReviewUpdate) ([]models.CardMetadata, error)
	check func(id uint, answer string) (*services.AnswerResult, error)
}

func (s *stubReviewService) GetDueCards(context.Context) ([]models.ReviewCard, error) {
	return s.due, nil
}

func (s *stubReviewService) GetAllCards(context.Context) ([]models.ReviewCard, error) {
	return s.due, nil
}

func (s *stubReviewService) ApplyReviewBatch(_ context.Context, updates []services.ReviewUpdate) ([]models.CardMetadata, error) {
	return s.apply(updates)
}

func (s *stubReviewService) CheckAnswer(_ context.Context, id uint, answer string) (*services.AnswerResult, error) {
	return s.check(id, answer)
}

type stubAuthService struct {
	register func(in services.RegisterInput) (*models.User, error)
	login    func(in services.LoginInput) (*models.User, string, error)
	verify   func(token string) (*authtoken.Claims, error)
}

func (s *stubAuthService) Register(_ context.Context, in services.RegisterInput) (*models.User, error) {
	return s.register(in)
}

func (s *stubAuthService) Login(_ context.Context, in services.LoginInput) (*models.User, string, error) {
	return s.login(in)
}

func (s *stubAuthService) VerifyToken(token string) (*authtoken.Claims, error) {
	return s.verify(token)
}

func (s *stubAuthService) TokenTTL() time.Duration { return 2 * time.Hour }

type stubImportService struct {
	calls    int
	filename string
	data     []byte
	cards    []models.Card
	err      error
}

func (s *stubImportService) ImportFile(_ context.Context, filename, _ string, data []byte) ([]models.Card, error) {
	s.calls++
	s.filename = filename
	s.data = data
	return s.cards, s.err
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studycards.app/configs/configslog"
	"studycards.app/models"
	"studycards.app/pkg/authtoken"
	"studycards.app/pkg/validation"
	"studycards.app/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidInput    AuthServiceError = "invalid input"
	ErrEmailExists         AuthServiceError = "email is already registered"
	ErrInvalidCredentials  AuthServiceError = "invalid email or password"
	ErrInvalidToken        AuthServiceError = "invalid or expired token"
	ErrRegistrationFailed  AuthServiceError = "registration failed"
	ErrTokenIssuanceFailed AuthServiceError = "token could not be issued"
)

// passwordCost bcrypt maliyeti.
const passwordCost = bcrypt.DefaultCost

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type IAuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, in LoginInput) (*models.User, string, error)
	VerifyToken(token string) (*authtoken.Claims, error)
	TokenTTL() time.Duration
}

type AuthService struct {
	repo   repositories.IUserRepository
	signer *authtoken.Signer
}

func NewAuthService(db *gorm.DB, signer *authtoken.Signer) IAuthService {
	return &AuthService{
		repo:   repositories.NewUserRepository(db),
		signer: signer,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register yeni kullanıcıyı bcrypt ile hash'lenmiş parola ile kaydeder.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthInvalidInput, err)
	}

	exists, err := s.repo.EmailExists(ctx, in.Email)
	if err != nil {
		configslog.Log.Error("E-posta kontrolü başarısız", zap.Error(err))
		return nil, ErrRegistrationFailed
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		configslog.Log.Error("Parola hash'lenemedi", zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	user := &models.User{Name: in.Name, Email: in.Email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, user); err != nil {
		// Eşzamanlı kayıtta unique index ihlali.
		if exists, checkErr := s.repo.EmailExists(ctx, in.Email); checkErr == nil && exists {
			return nil, ErrEmailExists
		}
		configslog.Log.Error("Kullanıcı oluşturulamadı", zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydedildi: ID %d", user.ID)
	return user, nil
}

// Login bilinmeyen e-posta ve yanlış parola için aynı hatayı döndürür.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrAuthInvalidInput, err)
	}

	user, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.signer.Issue(user.ID, user.Email)
	if err != nil {
		configslog.Log.Error("Token üretilemedi", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, "", ErrTokenIssuanceFailed
	}
	return user, token, nil
}

func (s *AuthService) VerifyToken(token string) (*authtoken.Claims, error) {
	claims, err := s.signer.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.signer.TTL()
}

var _ IAuthService = (*AuthService)(nil)

package repositories

import (
	"context"
	"errors"
	"strings"

	"studycards.app/configs/configslog"
	"studycards.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("oluşturulacak kullanıcı nil olamaz")
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail e-posta adresini küçük harfe çevirerek arar.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error
	return count > 0, err
}

var _ IUserRepository = (*UserRepository)(nil)

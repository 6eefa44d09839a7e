package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/twisterdot/leaderboard/internal/apperrors"
)

type Repository interface {
	CreateUser(ctx context.Context, username, password string) (*User, error)
	ValidateUser(ctx context.Context, username, password string) (*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	BestScore(ctx context.Context, id uint) (int, error)
}

// dummyHash is a bcrypt hash of a value no user can submit. Login against an
// unknown username still pays one bcrypt comparison so that the timing of the
// failure does not reveal whether the account exists.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("twister-dummy-password"), 14)
	if err != nil {
		panic(err)
	}
	return h
}()

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) CreateUser(ctx context.Context, username, password string) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error hashing password", err)
	}

	newUser := User{
		Username: username,
		Password: string(hashed),
	}
	if err := r.db.WithContext(ctx).Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.DuplicateAccount()
		}
		return nil, apperrors.StorageUnavailable(err)
	}

	return &newUser, nil
}

func (r *GormRepository) ValidateUser(ctx context.Context, username, password string) (*User, error) {
	var u User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, apperrors.InvalidCredentials()
	}
	if result.Error != nil {
		return nil, apperrors.StorageUnavailable(result.Error)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperrors.InvalidCredentials()
	}
	return &u, nil
}

func (r *GormRepository) GetUser(ctx context.Context, id uint) (*User, error) {
	var u User
	result := r.db.WithContext(ctx).First(&u, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(404, "user not found", result.Error)
	}
	if result.Error != nil {
		return nil, apperrors.StorageUnavailable(result.Error)
	}
	return &u, nil
}

func (r *GormRepository) BestScore(ctx context.Context, id uint) (int, error) {
	var best int
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(score), 0) FROM score_records WHERE user_id = ?", id).
		Scan(&best).Error
	if err != nil {
		return 0, apperrors.StorageUnavailable(err)
	}
	return best, nil
}

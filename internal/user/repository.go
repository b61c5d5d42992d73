package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
)

type UserRepository interface {
	Create(username string) (*User, error)
	FindByID(id string) (*User, error)
	FindByUsername(username string) (*User, error)
	TopByHighestScore(limit int) ([]LeaderboardEntry, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(username string) (*User, error) {
	newUser := User{
		ID:       uuid.NewString(),
		Username: username,
	}
	if err := r.db.Create(&newUser).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error creating user", err)
	}
	return &newUser, nil
}

func (r *gormUserRepository) FindByID(id string) (*User, error) {
	var u User
	result := r.db.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching user", result.Error)
	}
	return &u, nil
}

func (r *gormUserRepository) FindByUsername(username string) (*User, error) {
	var u User
	result := r.db.Where("username = ?", username).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching user", result.Error)
	}
	return &u, nil
}

func (r *gormUserRepository) TopByHighestScore(limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.db.Model(&User{}).
		Select("username", "highest_score", "games_played").
		Order("highest_score DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "Error fetching leaderboard", err)
	}
	return entries, nil
}

package user

import (
	"log/slog"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
)

const leaderboardSize = 10

type UserService struct {
	repo  UserRepository
	cache LeaderboardCache
}

func NewUserService(repo UserRepository, cache LeaderboardCache) *UserService {
	return &UserService{repo: repo, cache: cache}
}

// Register creates a user with the given username. A taken username is not
// an error: the existing user is returned and created reports false.
func (s *UserService) Register(username string) (*User, bool, error) {
	if username == "" {
		return nil, false, apperrors.NewAppError(400, "Username is required", nil)
	}

	existing, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := s.repo.Create(username)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// CreateUser inserts unconditionally; a taken username surfaces as the
// store's uniqueness violation.
func (s *UserService) CreateUser(username string) (*User, error) {
	if username == "" {
		return nil, apperrors.NewAppError(400, "Username is required", nil)
	}
	return s.repo.Create(username)
}

func (s *UserService) CheckUsername(username string) (*UsernameCheck, error) {
	if username == "" {
		return nil, apperrors.NewAppError(400, "Username is required", nil)
	}

	existing, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &UsernameCheck{Available: true}, nil
	}
	return &UsernameCheck{Available: false, UserID: existing.ID}, nil
}

func (s *UserService) GetStats(userID string) (*User, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewAppError(404, "User not found", nil)
	}
	return u, nil
}

// Leaderboard serves the cached top list when present; cache failures only
// degrade to a database read.
func (s *UserService) Leaderboard() ([]LeaderboardEntry, error) {
	cached, err := s.cache.Get()
	if err != nil {
		slog.Warn("leaderboard cache read failed", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	entries, err := s.repo.TopByHighestScore(leaderboardSize)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(entries); err != nil {
		slog.Warn("leaderboard cache write failed", "error", err)
	}
	return entries, nil
}

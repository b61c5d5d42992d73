package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
)

func newTestService() (*UserService, *UserRepositoryMock, *LeaderboardCacheMock) {
	repo := new(UserRepositoryMock)
	cache := new(LeaderboardCacheMock)
	return NewUserService(repo, cache), repo, cache
}

func TestRegister_NewUser(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindByUsername", "ana").Return(nil, nil)
	repo.On("Create", "ana").Return(&User{ID: "u1", Username: "ana"}, nil)

	u, created, err := svc.Register("ana")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "ana", u.Username)
}

func TestRegister_DuplicateReturnsExistingUser(t *testing.T) {
	svc, repo, _ := newTestService()
	existing := &User{ID: "u1", Username: "ana"}
	repo.On("FindByUsername", "ana").Return(existing, nil)

	u, created, err := svc.Register("ana")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing, u)
	repo.AssertNotCalled(t, "Create", "ana")
}

func TestRegister_EmptyUsername(t *testing.T) {
	svc, _, _ := newTestService()
	_, _, err := svc.Register("")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Code)
}

func TestCreateUser_NoDuplicateCheck(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("Create", "ana").Return(&User{ID: "u1", Username: "ana"}, nil)

	u, err := svc.CreateUser("ana")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	repo.AssertNotCalled(t, "FindByUsername", "ana")
}

func TestCheckUsername(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindByUsername", "taken").Return(&User{ID: "u1", Username: "taken"}, nil)
	repo.On("FindByUsername", "free").Return(nil, nil)

	check, err := svc.CheckUsername("taken")
	require.NoError(t, err)
	require.False(t, check.Available)
	require.Equal(t, "u1", check.UserID)

	check, err = svc.CheckUsername("free")
	require.NoError(t, err)
	require.True(t, check.Available)
	require.Empty(t, check.UserID)
}

func TestGetStats_UserNotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.On("FindByID", "ghost").Return(nil, nil)

	_, err := svc.GetStats("ghost")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Code)
}

func TestLeaderboard_CacheHitSkipsDatabase(t *testing.T) {
	svc, repo, cache := newTestService()
	cached := []LeaderboardEntry{{Username: "ana", HighestScore: 120, GamesPlayed: 3}}
	cache.On("Get").Return(cached, nil)

	entries, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Equal(t, cached, entries)
	repo.AssertNotCalled(t, "TopByHighestScore", 10)
}

func TestLeaderboard_CacheMissFillsCache(t *testing.T) {
	svc, repo, cache := newTestService()
	fresh := []LeaderboardEntry{{Username: "bo", HighestScore: 200, GamesPlayed: 7}}
	cache.On("Get").Return(nil, nil)
	repo.On("TopByHighestScore", 10).Return(fresh, nil)
	cache.On("Set", fresh).Return(nil)

	entries, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Equal(t, fresh, entries)
	cache.AssertCalled(t, "Set", fresh)
}

func TestLeaderboard_CacheFailureFallsBackToDatabase(t *testing.T) {
	svc, repo, cache := newTestService()
	fresh := []LeaderboardEntry{{Username: "cy", HighestScore: 60, GamesPlayed: 1}}
	cache.On("Get").Return(nil, errors.New("redis down"))
	repo.On("TopByHighestScore", 10).Return(fresh, nil)
	cache.On("Set", fresh).Return(errors.New("redis down"))

	entries, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Equal(t, fresh, entries)
}

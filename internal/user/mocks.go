package user

import "github.com/stretchr/testify/mock"

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) Create(username string) (*User, error) {
	args := m.Called(username)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *UserRepositoryMock) FindByID(id string) (*User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *UserRepositoryMock) FindByUsername(username string) (*User, error) {
	args := m.Called(username)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *UserRepositoryMock) TopByHighestScore(limit int) ([]LeaderboardEntry, error) {
	args := m.Called(limit)
	entries, _ := args.Get(0).([]LeaderboardEntry)
	return entries, args.Error(1)
}

type LeaderboardCacheMock struct {
	mock.Mock
}

func (m *LeaderboardCacheMock) Get() ([]LeaderboardEntry, error) {
	args := m.Called()
	entries, _ := args.Get(0).([]LeaderboardEntry)
	return entries, args.Error(1)
}

func (m *LeaderboardCacheMock) Set(entries []LeaderboardEntry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *LeaderboardCacheMock) Invalidate() error {
	args := m.Called()
	return args.Error(0)
}

package game

import (
	"github.com/stretchr/testify/mock"

	"github.com/jsarmiento/globetrotter/internal/destination"
	"github.com/jsarmiento/globetrotter/internal/user"
)

type GameRepositoryMock struct {
	mock.Mock
}

func (m *GameRepositoryMock) CreateSession(s *GameSession) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *GameRepositoryMock) SessionByID(id string) (*GameSession, error) {
	args := m.Called(id)
	session, _ := args.Get(0).(*GameSession)
	return session, args.Error(1)
}

func (m *GameRepositoryMock) SessionWithRounds(id string) (*GameSession, error) {
	args := m.Called(id)
	session, _ := args.Get(0).(*GameSession)
	return session, args.Error(1)
}

func (m *GameRepositoryMock) SessionByShareCode(code string) (*GameSession, error) {
	args := m.Called(code)
	session, _ := args.Get(0).(*GameSession)
	return session, args.Error(1)
}

func (m *GameRepositoryMock) RecordAnswer(round *GameRound) (int, int, error) {
	args := m.Called(round)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *GameRepositoryMock) FoldUserStats(userID string, gameScore int) error {
	args := m.Called(userID, gameScore)
	return args.Error(0)
}

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) Create(username string) (*user.User, error) {
	args := m.Called(username)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserRepositoryMock) FindByID(id string) (*user.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserRepositoryMock) FindByUsername(username string) (*user.User, error) {
	args := m.Called(username)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserRepositoryMock) TopByHighestScore(limit int) ([]user.LeaderboardEntry, error) {
	args := m.Called(limit)
	entries, _ := args.Get(0).([]user.LeaderboardEntry)
	return entries, args.Error(1)
}

type DestinationRepositoryMock struct {
	mock.Mock
}

func (m *DestinationRepositoryMock) FindByID(id string) (*destination.Destination, error) {
	args := m.Called(id)
	d, _ := args.Get(0).(*destination.Destination)
	return d, args.Error(1)
}

func (m *DestinationRepositoryMock) Random() (*destination.Destination, error) {
	args := m.Called()
	d, _ := args.Get(0).(*destination.Destination)
	return d, args.Error(1)
}

func (m *DestinationRepositoryMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *DestinationRepositoryMock) NextUnanswered(excludeIDs []string) (*destination.Destination, error) {
	args := m.Called(excludeIDs)
	d, _ := args.Get(0).(*destination.Destination)
	return d, args.Error(1)
}

func (m *DestinationRepositoryMock) Create(d *destination.Destination) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *DestinationRepositoryMock) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type LeaderboardCacheMock struct {
	mock.Mock
}

func (m *LeaderboardCacheMock) Get() ([]user.LeaderboardEntry, error) {
	args := m.Called()
	entries, _ := args.Get(0).([]user.LeaderboardEntry)
	return entries, args.Error(1)
}

func (m *LeaderboardCacheMock) Set(entries []user.LeaderboardEntry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *LeaderboardCacheMock) Invalidate() error {
	args := m.Called()
	return args.Error(0)
}

type NotifierMock struct {
	mock.Mock
}

func (m *NotifierMock) Publish(sessionID string, msg GameMessage) {
	m.Called(sessionID, msg)
}

package game

import (
	"time"

	"github.com/jsarmiento/globetrotter/internal/user"
)

type GameSession struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"not null;index" json:"user_id"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	ShareCode      string    `gorm:"uniqueIndex;not null" json:"share_code"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`

	User   *user.User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rounds []GameRound `gorm:"foreignKey:SessionID" json:"rounds,omitempty"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// GameRound is insert-only: one row per answer submission.
type GameRound struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	SessionID     string    `gorm:"not null;index" json:"session_id"`
	DestinationID string    `gorm:"not null" json:"destination_id"`
	UserAnswer    string    `json:"user_answer"`
	IsCorrect     bool      `json:"is_correct"`
	TimeTaken     int       `json:"time_taken"`
	CreatedAt     time.Time `json:"created_at"`
}

func (GameRound) TableName() string {
	return "game_rounds"
}

type StartGameRequest struct {
	UserID string `json:"userId"`
}

type AnswerRequest struct {
	DestinationID string `json:"destinationId"`
	Answer        string `json:"answer"`
	TimeTaken     int    `json:"timeTaken"`
}

type AnswerStats struct {
	CorrectAnswers int `json:"correct_answers"`
	TotalAttempts  int `json:"total_attempts"`
}

type AnswerResult struct {
	IsCorrect bool        `json:"isCorrect"`
	Round     *GameRound  `json:"round"`
	Stats     AnswerStats `json:"stats"`
}

// RoundDestination is the public slice of a destination shown to the
// player; it never carries the stored answer fields beyond city/country,
// which the client needs to render the reveal.
type RoundDestination struct {
	ID      string   `json:"id"`
	City    string   `json:"city"`
	Country string   `json:"country"`
	Clues   []string `json:"clues"`
	FunFact []string `json:"fun_fact"`
	Trivia  []string `json:"trivia"`
	Options []string `json:"options"`
}

// CurrentRound identifies the question a player should answer next. The id
// is ephemeral and never persisted.
type CurrentRound struct {
	ID          string           `json:"id"`
	Destination RoundDestination `json:"destination"`
}

// GameState is the live view of a session: completeness is always derived
// from round count versus the current destination count, never stored.
type GameState struct {
	Session        *GameSession  `json:"session"`
	IsCompleted    bool          `json:"is_completed"`
	CorrectAnswers int           `json:"correct_answers"`
	TotalQuestions int           `json:"total_questions"`
	Rounds         []GameRound   `json:"rounds"`
	CurrentRound   *CurrentRound `json:"current_round,omitempty"`
}

type SharedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type SharedRound struct {
	IsCorrect bool `json:"is_correct"`
	TimeTaken int  `json:"time_taken"`
}

// SharedGame is the read-only third-party view of a session.
type SharedGame struct {
	ID             string        `json:"id"`
	Score          int           `json:"score"`
	CorrectAnswers int           `json:"correct_answers"`
	TotalQuestions int           `json:"total_questions"`
	ShareCode      string        `json:"share_code"`
	CreatedAt      time.Time     `json:"created_at"`
	User           SharedUser    `json:"user"`
	Rounds         []SharedRound `json:"rounds"`
}

// RoundEvent is the spectator-facing view of a just-submitted round.
type RoundEvent struct {
	IsCorrect bool        `json:"is_correct"`
	TimeTaken int         `json:"time_taken"`
	Stats     AnswerStats `json:"stats"`
}

// GameMessage is pushed to spectators watching a shared game.
type GameMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Notifier fans a game event out to whoever is watching the session.
type Notifier interface {
	Publish(sessionID string, msg GameMessage)
}

type NoopNotifier struct{}

func (NoopNotifier) Publish(string, GameMessage) {}

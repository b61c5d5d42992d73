package game

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
	"github.com/jsarmiento/globetrotter/internal/user"
)

type GameRepository interface {
	CreateSession(s *GameSession) error
	// SessionByID loads a session with its owning user; nil when absent.
	SessionByID(id string) (*GameSession, error)
	// SessionWithRounds additionally loads the full round list.
	SessionWithRounds(id string) (*GameSession, error)
	SessionByShareCode(code string) (*GameSession, error)
	// RecordAnswer inserts the round, recomputes the correct-answer count
	// from rounds and writes it back to the session, all in one
	// transaction. Score is only touched when the submitted answer was
	// correct. Returns the recomputed correct count and total round count.
	RecordAnswer(round *GameRound) (correct int, total int, err error)
	// FoldUserStats applies a finished game's score to the owner's
	// lifetime totals as a single atomic update.
	FoldUserStats(userID string, gameScore int) error
}

type gormGameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gormGameRepository{db: db}
}

func (r *gormGameRepository) CreateSession(s *GameSession) error {
	s.ID = uuid.NewString()
	if err := r.db.Create(s).Error; err != nil {
		return apperrors.NewAppError(500, "Error creating game session", err)
	}
	return nil
}

func (r *gormGameRepository) SessionByID(id string) (*GameSession, error) {
	return r.findSession("id = ?", id, false)
}

func (r *gormGameRepository) SessionWithRounds(id string) (*GameSession, error) {
	return r.findSession("id = ?", id, true)
}

func (r *gormGameRepository) SessionByShareCode(code string) (*GameSession, error) {
	return r.findSession("share_code = ?", code, true)
}

func (r *gormGameRepository) findSession(cond string, arg string, withRounds bool) (*GameSession, error) {
	query := r.db.Preload("User")
	if withRounds {
		query = query.Preload("Rounds")
	}

	var s GameSession
	result := query.Where(cond, arg).First(&s)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching game session", result.Error)
	}
	return &s, nil
}

func (r *gormGameRepository) RecordAnswer(round *GameRound) (int, int, error) {
	var correct, total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		round.ID = uuid.NewString()
		if err := tx.Create(round).Error; err != nil {
			return err
		}

		if err := tx.Model(&GameRound{}).
			Where("session_id = ?", round.SessionID).
			Count(&total).Error; err != nil {
			return err
		}
		if err := tx.Model(&GameRound{}).
			Where("session_id = ? AND is_correct = ?", round.SessionID, true).
			Count(&correct).Error; err != nil {
			return err
		}

		return tx.Model(&GameSession{}).
			Where("id = ?", round.SessionID).
			Updates(sessionUpdates(int(correct), round.IsCorrect)).Error
	})
	if err != nil {
		return 0, 0, apperrors.NewAppError(500, "Error recording answer", err)
	}
	return int(correct), int(total), nil
}

// sessionUpdates builds the per-answer session patch. correct_answers is
// always rewritten from the recomputed round count; score is only rewritten
// when the just-submitted answer was correct.
func sessionUpdates(correctAnswers int, wasCorrect bool) map[string]interface{} {
	updates := map[string]interface{}{"correct_answers": correctAnswers}
	if wasCorrect {
		updates["score"] = correctAnswers * pointsPerCorrectAnswer
	}
	return updates
}

func (r *gormGameRepository) FoldUserStats(userID string, gameScore int) error {
	err := r.db.Model(&user.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"score":         gorm.Expr("score + ?", gameScore),
			"games_played":  gorm.Expr("games_played + 1"),
			"highest_score": gorm.Expr("GREATEST(highest_score, ?)", gameScore),
		}).Error
	if err != nil {
		return apperrors.NewAppError(500, "Error updating user stats", err)
	}
	return nil
}

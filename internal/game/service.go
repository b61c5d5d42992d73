package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
	"github.com/jsarmiento/globetrotter/internal/destination"
	"github.com/jsarmiento/globetrotter/internal/user"
)

const (
	pointsPerCorrectAnswer = 20
	sessionLifetime        = 24 * time.Hour
)

// NoMoreQuestionsError is returned by GetGame when the round count says the
// game is still running but no unanswered destination exists (reference
// data shrank mid-game). It carries the completed-game summary so the
// handler can attach it to the 404 body.
type NoMoreQuestionsError struct {
	State *GameState
}

func (e *NoMoreQuestionsError) Error() string {
	return "no more questions available"
}

type GameService struct {
	repo         GameRepository
	users        user.UserRepository
	destinations destination.DestinationRepository
	leaderboard  user.LeaderboardCache
	notifier     Notifier
}

func NewGameService(
	repo GameRepository,
	users user.UserRepository,
	destinations destination.DestinationRepository,
	leaderboard user.LeaderboardCache,
	notifier Notifier,
) *GameService {
	return &GameService{
		repo:         repo,
		users:        users,
		destinations: destinations,
		leaderboard:  leaderboard,
		notifier:     notifier,
	}
}

// StartGame creates a session for the user with a fresh share code and the
// destination count snapshotted as total_questions.
func (s *GameService) StartGame(req *StartGameRequest) (*GameSession, error) {
	if req.UserID == "" {
		return nil, apperrors.NewAppError(400, "User ID is required", nil)
	}

	owner, err := s.users.FindByID(req.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewAppError(404, "User not found", nil)
	}

	total, err := s.destinations.Count()
	if err != nil {
		return nil, err
	}

	session := &GameSession{
		UserID:         req.UserID,
		Score:          0,
		TotalQuestions: int(total),
		ShareCode:      NewShareCode(),
		ExpiresAt:      time.Now().Add(sessionLifetime),
	}
	if err := s.repo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitAnswer records one round. Correctness is an exact, case-sensitive
// match against "<city>, <country>". The session's correct_answers is
// recomputed from rounds on every call; score is only rewritten when this
// answer was correct.
func (s *GameService) SubmitAnswer(sessionID string, req *AnswerRequest) (*AnswerResult, error) {
	dest, err := s.destinations.FindByID(req.DestinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, apperrors.NewAppError(404, "Destination not found", nil)
	}

	isCorrect := req.Answer == dest.City+", "+dest.Country

	round := &GameRound{
		SessionID:     sessionID,
		DestinationID: req.DestinationID,
		UserAnswer:    req.Answer,
		IsCorrect:     isCorrect,
		TimeTaken:     req.TimeTaken,
	}
	correct, total, err := s.repo.RecordAnswer(round)
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(sessionID, GameMessage{
		Type: "ROUND_RESULT",
		Payload: RoundEvent{
			IsCorrect: isCorrect,
			TimeTaken: req.TimeTaken,
			Stats: AnswerStats{
				CorrectAnswers: correct,
				TotalAttempts:  total,
			},
		},
	})

	return &AnswerResult{
		IsCorrect: isCorrect,
		Round:     round,
		Stats: AnswerStats{
			CorrectAnswers: correct,
			TotalAttempts:  total,
		},
	}, nil
}

// EndGame folds the session's score into the owner's lifetime totals. The
// fold is applied once per call and is deliberately not idempotent: ending
// the same session twice counts it twice.
func (s *GameService) EndGame(sessionID string) (*GameSession, error) {
	session, err := s.repo.SessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NewAppError(404, "Game session not found", nil)
	}

	if err := s.repo.FoldUserStats(session.UserID, session.Score); err != nil {
		return nil, err
	}

	if err := s.leaderboard.Invalidate(); err != nil {
		slog.Warn("leaderboard cache invalidation failed", "error", err)
	}

	s.notifier.Publish(session.ID, GameMessage{
		Type:    "GAME_ENDED",
		Payload: session,
	})

	return session, nil
}

// GetSharedGame resolves a share code to the read-only spectator view.
func (s *GameService) GetSharedGame(shareCode string) (*SharedGame, error) {
	session, err := s.repo.SessionByShareCode(shareCode)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NewAppError(404, "Shared game not found", nil)
	}

	shared := &SharedGame{
		ID:             session.ID,
		Score:          session.Score,
		CorrectAnswers: session.CorrectAnswers,
		TotalQuestions: session.TotalQuestions,
		ShareCode:      session.ShareCode,
		CreatedAt:      session.CreatedAt,
		Rounds:         make([]SharedRound, 0, len(session.Rounds)),
	}
	if session.User != nil {
		shared.User = SharedUser{ID: session.User.ID, Username: session.User.Username}
	}
	for _, r := range session.Rounds {
		shared.Rounds = append(shared.Rounds, SharedRound{
			IsCorrect: r.IsCorrect,
			TimeTaken: r.TimeTaken,
		})
	}
	return shared, nil
}

// GetGame computes the live state of a session. Completeness is derived by
// comparing the round count against the current destination count, which is
// re-queried on every call rather than read from total_questions.
func (s *GameService) GetGame(sessionID string) (*GameState, error) {
	session, err := s.repo.SessionWithRounds(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NewAppError(404, "Game session not found", nil)
	}

	rounds := session.Rounds
	totalAttempts := len(rounds)
	correctAnswers := 0
	for _, r := range rounds {
		if r.IsCorrect {
			correctAnswers++
		}
	}

	totalDestinations, err := s.destinations.Count()
	if err != nil {
		return nil, err
	}

	state := &GameState{
		Session:        session,
		CorrectAnswers: correctAnswers,
		TotalQuestions: int(totalDestinations),
		Rounds:         rounds,
	}

	if totalAttempts >= int(totalDestinations) {
		state.IsCompleted = true
		return state, nil
	}

	answered := make([]string, 0, len(rounds))
	for _, r := range rounds {
		answered = append(answered, r.DestinationID)
	}

	next, err := s.destinations.NextUnanswered(answered)
	if err != nil {
		return nil, err
	}
	if next == nil {
		// Fewer usable destinations than the count suggested; report the
		// game as finished inside a not-found response.
		state.IsCompleted = true
		return nil, &NoMoreQuestionsError{State: state}
	}

	state.CurrentRound = &CurrentRound{
		ID: uuid.NewString(),
		Destination: RoundDestination{
			ID:      next.ID,
			City:    next.City,
			Country: next.Country,
			Clues:   next.Clues,
			FunFact: next.FunFacts,
			Trivia:  next.Trivia,
			Options: next.Options,
		},
	}
	return state, nil
}

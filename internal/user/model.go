package user

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Score        int       `json:"score"`
	GamesPlayed  int       `json:"games_played"`
	HighestScore int       `json:"highest_score"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
}

type UsernameCheck struct {
	Available bool   `json:"available"`
	UserID    string `json:"userId,omitempty"`
}

type LeaderboardEntry struct {
	Username     string `json:"username"`
	HighestScore int    `json:"highest_score"`
	GamesPlayed  int    `json:"games_played"`
}

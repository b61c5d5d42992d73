package destination

import "time"

// Destination is immutable reference data for the guessing game; game logic
// only ever reads it.
type Destination struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	City      string    `gorm:"not null" json:"city"`
	Country   string    `gorm:"not null" json:"country"`
	Clues     []string  `gorm:"serializer:json" json:"clues"`
	FunFacts  []string  `gorm:"serializer:json" json:"fun_facts"`
	Trivia    []string  `gorm:"serializer:json" json:"trivia"`
	Options   []string  `gorm:"serializer:json" json:"options"`
	CreatedAt time.Time `json:"created_at"`
}

func (Destination) TableName() string {
	return "destinations"
}

type CreateRequest struct {
	City     string   `json:"city"`
	Country  string   `json:"country"`
	Clues    []string `json:"clues"`
	FunFacts []string `json:"fun_facts"`
	Trivia   []string `json:"trivia"`
	Options  []string `json:"options"`
}

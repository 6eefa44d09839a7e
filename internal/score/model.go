package score

import "time"

// Record is one submitted round result. Records are append-only: they are
// never updated or deleted, and ranking is computed over the full history.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Record) TableName() string {
	return "score_records"
}

// SubmitRequest binds the score as a pointer so a missing field can be told
// apart from an explicit zero.
type SubmitRequest struct {
	Score *int `json:"score"`
}

type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

package user

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Password    string    `gorm:"not null" json:"-"`
	GamesPlayed int       `gorm:"not null;default:0" json:"gamesPlayed"`
	TotalScore  int       `gorm:"not null;default:0" json:"totalScore"`
	CreatedAt   time.Time `json:"-"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type StatsResponse struct {
	Username    string `json:"username"`
	GamesPlayed int    `json:"gamesPlayed"`
	TotalScore  int    `json:"totalScore"`
	BestScore   int    `json:"bestScore"`
}

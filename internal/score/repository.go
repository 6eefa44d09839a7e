package score

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/twisterdot/leaderboard/internal/apperrors"
	"github.com/twisterdot/leaderboard/internal/user"
)

type Repository interface {
	AppendScore(ctx context.Context, userID uint, points int) error
	TopScores(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// AppendScore inserts the record and bumps the account counters in one
// transaction. The increments run SQL-side so concurrent submissions for the
// same account cannot lose updates.
func (r *GormRepository) AppendScore(ctx context.Context, userID uint, points int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := Record{UserID: userID, Score: points}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		result := tx.Model(&user.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"games_played": gorm.Expr("games_played + 1"),
			"total_score":  gorm.Expr("total_score + ?", points),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// token verified but the account row is gone: a stale identity
		return apperrors.Unauthenticated(err)
	}
	if err != nil {
		return apperrors.StorageUnavailable(err)
	}
	return nil
}

// TopScores ranks accounts by their best score over the full history,
// descending. Ties break on the earliest time the score was achieved, so the
// ordering is deterministic. Accounts with no records are excluded.
func (r *GormRepository) TopScores(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0, limit)
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.username AS name, b.best AS score
		FROM users u
		JOIN (
			SELECT user_id, MAX(score) AS best
			FROM score_records
			GROUP BY user_id
		) b ON b.user_id = u.id
		JOIN score_records sr ON sr.user_id = b.user_id AND sr.score = b.best
		GROUP BY u.id, u.username, b.best
		ORDER BY b.best DESC, MIN(sr.created_at) ASC
		LIMIT ?`, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.StorageUnavailable(err)
	}
	return entries, nil
}

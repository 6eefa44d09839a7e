package score

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/twisterdot/leaderboard/internal/apperrors"
	"github.com/twisterdot/leaderboard/internal/user"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, conn.AutoMigrate(&user.User{}, &Record{}))
	return conn
}

func seedUser(t *testing.T, conn *gorm.DB, name string) uint {
	t.Helper()
	u := user.User{Username: name, Password: "hash"}
	assert.NoError(t, conn.Create(&u).Error)
	return u.ID
}

func seedRecord(t *testing.T, conn *gorm.DB, userID uint, points int, at time.Time) {
	t.Helper()
	rec := Record{UserID: userID, Score: points, CreatedAt: at}
	assert.NoError(t, conn.Create(&rec).Error)
}

// Register alice and bob, alice submits 50 then 90, bob submits 75: the
// ranking reports each account's best score, not its latest.
func TestGormRepository_TopScores_BestOfHistory(t *testing.T) {
	conn := openTestDB(t)
	repo := NewGormRepository(conn)
	ctx := context.Background()

	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")

	assert.NoError(t, repo.AppendScore(ctx, alice, 50))
	assert.NoError(t, repo.AppendScore(ctx, bob, 75))
	assert.NoError(t, repo.AppendScore(ctx, alice, 90))

	entries, err := repo.TopScores(ctx, DefaultLimit)
	assert.NoError(t, err)
	assert.Equal(t, []LeaderboardEntry{
		{Name: "alice", Score: 90},
		{Name: "bob", Score: 75},
	}, entries)
}

func TestGormRepository_TopScores_TieBreakEarliestAchievement(t *testing.T) {
	conn := openTestDB(t)
	repo := NewGormRepository(conn)
	ctx := context.Background()

	carol := seedUser(t, conn, "carol")
	dave := seedUser(t, conn, "dave")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	// dave played first but reached the shared best score later than carol
	seedRecord(t, conn, dave, 70, base)
	seedRecord(t, conn, carol, 80, base.Add(1*time.Minute))
	seedRecord(t, conn, dave, 80, base.Add(2*time.Minute))

	entries, err := repo.TopScores(ctx, DefaultLimit)
	assert.NoError(t, err)
	assert.Equal(t, []LeaderboardEntry{
		{Name: "carol", Score: 80},
		{Name: "dave", Score: 80},
	}, entries)
}

func TestGormRepository_TopScores_LimitAndOrdering(t *testing.T) {
	conn := openTestDB(t)
	repo := NewGormRepository(conn)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 12; i++ {
		id := seedUser(t, conn, fmt.Sprintf("player%02d", i))
		seedRecord(t, conn, id, i*10, base.Add(time.Duration(i)*time.Second))
	}

	entries, err := repo.TopScores(ctx, DefaultLimit)
	assert.NoError(t, err)
	assert.Len(t, entries, DefaultLimit)
	assert.Equal(t, LeaderboardEntry{Name: "player12", Score: 120}, entries[0])
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
}

func TestGormRepository_TopScores_EmptyStore(t *testing.T) {
	conn := openTestDB(t)
	repo := NewGormRepository(conn)

	entries, err := repo.TopScores(context.Background(), DefaultLimit)
	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

// Accounts with no score history are excluded, not listed at zero.
func TestGormRepository_TopScores_ExcludesAccountsWithoutRecords(t *testing.T) {
	conn := openTestDB(t)
	repo := NewGormRepository(conn)
	ctx := context.Background()

	alice := seedUser(t, conn, "alice")
	seedUser(t, conn, "idle")
	assert.NoError(t, repo.AppendScore(ctx, alice, 30))

	entries, err := repo.TopScores(ctx, DefaultLimit)
	assert.NoError(t, err)
	assert.Equal(t, []LeaderboardEntry{{Name: "alice", Score: 30}}, entries)
}

func TestGormRepository_AppendScore_UpdatesCounters(t *testing.T) {
	conn := openTestDB(t)
	repo := NewGormRepository(conn)
	ctx := context.Background()

	alice := seedUser(t, conn, "alice")
	assert.NoError(t, repo.AppendScore(ctx, alice, 50))
	assert.NoError(t, repo.AppendScore(ctx, alice, 90))

	var u user.User
	assert.NoError(t, conn.First(&u, alice).Error)
	assert.Equal(t, 2, u.GamesPlayed)
	assert.Equal(t, 140, u.TotalScore)

	var count int64
	assert.NoError(t, conn.Model(&Record{}).Where("user_id = ?", alice).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

// An append for a nonexistent account rolls the whole transaction back: no
// orphaned record survives.
func TestGormRepository_AppendScore_UnknownAccountRollsBack(t *testing.T) {
	conn := openTestDB(t)
	repo := NewGormRepository(conn)

	err := repo.AppendScore(context.Background(), 9999, 10)
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)

	var count int64
	assert.NoError(t, conn.Model(&Record{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

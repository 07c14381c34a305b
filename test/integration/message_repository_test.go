package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"exposurelog-be/internal/entity"
	"exposurelog-be/internal/model"
	"exposurelog-be/internal/repository/specification"
	"exposurelog-be/internal/repository/unitofwork"
	"exposurelog-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the repository stack against a real Postgres: array columns,
// the generated is_valid column and the conditional invalidation UPDATE
// all need the real database to be meaningfully tested.
func TestMessageRepositoryIntegration(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	repo := uowFactory.NewUnitOfWork(ctx).MessageRepository()

	userID := "integration-" + uuid.NewString()
	message := &entity.Message{
		Id:           uuid.New(),
		SiteId:       "test",
		ObsId:        "LC_O_20240610_000042",
		Instrument:   "LSSTCam",
		DayObs:       20240610,
		SeqNum:       42,
		MessageText:  "integration test message",
		Level:        20,
		Tags:         []string{"integration", "weather_alert"},
		Urls:         []string{},
		UserId:       userID,
		UserAgent:    "go-test",
		IsHuman:      false,
		ExposureFlag: entity.ExposureFlagNone,
		DateAdded:    time.Now().UTC(),
	}

	require.NoError(t, repo.Create(ctx, message))
	t.Cleanup(func() {
		gormDB.Where("user_id = ?", userID).Delete(&model.Message{})
	})

	t.Run("read back by id", func(t *testing.T) {
		found, err := repo.FindOne(ctx, specification.ByID{ID: message.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []string{"integration", "weather_alert"}, found.Tags)
		assert.True(t, found.IsValid, "generated column must report a fresh message as valid")
	})

	t.Run("array overlap filter", func(t *testing.T) {
		found, err := repo.FindAll(ctx,
			specification.In{Field: "user_id", Values: []string{userID}},
			specification.ArrayOverlap{Field: "tags", Values: []string{"weather_alert", "unrelated"}},
		)
		require.NoError(t, err)
		assert.Len(t, found, 1)

		none, err := repo.FindAll(ctx,
			specification.In{Field: "user_id", Values: []string{userID}},
			specification.ArrayNotOverlap{Field: "tags", Values: []string{"weather_alert"}},
		)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("invalidate is conditional", func(t *testing.T) {
		first := time.Now().UTC()
		found, err := repo.Invalidate(ctx, message.Id, first)
		require.NoError(t, err)
		assert.True(t, found)

		// The second write must not move the timestamp.
		later := first.Add(time.Hour)
		found, err = repo.Invalidate(ctx, message.Id, later)
		require.NoError(t, err)
		assert.True(t, found)

		stored, err := repo.FindOne(ctx, specification.ByID{ID: message.Id})
		require.NoError(t, err)
		require.NotNil(t, stored.DateInvalidated)
		assert.WithinDuration(t, first, *stored.DateInvalidated, time.Second)
		assert.False(t, stored.IsValid)
	})

	t.Run("invalidate missing row", func(t *testing.T) {
		found, err := repo.Invalidate(ctx, uuid.New(), time.Now().UTC())
		require.NoError(t, err)
		assert.False(t, found)
	})
}

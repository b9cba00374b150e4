package repositoryImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/recommend/repositoryImp"
	"github.com/h809829-coder/agrosmart/pkg/testutil"
)

// stepClock returns the given instants in order, repeating the last one.
func stepClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i]
		if i < len(ts)-1 {
			i++
		}
		return t
	}
}

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestLogRepo_ListRecent_NewestFirst(t *testing.T) {
	repo := repositoryImp.New(testutil.NewTestDB(t),
		repositoryImp.WithClock(stepClock(t0, t0.Add(time.Minute), t0.Add(2*time.Minute))))
	ctx := context.Background()

	for _, crop := range []string{"Rice", "Wheat", "Maize"} {
		require.NoError(t, repo.Append(ctx, &entities.RecommendationRecord{Location: "Hyderabad", RecommendedCrop: crop}))
	}

	got, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Maize", got[0].RecommendedCrop)
	assert.Equal(t, "Wheat", got[1].RecommendedCrop)
	assert.True(t, got[0].Timestamp.Equal(t0.Add(2*time.Minute)))
}

func TestLogRepo_Append_TimestampsNeverDecrease(t *testing.T) {
	repo := repositoryImp.New(testutil.NewTestDB(t),
		repositoryImp.WithClock(stepClock(t0.Add(time.Hour), t0)))
	ctx := context.Background()

	first := &entities.RecommendationRecord{RecommendedCrop: "Rice"}
	second := &entities.RecommendationRecord{RecommendedCrop: "Cotton"}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, second.Timestamp.Before(first.Timestamp))

	got, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// equal timestamps fall back to id order
	assert.Equal(t, "Cotton", got[0].RecommendedCrop)
	assert.Equal(t, "Rice", got[1].RecommendedCrop)
}

func TestLogRepo_Append_KeepsQueryFields(t *testing.T) {
	repo := repositoryImp.New(testutil.NewTestDB(t))
	ctx := context.Background()

	in := entities.RecommendationRecord{
		Location:          "Guntur",
		SoilType:          "clay ",
		Season:            "",
		WaterAvailability: "High",
		Budget:            "Medium",
		RecommendedCrop:   "Rice",
	}
	rec := in
	require.NoError(t, repo.Append(ctx, &rec))

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, in.Location, got[0].Location)
	assert.Equal(t, in.SoilType, got[0].SoilType)
	assert.Equal(t, in.Season, got[0].Season)
	assert.Equal(t, in.WaterAvailability, got[0].WaterAvailability)
	assert.Equal(t, in.Budget, got[0].Budget)
	assert.WithinDuration(t, time.Now(), got[0].Timestamp, time.Minute)
}

func TestLogRepo_ListRecent_Limits(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositoryImp.New(db)
	ctx := context.Background()

	empty, err := repo.ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	rows := make([]entities.RecommendationRecord, 120)
	for i := range rows {
		rows[i] = entities.RecommendationRecord{RecommendedCrop: "Wheat", Timestamp: t0.Add(time.Duration(i) * time.Second)}
	}
	require.NoError(t, db.CreateInBatches(&rows, 50).Error)

	got, err := repo.ListRecent(ctx, -3)
	require.NoError(t, err)
	assert.Len(t, got, 10)

	got, err = repo.ListRecent(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, got, 100)
	assert.True(t, got[0].Timestamp.Equal(t0.Add(119*time.Second)))
}

func TestLogRepo_StorageFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositoryImp.New(db)
	require.NoError(t, database.Close(db))

	err := repo.Append(context.Background(), &entities.RecommendationRecord{RecommendedCrop: "Rice"})
	assert.ErrorIs(t, err, apperr.ErrStorage)

	_, err = repo.ListRecent(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrStorage)
}

package repositoryImp_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/crop/repository"
	"github.com/h809829-coder/agrosmart/pkg/crop/repositoryImp"
	"github.com/h809829-coder/agrosmart/pkg/testutil"
)

func seededRepo(t *testing.T, opts ...repositoryImp.Option) repository.CropRepository {
	t.Helper()
	repo := repositoryImp.New(testutil.NewTestDB(t), opts...)
	n, err := repo.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	require.Equal(t, 8, n)
	return repo
}

func TestCropRepo_SeedIfEmpty_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositoryImp.New(db)
	ctx := context.Background()

	n, err := repo.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = repo.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 8)

	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Rice", "Wheat", "Cotton", "Groundnut", "Maize", "Mustard", "Sugarcane", "Moong Dal"}, names)
}

func TestCropRepo_SeedIfEmpty_SkipsNonEmptyCatalog(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Create(&entities.CropProfile{Name: "Barley", SoilType: "Loamy", Season: "Rabi"}).Error)

	n, err := repositoryImp.New(db).SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var count int64
	require.NoError(t, db.Model(&entities.CropProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCropRepo_SeedIfEmpty_Concurrent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositoryImp.New(db)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.SeedIfEmpty(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&entities.CropProfile{}).Count(&count).Error)
	assert.EqualValues(t, 8, count)
}

func TestCropRepo_FindExactMatch(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	c, err := repo.FindExactMatch(ctx, "Clay", "Kharif", "High", "Medium")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Rice", c.Name)
	assert.Equal(t, "Urea, DAP", c.Fertilizer)
}

func TestCropRepo_FindExactMatch_CaseSensitive(t *testing.T) {
	repo := seededRepo(t)

	c, err := repo.FindExactMatch(context.Background(), "clay", "kharif", "high", "medium")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCropRepo_FindExactMatch_FirstByInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositoryImp.New(db)
	require.NoError(t, db.Create(&[]entities.CropProfile{
		{Name: "First", SoilType: "Silt", Season: "Rabi", WaterRequirement: "Low", Budget: "Low"},
		{Name: "Second", SoilType: "Silt", Season: "Rabi", WaterRequirement: "Low", Budget: "Low"},
	}).Error)

	c, err := repo.FindExactMatch(context.Background(), "Silt", "Rabi", "Low", "Low")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "First", c.Name)
}

func TestCropRepo_FindPartialMatch_SoilOnly(t *testing.T) {
	repo := seededRepo(t, repositoryImp.WithRand(rand.New(rand.NewPCG(1, 2))))
	ctx := context.Background()

	sandy := map[string]bool{"Maize": true, "Mustard": true, "Moong Dal": true}
	seen := map[string]bool{}
	for i := 0; i < 60; i++ {
		c, err := repo.FindPartialMatch(ctx, "Sandy", "Monsoon")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.True(t, sandy[c.Name], "unexpected crop %q", c.Name)
		seen[c.Name] = true
	}
	assert.Len(t, seen, 3, "uniform selection should reach every candidate")
}

func TestCropRepo_FindPartialMatch_SoilOrSeason(t *testing.T) {
	repo := seededRepo(t, repositoryImp.WithRand(rand.New(rand.NewPCG(7, 7))))

	allowed := map[string]bool{"Wheat": true, "Sugarcane": true, "Mustard": true}
	for i := 0; i < 30; i++ {
		c, err := repo.FindPartialMatch(context.Background(), "Loamy", "Rabi")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.True(t, allowed[c.Name], "unexpected crop %q", c.Name)
	}
}

func TestCropRepo_FindPartialMatch_None(t *testing.T) {
	repo := seededRepo(t)

	c, err := repo.FindPartialMatch(context.Background(), "Peat", "Winter")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCropRepo_FindByName(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	c, err := repo.FindByName(ctx, "Moong Dal")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "0.5-1 ton/hectare", c.ExpectedYield)

	c, err = repo.FindByName(ctx, "Quinoa")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCropRepo_StorageFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositoryImp.New(db)
	require.NoError(t, database.Close(db))

	_, err := repo.FindByName(context.Background(), "Rice")
	assert.ErrorIs(t, err, apperr.ErrStorage)

	_, err = repo.SeedIfEmpty(context.Background())
	assert.ErrorIs(t, err, apperr.ErrStorage)
}

func TestSeedProfilesReturnsCopy(t *testing.T) {
	a := repositoryImp.SeedProfiles()
	a[0].Name = "Changed"
	b := repositoryImp.SeedProfiles()
	assert.Equal(t, "Rice", b[0].Name)
}

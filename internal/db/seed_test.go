package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/model"
	"portfolio/internal/snapshot"
	"portfolio/internal/testutil"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := testutil.Store(t)
	gdb, err := store.DB(ctx)
	require.NoError(t, err)

	snap := snapshot.MustLoad()
	admin := config.AdminIdentity{Email: "admin@gmail.com", PasswordHash: "$2b$10$hash", Name: "Administrateur"}

	res, err := db.Seed(ctx, gdb, snap, admin)
	require.NoError(t, err)
	assert.True(t, res.Admin)
	assert.Equal(t, 4, res.SkillCategories)
	assert.Equal(t, 6, res.Certifications)
	assert.Equal(t, 5, res.Education)
	assert.Equal(t, 6, res.Projects)

	var skills int64
	require.NoError(t, gdb.Model(&model.Skill{}).Count(&skills).Error)
	assert.Equal(t, int64(20), skills)

	var edu model.Education
	require.NoError(t, gdb.First(&edu, 5).Error)
	assert.Len(t, edu.Institutions, 2)

	// Second run is a no-op.
	res, err = db.Seed(ctx, gdb, snap, admin)
	require.NoError(t, err)
	assert.Equal(t, db.SeedResult{}, res)
}

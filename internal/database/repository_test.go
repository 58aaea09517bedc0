package database_test

import (
	"context"
	"testing"

	"github.com/holocron-dev/holocron/domain/galaxy"
	"github.com/holocron-dev/holocron/internal/database"
	"github.com/holocron-dev/holocron/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type droid struct {
	ID    int64
	Name  string
	Model string
}

type droidEntity struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	Model string
}

func (droidEntity) TableName() string { return "droids" }

type droidMapper struct{}

func (droidMapper) ToDomain(e droidEntity) droid {
	return droid{ID: e.ID, Name: e.Name, Model: e.Model}
}

func (droidMapper) ToModel(d droid) droidEntity {
	return droidEntity{ID: d.ID, Name: d.Name, Model: d.Model}
}

func newDroidRepo(t *testing.T) (database.Repository[droid, droidEntity], database.Database) {
	t.Helper()
	db := testdb.WithSchema(t,
		`CREATE TABLE droids (id INTEGER PRIMARY KEY, name TEXT NOT NULL, model TEXT NOT NULL)`,
		`INSERT INTO droids (id, name, model) VALUES
			(2, 'R2-D2', 'Astromech'),
			(3, 'C-3PO', 'Protocol'),
			(8, 'BB-8', 'Astromech')`,
	)
	return database.NewRepository[droid, droidEntity](db, droidMapper{}, "droid"), db
}

func TestRepository_FindOne(t *testing.T) {
	repo, _ := newDroidRepo(t)
	ctx := context.Background()

	d, err := repo.FindOne(ctx, galaxy.WithID(2))
	require.NoError(t, err)
	assert.Equal(t, "R2-D2", d.Name)
	assert.Equal(t, "Astromech", d.Model)
}

func TestRepository_FindOne_NotFound(t *testing.T) {
	repo, _ := newDroidRepo(t)
	ctx := context.Background()

	_, err := repo.FindOne(ctx, galaxy.WithID(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.Contains(t, err.Error(), "droid")
}

func TestRepository_Find_WithConditionAndOrder(t *testing.T) {
	repo, _ := newDroidRepo(t)
	ctx := context.Background()

	droids, err := repo.Find(ctx,
		galaxy.WithCondition("model", "Astromech"),
		galaxy.WithOrderDesc("id"),
	)
	require.NoError(t, err)
	require.Len(t, droids, 2)
	assert.Equal(t, "BB-8", droids[0].Name)
	assert.Equal(t, "R2-D2", droids[1].Name)
}

func TestRepository_Find_LimitAndOffset(t *testing.T) {
	repo, _ := newDroidRepo(t)
	ctx := context.Background()

	droids, err := repo.Find(ctx,
		galaxy.WithOrderAsc("id"),
		galaxy.WithLimit(1),
		galaxy.WithOffset(1),
	)
	require.NoError(t, err)
	require.Len(t, droids, 1)
	assert.Equal(t, int64(3), droids[0].ID)
}

func TestRepository_Find_IDIn(t *testing.T) {
	repo, _ := newDroidRepo(t)
	ctx := context.Background()

	droids, err := repo.Find(ctx, galaxy.WithConditionIn("id", []int64{2, 8}), galaxy.WithOrderAsc("id"))
	require.NoError(t, err)
	require.Len(t, droids, 2)
	assert.Equal(t, "R2-D2", droids[0].Name)
	assert.Equal(t, "BB-8", droids[1].Name)
}

func TestRepository_ExistsAndCount(t *testing.T) {
	repo, _ := newDroidRepo(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, galaxy.WithID(3))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, galaxy.WithID(99))
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.Count(ctx, galaxy.WithCondition("model", "Astromech"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	repo, db := newDroidRepo(t)
	ctx := context.Background()

	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
		if err := tx.Exec(
			`INSERT INTO droids (id, name, model) VALUES (4, 'IG-88', 'Assassin')`,
		).Error; err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count, "failed transaction must leave no rows behind")
}

func TestWithTransaction_Commits(t *testing.T) {
	repo, db := newDroidRepo(t)
	ctx := context.Background()

	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
		return tx.Exec(
			`INSERT INTO droids (id, name, model) VALUES (4, 'IG-88', 'Assassin')`,
		).Error
	})
	require.NoError(t, err)

	d, err := repo.FindOne(ctx, galaxy.WithID(4))
	require.NoError(t, err)
	assert.Equal(t, "IG-88", d.Name)
}

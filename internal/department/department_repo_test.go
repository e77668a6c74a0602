package department_test

import (
	"context"
	"errors"
	"testing"

	"go-employees/internal/department"
	"go-employees/internal/shared/connection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := connection.Open(connection.Config{Driver: connection.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&department.Department{}))
	return db
}

func TestRepository_CreateAndFindAll(t *testing.T) {
	db := setupDB(t)
	repo := department.NewRepository(db)
	ctx := context.Background()

	for _, d := range []department.Department{
		{Name: "Engineering", Location: "Bengaluru"},
		{Name: "HR", Location: "Mumbai"},
	} {
		d := d
		require.NoError(t, repo.Create(ctx, &d))
		assert.NotZero(t, d.ID)
	}

	depts, err := repo.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, depts, 2)
	assert.Equal(t, "Engineering", depts[0].Name)
	assert.Equal(t, "Mumbai", depts[1].Location)
}

func TestRepository_NameIsUnique(t *testing.T) {
	db := setupDB(t)
	repo := department.NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &department.Department{Name: "Finance"}))
	err := repo.Create(ctx, &department.Department{Name: "Finance", Location: "Delhi"})

	assert.Error(t, err)

	depts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, depts, 1)
}

func TestRepository_WithTxRollsBack(t *testing.T) {
	db := setupDB(t)
	repo := department.NewRepository(db)
	ctx := context.Background()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := repo.WithTx(tx).Create(ctx, &department.Department{Name: "Legal"}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	depts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, depts)
}

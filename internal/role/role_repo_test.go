package role_test

import (
	"context"
	"testing"

	"go-employees/internal/role"
	"go-employees/internal/shared/connection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateAndFindAll(t *testing.T) {
	db, err := connection.Open(connection.Config{Driver: connection.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&role.Role{}))

	repo := role.NewRepository(db)
	ctx := context.Background()

	// Titles are not unique; the same title may exist at two grades.
	require.NoError(t, repo.Create(ctx, &role.Role{Title: "Software Engineer", Grade: "L2"}))
	require.NoError(t, repo.Create(ctx, &role.Role{Title: "Software Engineer", Grade: "L3"}))

	roles, err := repo.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "L2", roles[0].Grade)
	assert.Equal(t, "L3", roles[1].Grade)
	assert.Less(t, roles[0].ID, roles[1].ID)
}

package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u, err := repo.Create(ctx, &models.User{Email: "a@b.c", Name: "A", Salt: []byte("s"), Verifier: []byte("v")})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = repo.Create(ctx, &models.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	byEmail, err := repo.GetUserByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", byID.Name)

	byID.Name = "changed"
	again, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Name)

	_, err = repo.GetUserByEmail(ctx, "x@y.z")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

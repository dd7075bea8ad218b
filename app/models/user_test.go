package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-kuat")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "rahasia-kuat", hash)

	assert.True(t, CheckPasswordHash("rahasia-kuat", hash))
	assert.False(t, CheckPasswordHash("salah", hash))
	assert.False(t, CheckPasswordHash("rahasia-kuat", "not-a-hash"))
}

func TestCreateUserDefaultsToEditor(t *testing.T) {
	u, err := CreateUser("Budi Santoso", "budi@seido.co.id", "rahasia-kuat")
	require.NoError(t, err)

	assert.Equal(t, RoleEditor, u.Role)
	assert.True(t, CheckPasswordHash("rahasia-kuat", u.Password))
	assert.NoError(t, u.Validate())
}

func TestUserValidate(t *testing.T) {
	bad := &User{Name: "B", Email: "x", Password: "123", Role: "root"}
	assert.Error(t, bad.Validate())
}

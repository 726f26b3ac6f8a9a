package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, h.Check("s3cret", hash))
	assert.False(t, h.Check("wrong", hash))
	assert.False(t, h.Check("s3cret", "not-a-bcrypt-hash"))

	// Одинаковые пароли дают разные хеши (соль)
	other, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(100).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewBcryptHasher(0).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestBcryptHasher_LongPasswords(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	long := strings.Repeat("a", 100)

	hash, err := h.Hash(long)
	require.NoError(t, err)
	assert.True(t, h.Check(long, hash))

	// Отличие после 72-го байта должно влиять на результат
	assert.False(t, h.Check(strings.Repeat("a", 99)+"b", hash))
	assert.False(t, h.Check(strings.Repeat("a", 72), hash))

	exact := strings.Repeat("x", bcryptMaxPasswordLen)
	hash, err = h.Hash(exact)
	require.NoError(t, err)
	assert.True(t, h.Check(exact, hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(exact)))
}

package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUser_SetPassword_Hashes(t *testing.T) {
	user := &User{Username: "alice"}

	require.NoError(t, user.SetPassword("pw1"))

	assert.NotEqual(t, "pw1", user.Password, "пароль должен быть заменен хешем")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw1")))
}

func TestUser_SetPassword_HashLookingPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &User{Username: "bob"}

	// строка вида $2a$... это обычный пароль, его тоже нужно хешировать
	require.NoError(t, user.SetPassword(string(hashed)))

	assert.NotEqual(t, string(hashed), user.Password)
	assert.True(t, user.CheckPassword(string(hashed)))
	assert.False(t, user.CheckPassword("secret"))
}

func TestUser_SetPassword_TooLong(t *testing.T) {
	user := &User{Username: "carol"}

	require.NoError(t, user.SetPassword(strings.Repeat("x", MaxPasswordBytes)))
	assert.Error(t, user.SetPassword(strings.Repeat("x", MaxPasswordBytes+1)))
}

func TestUser_CheckPassword(t *testing.T) {
	user := &User{Username: "alice"}
	require.NoError(t, user.SetPassword("pw1"))

	assert.True(t, user.CheckPassword("pw1"))
	assert.False(t, user.CheckPassword("PW1"))
	assert.False(t, user.CheckPassword(""))
}

func TestFitsLength(t *testing.T) {
	assert.True(t, FitsLength("", 0))
	assert.True(t, FitsLength("abc", 3))
	assert.False(t, FitsLength("abcd", 3))
	// символы, а не байты
	assert.True(t, FitsLength("ёжик", 4))
}

package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Public_OmitsPasswordHash(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Username:     "ana",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	public := user.Public()
	require.NotNil(t, public)
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, "ana", public.Username)
	assert.Equal(t, "a@x.com", public.Email)

	body, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(body), user.PasswordHash)
	assert.JSONEq(t, `{"id":"`+user.ID.String()+`","email":"a@x.com","username":"ana"}`, string(body))
}

func TestUser_Public_Nil(t *testing.T) {
	var user *User

	assert.Nil(t, user.Public())
}

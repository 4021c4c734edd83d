package models

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}

func TestUser_IsAdmin(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
}

func TestGroup_HasPhrase(t *testing.T) {
	assert.False(t, (&Group{}).HasPhrase())
	assert.False(t, (&Group{PasswordPhrase: sql.NullString{Valid: true}}).HasPhrase())
	assert.True(t, (&Group{PasswordPhrase: sql.NullString{String: "abc123", Valid: true}}).HasPhrase())
}

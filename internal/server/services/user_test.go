package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/groupauth/internal/common"
	"github.com/dmitrijs2005/groupauth/internal/server/auth"
	"github.com/dmitrijs2005/groupauth/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *memStore) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	st := newMemStore()
	return NewUserService(db, &fakeManager{st}), st
}

func TestValidEmail(t *testing.T) {
	good := []string{"root@admin.com", "a.b+c@sub.example.org", "x_y%z@d-1.io"}
	bad := []string{"", "root", "root@admin", "root@admin.c", "@admin.com", "root admin@x.com"}

	for _, e := range good {
		assert.True(t, ValidEmail(e), e)
	}
	for _, e := range bad {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestUserCreate(t *testing.T) {
	svc, st := newUserService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		p       auth.Principal
		in      UserInput
		wantErr error
	}{
		{"not admin", plainUser, UserInput{UserName: "bob", Email: "bob@x.com", Password: "pw"}, common.ErrorForbidden},
		{"bad email", admin, UserInput{UserName: "bob", Email: "bob@x", Password: "pw"}, common.ErrorInvalidEmail},
		{"bad role", admin, UserInput{UserName: "bob", Email: "bob@x.com", Password: "pw", Role: "owner"}, common.ErrorInvalidRole},
		{"no username", admin, UserInput{Email: "bob@x.com", Password: "pw"}, common.ErrorValidation},
		{"no password", admin, UserInput{UserName: "bob", Email: "bob@x.com"}, common.ErrorValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.p, tt.in)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, st.users, "rejected input must not write")

	u, err := svc.Create(ctx, admin, UserInput{UserName: "bob", Email: "bob@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.NotEqual(t, []byte("secret"), u.PasswordHash)

	_, err = svc.Create(ctx, admin, UserInput{UserName: "bob", Email: "other@x.com", Password: "secret"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUserUpdate(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, admin, UserInput{UserName: "bob", Email: "bob@x.com", Password: "secret"})
	require.NoError(t, err)
	oldHash := u.PasswordHash

	require.ErrorIs(t, svc.Update(ctx, admin, u.ID, UserInput{UserName: "bob", Email: "nope", Role: models.RoleUser}), common.ErrorInvalidEmail)

	require.NoError(t, svc.Update(ctx, admin, u.ID, UserInput{UserName: "robert", Email: "rob@x.com", Role: models.RoleAdmin}))
	p, err := svc.Authenticate(ctx, "rob@x.com", "secret")
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())

	require.NoError(t, svc.Update(ctx, admin, u.ID, UserInput{UserName: "robert", Email: "rob@x.com", Password: "changed", Role: models.RoleAdmin}))
	_, err = svc.Authenticate(ctx, "rob@x.com", "secret")
	require.ErrorIs(t, err, common.ErrorInvalidCredential)
	_, err = svc.Authenticate(ctx, "rob@x.com", "changed")
	require.NoError(t, err)

	got, err := svc.repomanager.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, got.PasswordHash)

	require.ErrorIs(t, svc.Update(ctx, admin, uuid.NewString(), UserInput{UserName: "x", Email: "x@x.com", Role: models.RoleUser}), common.ErrorNotFound)
}

func TestUserUpdateProfile_KeepsRole(t *testing.T) {
	svc, st := newUserService(t)
	ctx := context.Background()
	u := st.addUser("bob", "bob@x.com", models.RoleUser)

	self := auth.Principal{UserID: u.ID, Role: models.RoleUser}
	require.NoError(t, svc.UpdateProfile(ctx, self, UserInput{UserName: "bobby", Email: "bobby@x.com", Role: models.RoleAdmin}))

	got, err := svc.repomanager.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bobby", got.UserName)
	assert.Equal(t, models.RoleUser, got.Role)

	st.addUser("alice", "alice@x.com", models.RoleUser)
	err = svc.UpdateProfile(ctx, self, UserInput{UserName: "bobby", Email: "alice@x.com"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUserDelete(t *testing.T) {
	svc, st := newUserService(t)
	ctx := context.Background()
	root := st.addUser("root", "root@admin.com", models.RoleAdmin)
	bob := st.addUser("bob", "bob@x.com", models.RoleUser)
	rootP := auth.Principal{UserID: root.ID, Role: models.RoleAdmin}

	require.ErrorIs(t, svc.Delete(ctx, rootP, root.ID), common.ErrorSelfDelete)
	require.ErrorIs(t, svc.Delete(ctx, auth.Principal{UserID: bob.ID, Role: models.RoleUser}, root.ID), common.ErrorForbidden)
	require.NoError(t, svc.Delete(ctx, rootP, bob.ID))

	list, err := svc.List(ctx, rootP)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "root", list[0].UserName)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, admin, UserInput{UserName: "bob", Email: "bob@x.com", Password: "secret"})
	require.NoError(t, err)

	p, err := svc.Authenticate(ctx, "bob@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, p.Role)

	_, err = svc.Authenticate(ctx, "bob@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrorInvalidCredential)

	_, err = svc.Authenticate(ctx, "ghost@x.com", "secret")
	require.ErrorIs(t, err, common.ErrorInvalidCredential)
}

func TestEnsureRoot(t *testing.T) {
	svc, st := newUserService(t)
	ctx := context.Background()

	created, err := svc.EnsureRoot(ctx, "root@admin.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureRoot(ctx, "root@admin.com", "admin123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, st.users, 1)

	p, err := svc.Authenticate(ctx, "root@admin.com", "admin123")
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())
}

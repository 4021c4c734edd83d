package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/groupauth/internal/common"
	"github.com/dmitrijs2005/groupauth/internal/dbx"
	"github.com/dmitrijs2005/groupauth/internal/server/config"
	"github.com/dmitrijs2005/groupauth/internal/server/models"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/groups"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/memberships"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/users"
	"github.com/google/uuid"
)

// --- helpers ---

// newSQLMockDB returns a single-connection mock DB: transactions run one at a
// time, the same way row locks serialize them in PostgreSQL.
func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

// memStore is an in-memory stand-in for the three tables.
type memStore struct {
	mu          sync.Mutex
	users       map[string]*models.User
	groups      map[string]*models.Group
	memberships map[string]*models.Membership

	// groupsErr, when set, is returned by every groups repository call.
	groupsErr error
	// setPhraseErr, when set, is returned by SetPhrase only.
	setPhraseErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*models.User{},
		groups:      map[string]*models.Group{},
		memberships: map[string]*models.Membership{},
	}
}

func (s *memStore) nextID() string {
	return uuid.NewString()
}

// addGroup inserts a group directly, bypassing services.
func (s *memStore) addGroup(name, description string, phrase *string) *models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := &models.Group{ID: s.nextID(), Name: name, Description: description, CreatedAt: time.Now()}
	if phrase != nil {
		g.PasswordPhrase = sql.NullString{String: *phrase, Valid: true}
	}
	s.groups[g.ID] = g
	return g
}

func (s *memStore) addUser(name, email string, role models.Role) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: s.nextID(), UserName: name, Email: email, Role: role, PasswordHash: []byte("x"), CreatedAt: time.Now()}
	s.users[u.ID] = u
	return u
}

type fakeManager struct{ st *memStore }

func (f *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeManager) Users(dbx.DBTX) users.Repository             { return &fakeUsers{f.st} }
func (f *fakeManager) Groups(dbx.DBTX) groups.Repository           { return &fakeGroups{f.st} }
func (f *fakeManager) Memberships(dbx.DBTX) memberships.Repository { return &fakeMemberships{f.st} }

// --- users ---

type fakeUsers struct{ st *memStore }

func (r *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, x := range r.st.users {
		if x.UserName == u.UserName || x.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = r.st.nextID()
	u.CreatedAt = time.Now()
	c := *u
	r.st.users[u.ID] = &c
	return u, nil
}

func (r *fakeUsers) find(match func(*models.User) bool) (*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *fakeUsers) GetByUsername(_ context.Context, name string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.UserName == name })
}

func (r *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *fakeUsers) List(context.Context) ([]*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.User
	for _, u := range r.st.users {
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserName < out[j].UserName })
	return out, nil
}

func (r *fakeUsers) Update(_ context.Context, u *models.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.users[u.ID]; !ok {
		return common.ErrorNotFound
	}
	for _, x := range r.st.users {
		if x.ID != u.ID && (x.UserName == u.UserName || x.Email == u.Email) {
			return common.ErrorAlreadyExists
		}
	}
	c := *u
	r.st.users[u.ID] = &c
	return nil
}

func (r *fakeUsers) Delete(_ context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.st.users, id)
	for mid, m := range r.st.memberships {
		if m.UserID == id {
			delete(r.st.memberships, mid)
		}
	}
	return nil
}

func (r *fakeUsers) LockByID(_ context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.users[id]; !ok {
		return common.ErrorNotFound
	}
	return nil
}

// --- groups ---

type fakeGroups struct{ st *memStore }

func (r *fakeGroups) Create(_ context.Context, g *models.Group) (*models.Group, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.groupsErr != nil {
		return nil, r.st.groupsErr
	}
	for _, x := range r.st.groups {
		if x.Name == g.Name {
			return nil, common.ErrorAlreadyExists
		}
	}
	g.ID = r.st.nextID()
	g.CreatedAt = time.Now()
	c := *g
	r.st.groups[g.ID] = &c
	return g, nil
}

func (r *fakeGroups) find(match func(*models.Group) bool) (*models.Group, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.groupsErr != nil {
		return nil, r.st.groupsErr
	}
	for _, g := range r.st.groups {
		if match(g) {
			c := *g
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeGroups) GetByID(_ context.Context, id string) (*models.Group, error) {
	return r.find(func(g *models.Group) bool { return g.ID == id })
}

func (r *fakeGroups) GetByName(_ context.Context, name string) (*models.Group, error) {
	return r.find(func(g *models.Group) bool { return g.Name == name })
}

func (r *fakeGroups) List(context.Context) ([]*models.Group, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.groupsErr != nil {
		return nil, r.st.groupsErr
	}
	var out []*models.Group
	for _, g := range r.st.groups {
		c := *g
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeGroups) Update(_ context.Context, g *models.Group) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	cur, ok := r.st.groups[g.ID]
	if !ok {
		return common.ErrorNotFound
	}
	for _, x := range r.st.groups {
		if x.ID != g.ID && x.Name == g.Name {
			return common.ErrorAlreadyExists
		}
	}
	cur.Name = g.Name
	cur.Description = g.Description
	return nil
}

func (r *fakeGroups) Delete(_ context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.groups[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.st.groups, id)
	for mid, m := range r.st.memberships {
		if m.GroupID == id {
			delete(r.st.memberships, mid)
		}
	}
	return nil
}

func (r *fakeGroups) LockByName(_ context.Context, name string) (string, error) {
	g, err := r.find(func(g *models.Group) bool { return g.Name == name })
	if err != nil {
		return "", err
	}
	return g.ID, nil
}

func (r *fakeGroups) LockByID(_ context.Context, id string) error {
	_, err := r.find(func(g *models.Group) bool { return g.ID == id })
	return err
}

func (r *fakeGroups) SetPhrase(_ context.Context, id string, phrase sql.NullString) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.setPhraseErr != nil {
		return r.st.setPhraseErr
	}
	g, ok := r.st.groups[id]
	if !ok {
		return common.ErrorNotFound
	}
	g.PasswordPhrase = phrase
	return nil
}

// --- memberships ---

type fakeMemberships struct{ st *memStore }

func (r *fakeMemberships) Create(_ context.Context, m *models.Membership) (*models.Membership, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, x := range r.st.memberships {
		if x.UserID == m.UserID {
			return nil, common.ErrorAlreadyExists
		}
	}
	m.ID = r.st.nextID()
	m.CreatedAt = time.Now()
	c := *m
	r.st.memberships[m.ID] = &c
	return m, nil
}

func (r *fakeMemberships) GetByUser(_ context.Context, userID string) (*models.Membership, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, m := range r.st.memberships {
		if m.UserID == userID {
			c := *m
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeMemberships) ListByGroup(_ context.Context, groupID string) ([]*models.Membership, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.Membership
	for _, m := range r.st.memberships {
		if m.GroupID == groupID {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *fakeMemberships) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var n int64
	for id, m := range r.st.memberships {
		if m.UserID == userID {
			delete(r.st.memberships, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeMemberships) DeleteByID(_ context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.memberships[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.st.memberships, id)
	return nil
}

func (s *memStore) membershipsOf(userID string) []*models.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Membership
	for _, m := range s.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

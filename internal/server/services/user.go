package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/groupauth/internal/common"
	"github.com/dmitrijs2005/groupauth/internal/server/auth"
	"github.com/dmitrijs2005/groupauth/internal/server/models"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/repomanager"
)

// RootUserName is the username of the bootstrap administrator.
const RootUserName = "root"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// UserInput carries the editable fields of a user. An empty Password on
// update keeps the current one; an empty Role means models.RoleUser.
type UserInput struct {
	UserName string
	Email    string
	Password string
	Role     models.Role
}

// UserService manages identity records and authenticates administrators.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

func validateUserFields(in UserInput) error {
	if strings.TrimSpace(in.UserName) == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if !ValidEmail(in.Email) {
		return common.ErrorInvalidEmail
	}
	if !in.Role.Valid() {
		return common.ErrorInvalidRole
	}
	return nil
}

// Create adds a user. Validation runs before anything is written.
func (s *UserService) Create(ctx context.Context, p auth.Principal, in UserInput) (*models.User, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if err := validateUserFields(in); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return s.create(ctx, in)
}

func (s *UserService) create(ctx context.Context, in UserInput) (*models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	u := &models.User{UserName: in.UserName, Email: in.Email, PasswordHash: hash, Role: in.Role}
	return s.repomanager.Users(s.db).Create(ctx, u)
}

// Update is the admin edit: username, email, role and optionally password.
func (s *UserService) Update(ctx context.Context, p auth.Principal, id string, in UserInput) error {
	if err := auth.RequireAdmin(p); err != nil {
		return err
	}
	if err := checkIDs(id); err != nil {
		return err
	}
	if err := validateUserFields(in); err != nil {
		return err
	}
	return s.update(ctx, id, in)
}

// UpdateProfile is the self-service edit. The role cannot be changed here.
func (s *UserService) UpdateProfile(ctx context.Context, p auth.Principal, in UserInput) error {
	repo := s.repomanager.Users(s.db)
	current, err := repo.GetByID(ctx, p.UserID)
	if err != nil {
		return err
	}
	in.Role = current.Role
	if err := validateUserFields(in); err != nil {
		return err
	}
	return s.update(ctx, p.UserID, in)
}

func (s *UserService) update(ctx context.Context, id string, in UserInput) error {
	repo := s.repomanager.Users(s.db)
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	u.UserName = in.UserName
	u.Email = in.Email
	u.Role = in.Role
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrorInternal, err)
		}
		u.PasswordHash = hash
	}
	return repo.Update(ctx, u)
}

// Delete removes a user. Nobody can delete their own account.
func (s *UserService) Delete(ctx context.Context, p auth.Principal, id string) error {
	if err := auth.RequireAdmin(p); err != nil {
		return err
	}
	if id == p.UserID {
		return common.ErrorSelfDelete
	}
	if err := checkIDs(id); err != nil {
		return err
	}
	return s.repomanager.Users(s.db).Delete(ctx, id)
}

func (s *UserService) List(ctx context.Context, p auth.Principal) ([]*models.User, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	return s.repomanager.Users(s.db).List(ctx)
}

// Authenticate resolves email and password to a Principal. Unknown email and
// wrong password both yield common.ErrorInvalidCredential.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (auth.Principal, error) {
	u, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return auth.Principal{}, common.ErrorInvalidCredential
		}
		return auth.Principal{}, err
	}
	ok, err := auth.CheckPassword(u.PasswordHash, password)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if !ok {
		return auth.Principal{}, common.ErrorInvalidCredential
	}
	return auth.PrincipalFor(u), nil
}

// EnsureRoot creates the bootstrap administrator unless a user with that email
// already exists. It reports whether a user was created.
func (s *UserService) EnsureRoot(ctx context.Context, email, password string) (bool, error) {
	_, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, err
	}

	_, err = s.create(ctx, UserInput{UserName: RootUserName, Email: email, Password: password, Role: models.RoleAdmin})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

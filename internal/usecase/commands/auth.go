package commands

import (
	"context"
	"errors"

	"book-catalog/internal/domain/user"
	reqdto "book-catalog/internal/handler/dto/request"
	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/pkg/errs"
	"book-catalog/internal/pkg/password"
	"book-catalog/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrEmailAlreadyTaken  = errs.New("email already registered")
	ErrInactiveUser       = errs.New("user account is inactive")
)

// AuthResult carries the signed token together with the authenticated
// user view.
type AuthResult struct {
	Token string
	User  queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	dbtx   db.DBTX
	users  UserRepository
	views  UserViewFinder
	tokens TokenIssuer
}

func NewAuthCommands(dbtx db.DBTX, users UserRepository, views UserViewFinder, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{dbtx: dbtx, users: users, views: views, tokens: tokens}
}

func (c *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(email, hash, req.FirstName, req.LastName)

	id, err := c.users.Create(ctx, c.dbtx, u)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailAlreadyTaken)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := c.tokens.GenerateToken(id, u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &AuthResult{Token: token, User: *view}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, hash, err := c.views.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad password, no account probing.
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(hash, creds.Password().Value()); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Wrap(err, "failed to compare password")
	}

	if !view.IsActive {
		return nil, ErrInactiveUser
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := c.tokens.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	return &AuthResult{Token: token, User: *view}, nil
}

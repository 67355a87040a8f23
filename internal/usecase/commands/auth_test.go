//go:build unit

package commands_test

import (
	"context"
	"testing"

	reqdto "book-catalog/internal/handler/dto/request"
	"book-catalog/internal/infra"
	"book-catalog/internal/pkg/password"
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"
	commandsmock "book-catalog/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users  *commandsmock.MockUserRepository
	views  *commandsmock.MockUserViewFinder
	tokens *commandsmock.MockTokenIssuer
}

func newAuthCommands(t *testing.T) (commands.AuthCommands, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:  commandsmock.NewMockUserRepository(ctrl),
		views:  commandsmock.NewMockUserViewFinder(ctrl),
		tokens: commandsmock.NewMockTokenIssuer(ctrl),
	}
	return commands.NewAuthCommands(nil, m.users, m.views, m.tokens), m
}

func activeUserView(email string) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    email,
		Role:     "reader",
		IsActive: true,
	}
}

func TestAuthCommandsLogin(t *testing.T) {
	ctx := context.Background()
	req := reqdto.LoginRequest{Email: "reader@example.com", Password: "secret-pass"}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		cmds, m := newAuthCommands(t)

		hash, err := password.Hash(req.Password)
		require.NoError(t, err)

		view := activeUserView(req.Email)
		m.views.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, hash, nil)
		m.tokens.EXPECT().GenerateToken(view.ID, gomock.Any()).Return("signed-token", nil)

		result, err := cmds.Login(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, req.Email, result.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		cmds, m := newAuthCommands(t)

		hash, err := password.Hash("a-different-pass")
		require.NoError(t, err)

		m.views.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(activeUserView(req.Email), hash, nil)

		_, err = cmds.Login(ctx, req)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error as a bad password", func(t *testing.T) {
		cmds, m := newAuthCommands(t)

		m.views.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := cmds.Login(ctx, req)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		cmds, m := newAuthCommands(t)

		hash, err := password.Hash(req.Password)
		require.NoError(t, err)

		view := activeUserView(req.Email)
		view.IsActive = false
		m.views.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, hash, nil)

		_, err = cmds.Login(ctx, req)
		assert.ErrorIs(t, err, commands.ErrInactiveUser)
	})
}

func TestAuthCommandsRegister(t *testing.T) {
	ctx := context.Background()
	req := reqdto.RegisterRequest{
		Email:     "new@example.com",
		Password:  "secret-pass",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	t.Run("creates user and issues token", func(t *testing.T) {
		cmds, m := newAuthCommands(t)

		id := uuid.New()
		view := activeUserView(req.Email)
		view.ID = id

		m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(id, nil)
		m.tokens.EXPECT().GenerateToken(id, gomock.Any()).Return("signed-token", nil)
		m.views.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		result, err := cmds.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, id, result.User.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		cmds, m := newAuthCommands(t)

		m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey))

		_, err := cmds.Register(ctx, req)
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyTaken)
	})

	t.Run("malformed email", func(t *testing.T) {
		cmds, _ := newAuthCommands(t)

		bad := req
		bad.Email = "not-an-email"

		_, err := cmds.Register(ctx, bad)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

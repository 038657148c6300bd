// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package activation

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/mail"
	"github.com/hotink/hotink/internal/platform/sec"
	"github.com/hotink/hotink/internal/users/auth"
	"github.com/hotink/hotink/pkg/pointer"
)

// # Fakes

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type memoryUsers struct {
	users     map[string]*auth.User
	createErr error
	creates   int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]*auth.User{}}
}

func (repo *memoryUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := repo.users[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUsers) Create(_ context.Context, user *auth.User) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.creates++
	user.CreatedAt = epoch.Add(time.Duration(len(repo.users)) * time.Minute)
	user.UpdatedAt = user.CreatedAt
	repo.users[user.ID] = user
	return nil
}

func (repo *memoryUsers) Update(_ context.Context, user *auth.User) error {
	user.UpdatedAt = user.CreatedAt.Add(time.Second)
	repo.users[user.ID] = user
	return nil
}

func (repo *memoryUsers) ListPending(_ context.Context, accountID int64) ([]*auth.User, error) {
	pending := make([]*auth.User, 0)
	for _, user := range repo.users {
		if pointer.Val(user.AccountID) == accountID && user.CreatedAt.Equal(user.UpdatedAt) {
			pending = append(pending, user)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedAt.Before(pending[j].CreatedAt) })
	return pending, nil
}

func (repo *memoryUsers) DeletePending(_ context.Context, accountID int64, userID string) error {
	user, ok := repo.users[userID]
	if !ok || pointer.Val(user.AccountID) != accountID || !user.CreatedAt.Equal(user.UpdatedAt) {
		return apperr.NotFound("Invitation")
	}
	delete(repo.users, userID)
	return nil
}

type grant struct {
	accountID int64
	userID    string
	role      sec.UserRole
}

type memoryRoles struct {
	grants []grant
}

func (roles *memoryRoles) Grant(_ context.Context, accountID int64, userID string, role sec.UserRole) error {
	for _, existing := range roles.grants {
		if existing == (grant{accountID, userID, role}) {
			return nil
		}
	}
	roles.grants = append(roles.grants, grant{accountID, userID, role})
	return nil
}

func (roles *memoryRoles) Roles(_ context.Context, accountID int64, userID string) ([]sec.UserRole, error) {
	var held []sec.UserRole
	for _, existing := range roles.grants {
		if existing.accountID == accountID && existing.userID == userID {
			held = append(held, existing.role)
		}
	}
	return held, nil
}

type memoryTokens struct {
	tokens map[string]string
	next   int
}

func (store *memoryTokens) Issue(_ context.Context, userID string) (string, error) {
	store.next++
	token := strings.Repeat("t", store.next)
	store.tokens[token] = userID
	return token, nil
}

func (store *memoryTokens) Resolve(_ context.Context, token string) (string, error) {
	if userID, ok := store.tokens[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFoundMessage(CouldNotLocateNotice)
}

func (store *memoryTokens) Consume(_ context.Context, token string) error {
	delete(store.tokens, token)
	return nil
}

type recordingNotifier struct {
	sent []mail.Message
}

func (notifier *recordingNotifier) Dispatch(message mail.Message) {
	notifier.sent = append(notifier.sent, message)
}

type fixture struct {
	service  *Service
	users    *memoryUsers
	roles    *memoryRoles
	tokens   *memoryTokens
	notifier *recordingNotifier
}

func newFixture() *fixture {
	f := &fixture{
		users:    newMemoryUsers(),
		roles:    &memoryRoles{},
		tokens:   &memoryTokens{tokens: map[string]string{}},
		notifier: &recordingNotifier{},
	}
	f.service = NewService(f.users, f.roles, f.tokens, f.notifier, "https://hotink.test/",
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

// # Invite

func TestInvite_NotAnEmail(t *testing.T) {
	f := newFixture()
	_, err := f.service.Invite(context.Background(), 1, InviteInput{Email: "pending@hotink.net"})
	require.NoError(t, err)

	for _, email := range []string{"not-an-email", "", "a@b", "a@b.toolongtld"} {
		t.Run(email, func(t *testing.T) {
			result, err := f.service.Invite(context.Background(), 1, InviteInput{Email: email})
			require.NoError(t, err)

			assert.Equal(t, OutcomeInvalidEmail, result.Outcome)
			assert.Equal(t, InvalidEmailNotice, result.Notice)
			assert.Len(t, result.Pending, 1)
			assert.Equal(t, 1, f.users.creates)
		})
	}
}

func TestInvite_NewAddress(t *testing.T) {
	f := newFixture()

	result, err := f.service.Invite(context.Background(), 7, InviteInput{Email: " writer@hotink.net "})
	require.NoError(t, err)

	assert.Equal(t, OutcomeInvited, result.Outcome)
	assert.Equal(t, InvitedNotice, result.Notice)
	require.Len(t, result.Pending, 1)

	user := result.Pending[0]
	assert.Equal(t, "writer@hotink.net", user.Email)
	assert.False(t, user.IsActive)
	assert.Equal(t, int64(7), pointer.Val(user.AccountID))
	assert.Empty(t, f.roles.grants, "staff is granted on activation")

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "writer@hotink.net", f.notifier.sent[0].To)
	assert.Contains(t, f.notifier.sent[0].Body, "https://hotink.test/api/v1/user-activations/t")
}

func TestInvite_ExistingUserGrantsStaff(t *testing.T) {
	f := newFixture()
	f.users.users["u-1"] = &auth.User{
		ID: "u-1", AccountID: pointer.To(int64(2)), Name: "Ann", Email: "ann@hotink.net",
		IsActive: true, CreatedAt: epoch, UpdatedAt: epoch.Add(time.Hour),
	}

	for range 2 {
		result, err := f.service.Invite(context.Background(), 7, InviteInput{Email: "ann@hotink.net"})
		require.NoError(t, err)
		assert.Equal(t, OutcomeGranted, result.Outcome)
		assert.Equal(t, "Ann is officially a staff member.", result.Notice)
	}

	assert.Equal(t, []grant{{7, "u-1", sec.RoleStaff}}, f.roles.grants)
	assert.Zero(t, f.users.creates)
	assert.Empty(t, f.notifier.sent)
}

func TestInvite_CreateFailure(t *testing.T) {
	f := newFixture()
	f.users.createErr = apperr.Conflict("User already exists")

	result, err := f.service.Invite(context.Background(), 1, InviteInput{Email: "race@hotink.net"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Equal(t, InviteFailedNotice, result.Notice)
	assert.Empty(t, result.Pending)
	assert.Empty(t, f.notifier.sent)
}

// # Activation

func inviteOne(t *testing.T, f *fixture) (string, *auth.User) {
	t.Helper()
	result, err := f.service.Invite(context.Background(), 3, InviteInput{Email: "new@hotink.net"})
	require.NoError(t, err)
	require.Equal(t, OutcomeInvited, result.Outcome)
	return "t", result.User
}

func TestEdit(t *testing.T) {
	f := newFixture()
	token, user := inviteOne(t, f)

	result, err := f.service.Edit(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)

	_, err = f.service.Edit(context.Background(), "expired")
	require.True(t, apperr.IsNotFound(err))
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, CouldNotLocateNotice, appErr.Message)
}

func TestEdit_UserWithoutAccountRedirects(t *testing.T) {
	f := newFixture()
	f.users.users["u-free"] = &auth.User{ID: "u-free", Email: "free@hotink.net"}
	f.tokens.tokens["abc"] = "u-free"

	result, err := f.service.Edit(context.Background(), "abc")
	require.NoError(t, err)
	assert.Nil(t, result.User)
	assert.Equal(t, "/api/v1/account-activations/abc", result.Redirect)
}

func TestUpdate_Activates(t *testing.T) {
	f := newFixture()
	token, user := inviteOne(t, f)

	result, err := f.service.Update(context.Background(), token, UpdateInput{
		Name: "Nell", Password: "long enough", PasswordConfirmation: "long enough",
	})
	require.NoError(t, err)

	assert.Equal(t, WelcomeNotice, result.Notice)
	assert.True(t, result.User.IsActive)
	assert.Equal(t, "Nell", result.User.Name)
	assert.True(t, sec.CheckPasswordHash("long enough", result.User.PasswordHash))
	assert.Equal(t, []grant{{3, user.ID, sec.RoleStaff}}, f.roles.grants)

	pending, err := f.service.Pending(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = f.service.Edit(context.Background(), token)
	assert.True(t, apperr.IsNotFound(err), "token is consumed")
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input UpdateInput
	}{
		{"blank name", UpdateInput{Name: " ", Password: "long enough", PasswordConfirmation: "long enough"}},
		{"short password", UpdateInput{Name: "Nell", Password: "short", PasswordConfirmation: "short"}},
		{"mismatch", UpdateInput{Name: "Nell", Password: "long enough", PasswordConfirmation: "long enougH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			token, user := inviteOne(t, f)

			_, err := f.service.Update(context.Background(), token, tt.input)
			assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"), "got %v", err)

			assert.False(t, f.users.users[user.ID].IsActive)
			assert.Empty(t, f.roles.grants)
			assert.Contains(t, f.tokens.tokens, token)
		})
	}
}

// # Revocation

func TestDestroy(t *testing.T) {
	f := newFixture()
	_, user := inviteOne(t, f)

	result, err := f.service.Destroy(context.Background(), 4, user.ID)
	require.NoError(t, err)
	assert.Equal(t, NotRevokedNotice, result.Notice, "other account")
	assert.Contains(t, f.users.users, user.ID)

	result, err = f.service.Destroy(context.Background(), 3, user.ID)
	require.NoError(t, err)
	assert.Equal(t, RevokedNotice, result.Notice)
	assert.Empty(t, result.Pending)
	assert.NotContains(t, f.users.users, user.ID)

	result, err = f.service.Destroy(context.Background(), 3, user.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotRevoked, result.Outcome)
}

func TestDestroy_ActiveUserIsNotPending(t *testing.T) {
	f := newFixture()
	token, user := inviteOne(t, f)
	_, err := f.service.Update(context.Background(), token, UpdateInput{
		Name: "Nell", Password: "long enough", PasswordConfirmation: "long enough",
	})
	require.NoError(t, err)

	result, err := f.service.Destroy(context.Background(), 3, user.ID)
	require.NoError(t, err)
	assert.Equal(t, NotRevokedNotice, result.Notice)
	assert.Contains(t, f.users.users, user.ID)
}

func TestIsPlausibleEmail(t *testing.T) {
	tests := map[string]bool{
		"ann@hotink.net":          true,
		"ANN.B+desk@news.co.uk":   true,
		"ed@paper.museum":         true,
		"ed@paper":                false,
		"ed@paper.xyz":            false,
		"@hotink.net":             false,
		"ann hotink@example.com":  false,
		"ann@hotink.net\nx@y.com": false,
	}

	for value, want := range tests {
		assert.Equal(t, want, IsPlausibleEmail(value), value)
	}
}

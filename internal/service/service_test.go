package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"blogs/internal/apperr"
	"blogs/internal/auth"
	"blogs/internal/config"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
	"blogs/internal/mail"
	"blogs/internal/model"
	"blogs/internal/storage"

	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Dispatch(ctx context.Context, msg mail.Message, policy mail.Policy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if policy == mail.Required && m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) last() mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return mail.Message{}
	}
	return m.sent[len(m.sent)-1]
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type testEnv struct {
	repo     model.Repository
	storeDir string
	clock    *testClock
	mailer   *fakeMailer
	auth     *AuthService
	content  *ContentService
	admin    *AdminService
	taxonomy *TaxonomyService
	ctx      context.Context
}

const resetTTL = 10 * time.Minute

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	repo, err := model.InitRepository(&config.Config{
		DBType: model.DBTypeSQLite,
		DBPath: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	sessions, err := auth.NewManager("test-secret", "blogs-test", 7*24*time.Hour, auth.WithClock(clock.Now))
	require.NoError(t, err)

	storeDir := t.TempDir()
	store, err := storage.NewLocalStorage(storeDir)
	require.NoError(t, err)

	mailer := &fakeMailer{}
	authSvc := NewAuthService(repo, sessions, mailer, AuthConfig{
		ClientURL:     "http://client.test",
		ResetTokenTTL: resetTTL,
	})
	authSvc.SetClock(clock.Now)
	content := NewContentService(repo, store, "/files")

	return &testEnv{
		repo:     repo,
		storeDir: storeDir,
		clock:    clock,
		mailer:   mailer,
		auth:     authSvc,
		content:  content,
		admin:    NewAdminService(repo, content),
		taxonomy: NewTaxonomyService(repo),
		ctx:      context.Background(),
	}
}

func (e *testEnv) register(t *testing.T, name, email string) (*db.User, *Session) {
	t.Helper()
	user, session, err := e.auth.Register(e.ctx, dto.RegisterRequest{Name: name, Email: email, Password: "pw123"})
	require.NoError(t, err)
	return user, session
}

func (e *testEnv) makeAdmin(t *testing.T, name, email string) *db.User {
	t.Helper()
	user, _ := e.register(t, name, email)
	require.True(t, user.PromoteToAdmin())
	require.NoError(t, e.repo.SaveUser(e.ctx, user))
	return user
}

func (e *testEnv) reload(t *testing.T, id uint) *db.User {
	t.Helper()
	user, err := e.repo.GetUserByID(e.ctx, id)
	require.NoError(t, err)
	return user
}

func strPtr(s string) *string { return &s }

func postInput(title, content string) dto.PostInput {
	return dto.PostInput{Title: strPtr(title), Content: strPtr(content)}
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, apperr.KindOf(err), "unexpected error: %v", err)
}

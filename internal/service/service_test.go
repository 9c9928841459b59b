package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"go-blog/internal/event"
	"go-blog/internal/repository"
	"go-blog/internal/testutil"
	"go-blog/pkg/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	var types []event.Type
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

type fixture struct {
	conn    *gorm.DB
	store   *LocalImageStore
	events  *recordingPublisher
	posts   *PostService
	follows *FollowService
	groups  *GroupService
	auth    *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	prev := config.GlobalConfig.JWT
	config.GlobalConfig.JWT = config.JWTConfig{Secret: "service-test-secret", Expiration: time.Hour}
	t.Cleanup(func() { config.GlobalConfig.JWT = prev })

	conn := testutil.NewDB(t)
	store, err := NewLocalImageStore(t.TempDir(), "media")
	require.NoError(t, err)

	users := repository.NewUserRepository(conn)
	groups := repository.NewGroupRepository(conn)
	events := &recordingPublisher{}

	return &fixture{
		conn:   conn,
		store:  store,
		events: events,
		posts: NewPostService(
			repository.NewPostRepository(conn),
			repository.NewCommentRepository(conn),
			groups,
			users,
			NewImageService(store, 1024),
			events,
			10,
		),
		follows: NewFollowService(repository.NewFollowRepository(conn), users, events),
		groups:  NewGroupService(groups, 7),
		auth:    NewAuthService(users),
	}
}

// fileHeader builds an uploaded file the way a multipart request would carry it.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File["image"], 1)
	return form.File["image"][0]
}

package service

import (
	"Blogverse/internal/model"
	"Blogverse/internal/repository"
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

var _ repository.UserRepo = (*mockUserRepo)(nil)

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserById(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetUsersByIds(ctx context.Context, ids []string) ([]*model.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) AttachPost(ctx context.Context, userID string, postID string, countTowardTotal bool) error {
	args := m.Called(ctx, userID, postID, countTowardTotal)
	return args.Error(0)
}

type recordingDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newRecordingDenylist() *recordingDenylist {
	return &recordingDenylist{revoked: make(map[string]time.Duration)}
}

func (d *recordingDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if d.err != nil {
		return d.err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[jti] = ttl
	return nil
}

func (d *recordingDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[jti]
	return ok, nil
}

// Package memstore 提供进程内的仓储实现，用于本地开发 (storage.driver=memory) 与测试
package memstore

import (
	"Blogverse/internal/model"
	"Blogverse/internal/repository"
	"context"
	"sync"
)

type UserRepo struct {
	mu         sync.RWMutex
	byID       map[string]*model.User
	byEmail    map[string]string
	byUsername map[string]string
}

var _ repository.UserRepo = (*UserRepo)(nil)

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:       make(map[string]*model.User),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
	}
}

func (s *UserRepo) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	if _, ok := s.byUsername[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	stored := cloneUser(user)
	s.byID[stored.ID] = stored
	s.byEmail[stored.Email] = stored.ID
	s.byUsername[stored.Username] = stored.ID
	return nil
}

func (s *UserRepo) GetUserById(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (s *UserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(s.byID[id]), nil
}

func (s *UserRepo) GetUsersByIds(_ context.Context, ids []string) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := s.byID[id]; ok {
			u := cloneUser(user)
			u.Password = ""
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *UserRepo) AttachPost(_ context.Context, userID string, postID string, countTowardTotal bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if user.OwnsPost(postID) {
		return nil
	}
	user.Blogs = append(user.Blogs, postID)
	if countTowardTotal {
		user.TotalPosts++
	}
	return nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Blogs = append([]string{}, u.Blogs...)
	return &c
}

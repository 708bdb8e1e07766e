package memstore

import (
	"Blogverse/internal/model"
	"Blogverse/internal/repository"
	"context"
	"sort"
	"sync"
	"time"
)

type PostRepo struct {
	mu       sync.RWMutex
	posts    []*model.Post
	byBlogID map[string]*model.Post
}

var _ repository.PostRepo = (*PostRepo)(nil)

func NewPostRepo() *PostRepo {
	return &PostRepo{
		byBlogID: make(map[string]*model.Post),
	}
}

func (s *PostRepo) CreatePost(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byBlogID[post.BlogID]; ok {
		return repository.ErrDuplicateBlogID
	}
	stored := clonePost(post)
	s.posts = append(s.posts, stored)
	s.byBlogID[stored.BlogID] = stored
	return nil
}

func (s *PostRepo) FindPosts(_ context.Context, query repository.PostQuery) ([]*model.Post, error) {
	s.mu.RLock()
	matched := make([]*model.Post, 0)
	for _, p := range s.posts {
		if query.Filter.Match(p.Title, p.Tags, p.Draft) {
			matched = append(matched, clonePost(p))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, less(matched, query.Sort))

	start := min(max(query.Skip, 0), int64(len(matched)))
	end := int64(len(matched))
	if query.Limit > 0 {
		end = min(start+query.Limit, end)
	}
	page := matched[start:end]
	for _, p := range page {
		p.Content = model.Content{}
	}
	return page, nil
}

func (s *PostRepo) CountPosts(_ context.Context, filter repository.PostFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, p := range s.posts {
		if filter.Match(p.Title, p.Tags, p.Draft) {
			total++
		}
	}
	return total, nil
}

func (s *PostRepo) FindPostsSince(_ context.Context, since time.Time) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*model.Post, 0)
	for _, p := range s.posts {
		if !p.PublishedAt.Before(since) {
			posts = append(posts, clonePost(p))
		}
	}
	return posts, nil
}

func (s *PostRepo) IncrementActivity(_ context.Context, blogID string, reads, likes int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.byBlogID[blogID]
	if !ok {
		return repository.ErrNotFound
	}
	post.Activity.TotalReads = max(post.Activity.TotalReads+reads, 0)
	post.Activity.TotalLikes = max(post.Activity.TotalLikes+likes, 0)
	return nil
}

func less(posts []*model.Post, order repository.SortOrder) func(i, j int) bool {
	return func(i, j int) bool {
		a, b := posts[i], posts[j]
		if order == repository.SortTrending {
			if a.Activity.TotalReads != b.Activity.TotalReads {
				return a.Activity.TotalReads > b.Activity.TotalReads
			}
			if a.Activity.TotalLikes != b.Activity.TotalLikes {
				return a.Activity.TotalLikes > b.Activity.TotalLikes
			}
		}
		return a.PublishedAt.After(b.PublishedAt)
	}
}

func clonePost(p *model.Post) *model.Post {
	c := *p
	c.Tags = append([]string{}, p.Tags...)
	c.Content.Blocks = append([]model.Block{}, p.Content.Blocks...)
	return &c
}

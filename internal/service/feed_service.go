package service

import (
	"Blogverse/internal/api/dto"
	"Blogverse/internal/model"
	"Blogverse/internal/repository"
	"context"
	"math"

	"github.com/jinzhu/copier"
)

const (
	msgPageNegative = "Page must be a positive number"
	msgPageTooLarge = "Page is out of range"
)

// FeedLimits 各发现接口的条数
type FeedLimits struct {
	Latest         int64
	Trending       int64
	SearchPageSize int64
}

func DefaultFeedLimits() FeedLimits {
	return FeedLimits{Latest: 5, Trending: 5, SearchPageSize: 2}
}

type FeedService interface {
	Latest(ctx context.Context) ([]*dto.BlogCardDTO, error)
	Trending(ctx context.Context) ([]*dto.BlogCardDTO, error)
	Search(ctx context.Context, dto *dto.SearchDTO) ([]*dto.BlogCardDTO, error)
	Count(ctx context.Context, dto *dto.SearchCountDTO) (int64, error)
}

type FeedServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	limits   FeedLimits
}

func NewFeedService(postRepo repository.PostRepo, userRepo repository.UserRepo, limits FeedLimits) FeedService {
	defaults := DefaultFeedLimits()
	if limits.Latest <= 0 {
		limits.Latest = defaults.Latest
	}
	if limits.Trending <= 0 {
		limits.Trending = defaults.Trending
	}
	if limits.SearchPageSize <= 0 {
		limits.SearchPageSize = defaults.SearchPageSize
	}
	return &FeedServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
		limits:   limits,
	}
}

func (s *FeedServiceImpl) Latest(ctx context.Context) ([]*dto.BlogCardDTO, error) {
	return s.find(ctx, repository.PostQuery{Sort: repository.SortLatest, Limit: s.limits.Latest})
}

func (s *FeedServiceImpl) Trending(ctx context.Context) ([]*dto.BlogCardDTO, error) {
	return s.find(ctx, repository.PostQuery{Sort: repository.SortTrending, Limit: s.limits.Trending})
}

func (s *FeedServiceImpl) Search(ctx context.Context, searchDTO *dto.SearchDTO) ([]*dto.BlogCardDTO, error) {
	page := searchDTO.Page
	if page < 0 {
		return nil, newValidationError("page", msgPageNegative)
	}
	if page == 0 {
		page = 1
	}
	// skip 不能溢出 int64
	if page-1 > math.MaxInt64/s.limits.SearchPageSize {
		return nil, newValidationError("page", msgPageTooLarge)
	}
	return s.find(ctx, repository.PostQuery{
		Filter: repository.NewPostFilter(searchDTO.Tag, searchDTO.Query),
		Sort:   repository.SortLatest,
		Skip:   (page - 1) * s.limits.SearchPageSize,
		Limit:  s.limits.SearchPageSize,
	})
}

// Count 只使用本次请求的参数构造筛选条件
func (s *FeedServiceImpl) Count(ctx context.Context, countDTO *dto.SearchCountDTO) (int64, error) {
	total, err := s.postRepo.CountPosts(ctx, repository.NewPostFilter(countDTO.Tag, countDTO.Query))
	if err != nil {
		return 0, &StorageError{Op: "count posts", Cause: err}
	}
	return total, nil
}

func (s *FeedServiceImpl) find(ctx context.Context, query repository.PostQuery) ([]*dto.BlogCardDTO, error) {
	posts, err := s.postRepo.FindPosts(ctx, query)
	if err != nil {
		return nil, &StorageError{Op: "find posts", Cause: err}
	}
	authors, err := s.loadAuthors(ctx, posts)
	if err != nil {
		return nil, &StorageError{Op: "find authors", Cause: err}
	}

	cards := make([]*dto.BlogCardDTO, 0, len(posts))
	for _, post := range posts {
		card := &dto.BlogCardDTO{}
		if err = copier.Copy(card, post); err != nil {
			return nil, err
		}
		if card.Tags == nil {
			card.Tags = []string{}
		}
		if author, ok := authors[post.Author]; ok {
			if err = copier.Copy(&card.Author, author); err != nil {
				return nil, err
			}
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// loadAuthors 一次批量查询本页所有作者
func (s *FeedServiceImpl) loadAuthors(ctx context.Context, posts []*model.Post) (map[string]*model.User, error) {
	ids := make([]string, 0, len(posts))
	seen := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.Author]; ok {
			continue
		}
		seen[post.Author] = struct{}{}
		ids = append(ids, post.Author)
	}
	users, err := s.userRepo.GetUsersByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	authors := make(map[string]*model.User, len(users))
	for _, user := range users {
		authors[user.ID] = user
	}
	return authors, nil
}

package repository

import (
	"Blogverse/internal/model"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	FindPosts(ctx context.Context, query PostQuery) ([]*model.Post, error)
	CountPosts(ctx context.Context, filter PostFilter) (int64, error)
	FindPostsSince(ctx context.Context, since time.Time) ([]*model.Post, error)
	IncrementActivity(ctx context.Context, blogID string, reads, likes int64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return translateMySQLError(s.db.WithContext(ctx).Create(post).Error)
}

func (s *PostRepoImpl) FindPosts(ctx context.Context, query PostQuery) ([]*model.Post, error) {
	tx := applyPostFilter(s.db.WithContext(ctx).Model(&model.Post{}), query.Filter).Omit("content")
	if query.Sort == SortTrending {
		tx = tx.Order("activity_total_reads DESC").Order("activity_total_likes DESC")
	}
	tx = tx.Order("published_at DESC")
	if query.Skip > 0 {
		tx = tx.Offset(int(query.Skip))
	}
	if query.Limit > 0 {
		tx = tx.Limit(int(query.Limit))
	}

	posts := make([]*model.Post, 0)
	if err := tx.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPosts(ctx context.Context, filter PostFilter) (int64, error) {
	var total int64
	err := applyPostFilter(s.db.WithContext(ctx).Model(&model.Post{}), filter).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *PostRepoImpl) FindPostsSince(ctx context.Context, since time.Time) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Omit("content").
		Where("published_at >= ?", since).
		Order("published_at ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrementActivity total_likes 不会被减到 0 以下
func (s *PostRepoImpl) IncrementActivity(ctx context.Context, blogID string, reads, likes int64) error {
	updates := map[string]any{}
	if reads != 0 {
		updates["activity_total_reads"] = gorm.Expr("GREATEST(activity_total_reads + ?, 0)", reads)
	}
	if likes != 0 {
		updates["activity_total_likes"] = gorm.Expr("GREATEST(activity_total_likes + ?, 0)", likes)
	}
	if len(updates) == 0 {
		return nil
	}

	var exists int64
	if err := s.db.WithContext(ctx).Model(&model.Post{}).Where("blog_id = ?", blogID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("blog_id = ?", blogID).Updates(updates).Error
}

func applyPostFilter(tx *gorm.DB, filter PostFilter) *gorm.DB {
	tx = tx.Where("draft = ?", false)
	if filter.Tag != "" {
		return tx.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", filter.Tag)
	}
	if filter.Query != "" {
		return tx.Where("LOWER(title) LIKE ?", "%"+escapeLike(strings.ToLower(filter.Query))+"%")
	}
	return tx
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

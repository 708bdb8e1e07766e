package repository

import (
	"Blogverse/internal/model"
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUsersByIds(ctx context.Context, ids []string) ([]*model.User, error)
	AttachPost(ctx context.Context, userID string, postID string, countTowardTotal bool) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return translateMySQLError(s.db.WithContext(ctx).Create(user).Error)
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id string) (*model.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.first(ctx, "email = ?", email)
}

func (s *UserRepoImpl) GetUsersByIds(ctx context.Context, ids []string) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	result := s.db.WithContext(ctx).
		Omit("password").
		Where("id IN ?", ids).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// AttachPost 追加文章 ID 并按需累加 total_posts，文章已关联时不做任何修改，作者不存在时返回 ErrNotFound
func (s *UserRepoImpl) AttachPost(ctx context.Context, userID string, postID string, countTowardTotal bool) error {
	increment := 0
	if countTowardTotal {
		increment = 1
	}
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND NOT JSON_CONTAINS(COALESCE(blogs, JSON_ARRAY()), JSON_QUOTE(?))", userID, postID).
		Updates(map[string]any{
			"total_posts": gorm.Expr("total_posts + ?", increment),
			"blogs":       gorm.Expr("JSON_ARRAY_APPEND(COALESCE(blogs, JSON_ARRAY()), '$', ?)", postID),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var exists int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserRepoImpl) first(ctx context.Context, query string, args ...any) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where(query, args...).First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

// translateMySQLError 将 1062 唯一键冲突转换为对应的哨兵错误
func translateMySQLError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		if dup := ClassifyDuplicate(mysqlErr.Message); dup != nil {
			return dup
		}
	}
	return err
}

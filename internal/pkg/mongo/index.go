package mongo

import (
	"Blogverse/internal/repository"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection = "users"
	BlogsCollection = "blogs"
)

// EnsureIndexes 创建唯一约束与查询索引，重复执行是安全的
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(repository.EmailIndex),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(repository.UsernameIndex),
		},
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	blogIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "blog_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(repository.BlogIDIndex),
		},
		{
			Keys: bson.D{{Key: "author", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "draft", Value: 1}, {Key: "published_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "tags", Value: 1}, {Key: "published_at", Value: -1}},
		},
	}
	if _, err := db.Collection(BlogsCollection).Indexes().CreateMany(ctx, blogIndexes); err != nil {
		return fmt.Errorf("failed to create blog indexes: %w", err)
	}
	return nil
}

// translateWriteError 将 E11000 转换为 repository 层的哨兵错误
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		if dup := repository.ClassifyDuplicate(err.Error()); dup != nil {
			return dup
		}
	}
	return err
}

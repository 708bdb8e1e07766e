package mongo

import (
	"Blogverse/internal/model"
	"Blogverse/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) repository.UserRepo {
	return &userRepoImpl{
		col: db.Collection(UsersCollection),
	}
}

func (s *userRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	_, err := s.col.InsertOne(ctx, user)
	return translateWriteError(err)
}

func (s *userRepoImpl) GetUserById(ctx context.Context, id string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *userRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// GetUsersByIds 批量获取作者信息，不返回密码哈希
func (s *userRepoImpl) GetUsersByIds(ctx context.Context, ids []string) ([]*model.User, error) {
	if len(ids) == 0 {
		return []*model.User{}, nil
	}
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	users := make([]*model.User, 0, len(ids))
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AttachPost blogs 中已存在 postID 时过滤条件不命中，更新不会重复执行。作者不存在时返回 ErrNotFound
func (s *userRepoImpl) AttachPost(ctx context.Context, userID string, postID string, countTowardTotal bool) error {
	increment := 0
	if countTowardTotal {
		increment = 1
	}
	filter := bson.M{"_id": userID, "blogs": bson.M{"$ne": postID}}
	update := bson.M{
		"$push": bson.M{"blogs": postID},
		"$inc":  bson.M{"total_posts": increment},
	}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}
	// 未命中可能是已关联，也可能是作者不存在
	exists, err := s.col.CountDocuments(ctx, bson.M{"_id": userID}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if exists == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *userRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

package mongo

import (
	"Blogverse/internal/model"
	"Blogverse/internal/repository"
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) repository.PostRepo {
	return &postRepoImpl{
		col: db.Collection(BlogsCollection),
	}
}

func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	_, err := s.col.InsertOne(ctx, post)
	return translateWriteError(err)
}

// FindPosts 列表查询不返回正文
func (s *postRepoImpl) FindPosts(ctx context.Context, query repository.PostQuery) ([]*model.Post, error) {
	opts := options.Find().
		SetSort(buildSort(query.Sort)).
		SetProjection(bson.M{"content": 0})
	if query.Skip > 0 {
		opts.SetSkip(query.Skip)
	}
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}
	return s.find(ctx, buildFilter(query.Filter), opts)
}

func (s *postRepoImpl) CountPosts(ctx context.Context, filter repository.PostFilter) (int64, error) {
	return s.col.CountDocuments(ctx, buildFilter(filter))
}

func (s *postRepoImpl) FindPostsSince(ctx context.Context, since time.Time) ([]*model.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: 1}}).
		SetProjection(bson.M{"content": 0})
	return s.find(ctx, bson.M{"published_at": bson.M{"$gte": since}}, opts)
}

// IncrementActivity 减少点赞时要求当前值足够，避免出现负数
func (s *postRepoImpl) IncrementActivity(ctx context.Context, blogID string, reads, likes int64) error {
	inc := bson.M{}
	if reads != 0 {
		inc["activity.total_reads"] = reads
	}
	if likes != 0 {
		inc["activity.total_likes"] = likes
	}
	if len(inc) == 0 {
		return nil
	}

	filter := bson.M{"blog_id": blogID}
	if likes < 0 {
		filter["activity.total_likes"] = bson.M{"$gte": -likes}
	}
	if reads < 0 {
		filter["activity.total_reads"] = bson.M{"$gte": -reads}
	}
	result, err := s.col.UpdateOne(ctx, filter, bson.M{"$inc": inc})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 && likes >= 0 && reads >= 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *postRepoImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Post, error) {
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*model.Post, 0)
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// buildFilter 标签精确匹配优先，否则按标题做不区分大小写的子串匹配
func buildFilter(filter repository.PostFilter) bson.M {
	query := bson.M{"draft": false}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
		return query
	}
	if filter.Query != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
	}
	return query
}

func buildSort(order repository.SortOrder) bson.D {
	if order == repository.SortTrending {
		return bson.D{
			{Key: "activity.total_reads", Value: -1},
			{Key: "activity.total_likes", Value: -1},
			{Key: "published_at", Value: -1},
		}
	}
	return bson.D{{Key: "published_at", Value: -1}}
}

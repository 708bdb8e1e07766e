//go:build integration

package mongo

import (
	"Blogverse/internal/api/config"
	"Blogverse/internal/model"
	"Blogverse/internal/repository"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startMongo(t *testing.T) config.MongoConfig {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return config.MongoConfig{
		URL:      fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		Database: "blogverse_test",
	}
}

func TestMongoRepos_Integration(t *testing.T) {
	db, err := InitMongo(context.Background(), startMongo(t))
	require.NoError(t, err)
	ctx := context.Background()

	users := NewUserRepo(db)
	posts := NewPostRepo(db)

	jane := &model.User{ID: "u1", Fullname: "Jane Doe", Email: "jane@x.com", Username: "jane", Blogs: []string{}}
	require.NoError(t, users.CreateUser(ctx, jane))
	assert.ErrorIs(t, users.CreateUser(ctx, &model.User{ID: "u2", Email: "jane@x.com", Username: "other", Blogs: []string{}}), repository.ErrDuplicateEmail)
	assert.ErrorIs(t, users.CreateUser(ctx, &model.User{ID: "u3", Email: "x@x.com", Username: "jane", Blogs: []string{}}), repository.ErrDuplicateUsername)

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, posts.CreatePost(ctx, &model.Post{ID: "p1", BlogID: "Hello-1", Title: "Hello Go", Tags: []string{"go"}, Author: "u1", PublishedAt: now}))
	require.NoError(t, posts.CreatePost(ctx, &model.Post{ID: "p2", BlogID: "Draft-2", Title: "Draft Go", Tags: []string{"go"}, Author: "u1", Draft: true, PublishedAt: now}))

	require.NoError(t, users.AttachPost(ctx, "u1", "p1", true))
	require.NoError(t, users.AttachPost(ctx, "u1", "p1", true))
	stored, err := users.GetUserById(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, stored.Blogs)
	assert.Equal(t, int64(1), stored.TotalPosts)

	total, err := posts.CountPosts(ctx, repository.NewPostFilter("go", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	require.NoError(t, posts.IncrementActivity(ctx, "Hello-1", 3, 1))
	require.NoError(t, posts.IncrementActivity(ctx, "Hello-1", 0, -2))
	found, err := posts.FindPosts(ctx, repository.PostQuery{Filter: repository.NewPostFilter("", "hello")})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, model.Activity{TotalReads: 3, TotalLikes: 1}, found[0].Activity)
}

package service

import (
	"Blogverse/internal/api/dto"
	"Blogverse/internal/model"
	"Blogverse/internal/pkg/util"
	"Blogverse/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxDescriptionLen = 200

const (
	msgTitle   = "You must provide a title to publish the blog"
	msgDesc    = "You must provide a description under 200 characters"
	msgBanner  = "You must provide a banner to publish the blog"
	msgContent = "There must be some blog content to publish it"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID string, dto *dto.CreatePostDTO) (string, error)
}

type PostServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost 写入文章后再更新作者，两步之间没有事务
func (s *PostServiceImpl) CreatePost(ctx context.Context, authorID string, postDTO *dto.CreatePostDTO) (string, error) {
	if err := checkPost(postDTO); err != nil {
		return "", err
	}

	author, err := s.userRepo.GetUserById(ctx, authorID)
	if err != nil {
		return "", &StorageError{Op: "find author", Cause: err}
	}
	if author == nil {
		return "", ErrAuthorNotFound
	}

	post := &model.Post{
		ID:          uuid.NewString(),
		BlogID:      util.BuildSlug(postDTO.Title),
		Title:       postDTO.Title,
		Des:         postDTO.Description(),
		Banner:      postDTO.Banner,
		Content:     postDTO.Content,
		Tags:        normalizeTags(postDTO.Tags),
		Author:      author.ID,
		Draft:       postDTO.Draft,
		PublishedAt: time.Now().UTC(),
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return "", &StorageError{Op: "create post", Cause: err}
	}

	if err = s.userRepo.AttachPost(ctx, author.ID, post.ID, !post.Draft); err != nil {
		log.ErrorContext(ctx, "post created but author not linked", "blog_id", post.BlogID, "author", author.ID, "err", err)
		return "", &PartialWriteError{
			BlogID:    post.BlogID,
			Succeeded: "create post",
			Failed:    "link author",
			Cause:     err,
		}
	}
	return post.BlogID, nil
}

func checkPost(postDTO *dto.CreatePostDTO) error {
	desc := postDTO.Description()
	switch {
	case postDTO.Title == "":
		return newValidationError("title", msgTitle)
	case desc == "", utf8.RuneCountInString(desc) > maxDescriptionLen:
		return newValidationError("des", msgDesc)
	case postDTO.Banner == "":
		return newValidationError("banner", msgBanner)
	case len(postDTO.Content.Blocks) == 0:
		return newValidationError("content", msgContent)
	}
	return nil
}

// normalizeTags 小写并去掉空标签
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

package job

import (
	"Blogverse/internal/model"
	"Blogverse/internal/pkg/logger"
	"Blogverse/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const defaultLookback = 24 * time.Hour

// ReconcileJob 补齐发文成功但未关联作者的文章
type ReconcileJob struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	lookback time.Duration
	now      func() time.Time
}

func NewReconcileJob(postRepo repository.PostRepo, userRepo repository.UserRepo, lookback time.Duration) *ReconcileJob {
	if lookback <= 0 {
		lookback = defaultLookback
	}
	return &ReconcileJob{
		postRepo: postRepo,
		userRepo: userRepo,
		lookback: lookback,
		now:      time.Now,
	}
}

func (s *ReconcileJob) Run() {
	traceID := "job-reconcile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	repaired, err := s.Reconcile(ctx)
	if err != nil {
		log.ErrorContext(ctx, "reconcile author bookkeeping failed", "err", err)
		return
	}
	if repaired > 0 {
		log.InfoContext(ctx, "reconcile author bookkeeping finished", "repaired", repaired)
	}
}

// Reconcile 返回本次补齐的文章数。AttachPost 幂等，重复执行无副作用
func (s *ReconcileJob) Reconcile(ctx context.Context) (int, error) {
	posts, err := s.postRepo.FindPostsSince(ctx, s.now().Add(-s.lookback))
	if err != nil {
		return 0, err
	}
	if len(posts) == 0 {
		return 0, nil
	}

	authors, err := s.loadAuthors(ctx, posts)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, post := range posts {
		author, ok := authors[post.Author]
		if !ok {
			log.WarnContext(ctx, "post references missing author", "blog_id", post.BlogID, "author", post.Author)
			continue
		}
		if author.OwnsPost(post.ID) {
			continue
		}
		if err = s.userRepo.AttachPost(ctx, author.ID, post.ID, !post.Draft); err != nil {
			log.ErrorContext(ctx, "link post to author failed", "blog_id", post.BlogID, "err", err)
			continue
		}
		author.Blogs = append(author.Blogs, post.ID)
		repaired++
	}
	return repaired, nil
}

func (s *ReconcileJob) loadAuthors(ctx context.Context, posts []*model.Post) (map[string]*model.User, error) {
	ids := make([]string, 0, len(posts))
	seen := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.Author]; !ok {
			seen[post.Author] = struct{}{}
			ids = append(ids, post.Author)
		}
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

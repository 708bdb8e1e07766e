package wire

import (
	"Blogverse/internal/api"
	"Blogverse/internal/api/config"
	"Blogverse/internal/api/handler"
	"Blogverse/internal/api/middleware"
	"Blogverse/internal/job"
	"Blogverse/internal/pkg/cron"
	"Blogverse/internal/pkg/kafka"
	"Blogverse/internal/pkg/security"
	"Blogverse/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	Stores *Stores
	// 未配置 brokers 时为 nil
	KafkaManager *kafka.ConsumerManager
	// reconcile.enable 为 false 时为 nil
	CronMgr *cron.Manager
}

func BuildApplication(cfg *config.Config, stores *Stores, signer service.URLSigner, denylist security.Denylist) (*ApplicationContainer, error) {
	tokens, err := security.NewTokenAuthority(cfg.Token.Secret, cfg.Token.TTL)
	if err != nil {
		return nil, err
	}
	if denylist == nil {
		denylist = security.NopDenylist()
	}
	hasher := security.NewPasswordHasher(cfg.Security.BcryptCost)

	userService := service.NewUserService(stores.Users, hasher, tokens, denylist)
	postService := service.NewPostService(stores.Posts, stores.Users)
	feedService := service.NewFeedService(stores.Posts, stores.Users, service.FeedLimits{
		Latest:         cfg.Feed.LatestLimit,
		Trending:       cfg.Feed.TrendingLimit,
		SearchPageSize: cfg.Feed.SearchPageSize,
	})
	mediaService := service.NewMediaService(signer)

	handlers := &api.HandlersGroup{
		UserHandler:  handler.NewUserHandler(userService),
		PostHandler:  handler.NewPostHandler(postService),
		FeedHandler:  handler.NewFeedHandler(feedService),
		MediaHandler: handler.NewMediaHandler(mediaService),
		Auth:         middleware.AuthMiddleware(tokens, denylist),
		CORSOrigins:  cfg.Server.AllowedOrigins,
	}
	router := api.SetupRouter(handlers)

	app := &ApplicationContainer{
		Router: router,
		Stores: stores,
	}

	if len(cfg.Kafka.Brokers) > 0 {
		app.KafkaManager, err = kafka.NewConsumerManager(cfg.Kafka, cfg.KafkaActivityConsumer, stores.Posts)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Reconcile.Enable {
		reconcileJob := job.NewReconcileJob(stores.Posts, stores.Users, cfg.Reconcile.Lookback)
		app.CronMgr = cron.NewCronManager(reconcileJob, cfg.Reconcile.Spec)
	}

	return app, nil
}

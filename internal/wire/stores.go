package wire

import (
	"Blogverse/internal/api/config"
	"Blogverse/internal/pkg/database"
	"Blogverse/internal/pkg/memstore"
	"Blogverse/internal/pkg/mongo"
	"Blogverse/internal/repository"
	"context"
	"fmt"
	log "log/slog"
)

// Stores 按 storage.driver 选择的仓储实现
type Stores struct {
	Users repository.UserRepo
	Posts repository.PostRepo
	close func(ctx context.Context) error
}

// OpenStores 建立存储连接，调用方负责 Close
func OpenStores(cfg *config.Config) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		db, err := mongo.InitMongo(context.Background(), cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("failed to create mongo connection: %w", err)
		}
		return &Stores{
			Users: mongo.NewUserRepo(db),
			Posts: mongo.NewPostRepo(db),
			close: db.Client().Disconnect,
		}, nil
	case config.DriverMySQL:
		db, err := database.NewGormDB(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to create database connection: %w", err)
		}
		if err = database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users: repository.NewUserRepo(db),
			Posts: repository.NewPostRepository(db),
			close: func(context.Context) error { return sqlDB.Close() },
		}, nil
	case config.DriverMemory:
		log.Warn("Using in-memory storage, data is lost on restart")
		return NewMemoryStores(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func NewMemoryStores() *Stores {
	return &Stores{
		Users: memstore.NewUserRepo(),
		Posts: memstore.NewPostRepo(),
	}
}

func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

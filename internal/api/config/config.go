package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "BLOGVERSE"

var defaults = map[string]any{
	"server.port":                       8080,
	"server.allowed_origins":            []string{},
	"log.level":                         "info",
	"log.remote_address":                "",
	"log.index":                         "logstash-blogverse",
	"storage.driver":                    DriverMongo,
	"mongo.url":                         "mongodb://localhost:27017",
	"mongo.database":                    "blogverse",
	"database.dsn":                      "",
	"database.max_idle":                 10,
	"database.max_open":                 100,
	"database.max_lifetime":             60,
	"redis.addr":                        "",
	"redis.password":                    "",
	"redis.db":                          0,
	"redis.pool_size":                   10,
	"minio.endpoint":                    "",
	"minio.region":                      "",
	"minio.access_key":                  "",
	"minio.secret_key":                  "",
	"minio.bucket":                      "",
	"minio.use_ssl":                     true,
	"token.secret":                      "",
	"token.ttl":                         "24h",
	"security.bcrypt_cost":              0,
	"feed.latest_limit":                 5,
	"feed.trending_limit":               5,
	"feed.search_page_size":             2,
	"kafka.brokers":                     []string{},
	"kafka.sasl.enable":                 false,
	"kafka.sasl.username":               "",
	"kafka.sasl.password":               "",
	"kafka.consumer.session_timeout":    10000,
	"kafka.consumer.heartbeat_interval": 3000,
	"kafka.consumer.rebalance_timeout":  60000,
	"kafka_activity_consumer.topic":     "blog-activity",
	"kafka_activity_consumer.group_id":  "blogverse-activity",
	"reconcile.enable":                  true,
	"reconcile.spec":                    "0 */10 * * * *",
	"reconcile.lookback":                "24h",
}

// LoadConfig 读取配置文件并应用 BLOGVERSE_ 前缀的环境变量覆盖。path 为空时查找 ./configs/config.yaml
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Token.Secret == "" {
		return errors.New("token.secret is required")
	}
	if c.Token.TTL < 0 {
		return errors.New("token.ttl must not be negative")
	}
	switch c.Storage.Driver {
	case DriverMongo:
		if c.Mongo.URL == "" || c.Mongo.Database == "" {
			return errors.New("mongo.url and mongo.database are required for the mongo driver")
		}
	case DriverMySQL:
		if c.DB.DSN == "" {
			return errors.New("database.dsn is required for the mysql driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
		return errors.New("minio.endpoint and minio.bucket are required")
	}
	return nil
}

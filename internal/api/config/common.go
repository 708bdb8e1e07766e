package config

import "time"

// Config 配置主体
type Config struct {
	Server                ServerConfig          `mapstructure:"server"`
	Log                   LogConfig             `mapstructure:"log"`
	Storage               StorageConfig         `mapstructure:"storage"`
	Mongo                 MongoConfig           `mapstructure:"mongo"`
	DB                    DBConfig              `mapstructure:"database"`
	Redis                 RedisConfig           `mapstructure:"redis"`
	MinIO                 MinIOConfig           `mapstructure:"minio"`
	Token                 TokenConfig           `mapstructure:"token"`
	Security              SecurityConfig        `mapstructure:"security"`
	Feed                  FeedConfig            `mapstructure:"feed"`
	Kafka                 KafkaConfig           `mapstructure:"kafka"`
	KafkaActivityConsumer KafkaActivityConsumer `mapstructure:"kafka_activity_consumer"`
	Reconcile             ReconcileConfig       `mapstructure:"reconcile"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig remote_address 为空时只输出到 stdout
type LogConfig struct {
	Level         string `mapstructure:"level"`
	RemoteAddress string `mapstructure:"remote_address"`
	Index         string `mapstructure:"index"`
}

const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// RedisConfig Addr 为空时不启用 Token 注销
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig 兼容 S3
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// TokenConfig TTL 为 0 时 Token 不过期
type TokenConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type FeedConfig struct {
	LatestLimit    int64 `mapstructure:"latest_limit"`
	TrendingLimit  int64 `mapstructure:"trending_limit"`
	SearchPageSize int64 `mapstructure:"search_page_size"`
}

// KafkaConfig Brokers 为空时不启动消费者
type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// ConsumerConfig 单位均为毫秒
type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
}

type KafkaActivityConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type ReconcileConfig struct {
	Enable   bool          `mapstructure:"enable"`
	Spec     string        `mapstructure:"spec"`
	Lookback time.Duration `mapstructure:"lookback"`
}

package config

import "time"

// APIGateway api_gateway YAML structure
type APIGateway struct {
	Port          string        `mapstructure:"port"`
	MemberService ServiceConfig `mapstructure:"member"`

	PostgreSQL DatabaseConfig `mapstructure:"pg"`
	Redis      RedisConfig    `mapstructure:"redis"`
	MinIO      MinIOConfig    `mapstructure:"minio"`
	RabbitMQ   RabbitMQConfig `mapstructure:"rabbitmq"`

	// AvatarURLExpiry presigned avatar url lifetime, in minutes
	AvatarURLExpiry time.Duration `mapstructure:"avatar_url_expiry"`
	// PublicURL origin of the gateway as seen by clients, prefixed to stored avatar urls
	PublicURL   string `mapstructure:"public_url"`
	SeedCatalog bool   `mapstructure:"seed_catalog"`
}

// Member member_service YAML structure
type Member struct {
	Port       string        `mapstructure:"port"`
	IP         string        `mapstructure:"ip"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`

	PostgreSQL  DatabaseConfig `mapstructure:"pg"`
	RedisMember RedisConfig    `mapstructure:"redis"`
}

// Chat chat_service YAML structure
type Chat struct {
	Port          string         `mapstructure:"port"`
	MongoDB       DatabaseConfig `mapstructure:"mongo"`
	Redis         RedisConfig    `mapstructure:"redis"`
	MemberService ServiceConfig  `mapstructure:"member"`
	Kafka         KafkaConfig    `mapstructure:"kafka"`

	// PresenceTTL seconds an online flag survives without a heartbeat
	PresenceTTL time.Duration `mapstructure:"presence_ttl"`
	SendRate    float64       `mapstructure:"send_rate"`
	SendBurst   int           `mapstructure:"send_burst"`
}

// MediaWorker media_worker YAML structure
type MediaWorker struct {
	MinIO    MinIOConfig    `mapstructure:"minio"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
}

// ServiceConfig downstream grpc service address
type ServiceConfig struct {
	IP   string `mapstructure:"service_ip"`
	Port string `mapstructure:"service_port"`
	Name string `mapstructure:"service_name"`
}

// RedisConfig redis setting, Addr is only used when no sentinel is configured
type RedisConfig struct {
	RedisDB int    `mapstructure:"redis_db"`
	Addr    string `mapstructure:"addr"`
}

// DatabaseConfig db setting
type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Database      string `mapstructure:"database"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}

// MinIOConfig object storage setting
type MinIOConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	BucketName    string        `mapstructure:"bucket_name"`
	UseSSL        bool          `mapstructure:"use_ssl"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
	RetryCount    int           `mapstructure:"retry_count"`
}

// RabbitMQConfig rabbitmq setting
type RabbitMQConfig struct {
	IP            string        `mapstructure:"ip"`
	Port          string        `mapstructure:"port"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
	RetryCount    int           `mapstructure:"retry_count"`
}

// KafkaConfig kafka writer setting
type KafkaConfig struct {
	Brokers       []string      `mapstructure:"brokers"`
	Topic         string        `mapstructure:"topic"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
	RetryCount    int           `mapstructure:"retry_count"`
	// PublishTimeout milliseconds one event write may take
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

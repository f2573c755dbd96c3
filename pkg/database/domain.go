package database

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Connection connect string plus retry policy.
// RetryInterval is counted in seconds.
type Connection struct {
	ConnectStr string

	RetryCount    int
	RetryInterval time.Duration
}

// MongoDB mongo client and selected database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// MinIOConnection minio endpoint and bucket
type MinIOConnection struct {
	Endpoint   string
	User       string
	Password   string
	BucketName string
	UseSSL     bool

	RetryCount    int
	RetryInterval time.Duration
}

// KafkaConnection kafka brokers and topic
type KafkaConnection struct {
	Brokers       []string
	Topic         string
	RetryCount    int
	RetryInterval time.Duration
}

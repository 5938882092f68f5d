package cmd

import "time"

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	DBLockTimeout          time.Duration
	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxBatchSize        int
}

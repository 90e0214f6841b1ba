package config

import (
	"time"

	"github.com/spf13/viper"
)

// SetDefaults registers a default for every key so environment overrides
// reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.sqlite_path", "barrelman.db")
	v.SetDefault("storage.postgres_dsn", "")

	v.SetDefault("entity.binary_equality", "reference")

	v.SetDefault("blob.driver", "fs")
	v.SetDefault("blob.fs_root", "blobs")
	v.SetDefault("blob.s3.region", "us-east-1")
	v.SetDefault("blob.s3.bucket", "")
	v.SetDefault("blob.s3.prefix", "")
	v.SetDefault("blob.s3.endpoint", "")
	v.SetDefault("blob.s3.access_key_id", "")
	v.SetDefault("blob.s3.secret_access_key", "")
	v.SetDefault("blob.s3.session_token", "")
	v.SetDefault("blob.s3.path_style", false)

	v.SetDefault("replication.name", "default")
	v.SetDefault("replication.batch_size", 256)
	v.SetDefault("replication.interval", time.Second)
	v.SetDefault("replication.prefix", "")
	v.SetDefault("replication.sinks", []string{"blob"})
	v.SetDefault("replication.cursors", "memory")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.stream", "barrelman:changes")
	v.SetDefault("redis.max_len", 0)
	v.SetDefault("redis.cursor_prefix", "barrelman:cursor:")

	v.SetDefault("service.max_attempts", 3)
	v.SetDefault("service.metrics", "expvar")
	v.SetDefault("service.trace_file", "")
}

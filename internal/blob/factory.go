package blob

import (
	"context"

	"barrelman/internal/infra/blob/fs"
	memorystore "barrelman/internal/infra/blob/memory"
	infraS3 "barrelman/internal/infra/blob/s3"

	"github.com/cockroachdb/errors"
)

// S3Config re-exports the infra S3 configuration type.
type S3Config = infraS3.Config

// Config selects and configures a blob backend.
type Config struct {
	Driver string   `mapstructure:"driver"`
	FSRoot string   `mapstructure:"fs_root"`
	S3     S3Config `mapstructure:"s3"`
}

// Open selects a Store implementation from cfg. An empty driver means fs.
func Open(ctx context.Context, cfg Config) (Store, error) {
	driver := Driver(cfg.Driver)
	if driver == "" {
		driver = DriverFilesystem
	}
	switch driver {
	case DriverFilesystem:
		s, err := fs.New(cfg.FSRoot)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverS3:
		s, err := infraS3.New(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMemory:
		return memorystore.New(), nil
	default:
		return nil, errors.Newf("unknown blob driver %q", cfg.Driver)
	}
}

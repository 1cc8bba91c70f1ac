package backup

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/platform/config"
)

// NewTarget builds the target selected by cfg. It returns nil when backups are disabled.
func NewTarget(ctx context.Context, cfg config.BackupConfig) (Target, error) {
	switch cfg.Driver {
	case config.BackupFilesystem:
		return NewFilesystemTarget(cfg.Dir)
	case config.BackupS3:
		return NewS3Target(ctx, S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
	}
	return nil, nil
}

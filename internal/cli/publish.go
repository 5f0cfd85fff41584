package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/branchtale/internal/config"
	"github.com/aretw0/branchtale/internal/index"
	"github.com/aretw0/branchtale/pkg/adapters/file"
	"github.com/aretw0/branchtale/pkg/adapters/redis"
	"github.com/aretw0/branchtale/pkg/domain"
)

// Publish copies the tables from the configured directory into Redis,
// so that readers started with --source redis can load them.
// Both tables are parsed first; nothing is written if either is malformed.
func Publish(ctx context.Context, cfg *config.Config, out io.Writer) error {
	local := file.New(cfg.Dir)
	if _, err := index.Load(ctx, local); err != nil {
		return err
	}

	dst := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithPrefix(cfg.RedisPrefix))
	defer dst.Close()

	for _, table := range domain.Tables() {
		payload, err := local.Fetch(ctx, table)
		if err != nil {
			return err
		}
		if err := dst.Publish(ctx, table, payload); err != nil {
			return err
		}
		fmt.Fprintf(out, "published %s to %s\n", table, dst.Key(table))
	}
	return nil
}

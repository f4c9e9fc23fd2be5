package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/cache"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/config"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/database"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/logger"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/repository"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

// catalog is the part of the DataPoint cache this tool drives.
type catalog interface {
	Get(ctx context.Context, path string) (*domain.DataPoint, error)
	Delete(ctx context.Context, path string) error
}

func main() {
	del := flag.Bool("delete", false, "delete the given paths instead of printing them")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: datapoints [--delete] PATH...")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Setup(config.LogLevel(), config.LogFormat())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	rdb := cache.NewRedisClient(config.RedisAddr(), config.RedisDB())
	defer rdb.Close()

	dps := cache.NewDataPoints(repository.New(db), rdb, config.DataPointCacheTTL())
	if err := run(ctx, dps, flag.Args(), *del, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("datapoints failed")
	}
}

// run prints each path as a JSON line, or deletes it. Missing paths are
// reported and skipped; any other error stops the run.
func run(ctx context.Context, c catalog, paths []string, del bool, out io.Writer) error {
	enc := json.NewEncoder(out)
	missing := 0
	for _, path := range paths {
		var err error
		if del {
			if err = c.Delete(ctx, path); err == nil {
				log.Info().Str("path", path).Msg("datapoint deleted")
			}
		} else {
			var dp *domain.DataPoint
			if dp, err = c.Get(ctx, path); err == nil {
				err = enc.Encode(dp)
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, repository.ErrNotFound):
			log.Warn().Str("path", path).Msg("no such datapoint")
			missing++
		default:
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d paths not found", missing, len(paths))
	}
	return nil
}

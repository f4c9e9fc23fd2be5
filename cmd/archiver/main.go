package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/cloud"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/config"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/database"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/logger"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/repository"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	flag.String("kind", "", "reading kind: ahu, filter, fan, damper, hec, vav, sav or thermafuser")
	flag.Int64("id", 0, "equipment id (AHUNumber for kind ahu)")
	flag.String("from", "", "inclusive window start, RFC3339; empty for open")
	flag.String("to", "", "exclusive window end, RFC3339; empty for open")
	flag.Bool("list", false, "list existing exports instead of writing one")
	flag.String("bucket", "", "S3 bucket, overrides AWS_S3_BUCKET")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("flag binding failed")
	}
	logger.Setup(config.LogLevel(), config.LogFormat())

	kind, err := domain.ParseReadingKind(viper.GetString("kind"))
	if err != nil {
		log.Fatal().Err(err).Msg("bad --kind")
	}
	id := viper.GetInt64("id")
	if id <= 0 {
		log.Fatal().Int64("id", id).Msg("--id is required")
	}
	w, err := window(viper.GetString("from"), viper.GetString("to"))
	if err != nil {
		log.Fatal().Err(err).Msg("bad window")
	}
	bucket := config.S3Bucket()
	if b := viper.GetString("bucket"); b != "" {
		bucket = b
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s3c, err := cloud.NewS3Client(ctx, config.AWSRegion(), bucket)
	if err != nil {
		log.Fatal().Err(err).Msg("s3 client")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	archiver := cloud.NewArchiver(repository.New(db), s3c)

	if viper.GetBool("list") {
		keys, err := archiver.Exports(ctx, kind, id)
		if err != nil {
			log.Fatal().Err(err).Msg("list failed")
		}
		for _, k := range keys {
			fmt.Fprintln(os.Stdout, k)
		}
		return
	}

	key, n, err := archiver.Export(ctx, kind, id, w)
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
	fmt.Fprintf(os.Stdout, "s3://%s/%s (%d readings)\n", bucket, key, n)
}

func window(from, to string) (domain.TimeRange, error) {
	var w domain.TimeRange
	var err error
	if from != "" {
		if w.From, err = time.Parse(time.RFC3339, from); err != nil {
			return w, fmt.Errorf("--from: %w", err)
		}
	}
	if to != "" {
		if w.To, err = time.Parse(time.RFC3339, to); err != nil {
			return w, fmt.Errorf("--to: %w", err)
		}
	}
	w.From, w.To = w.From.UTC(), w.To.UTC()
	if !w.From.IsZero() && !w.To.IsZero() && !w.From.Before(w.To) {
		return w, fmt.Errorf("--from %s is not before --to %s", from, to)
	}
	return w, nil
}

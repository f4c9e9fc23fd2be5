package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/cache"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/repository"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
)

type Services struct {
	Repos      *repository.Repos
	Readings   *ReadingService
	DataPoints *cache.DataPoints
}

func New(db *sqlx.DB, rdb *redis.Client, topicPrefix string, cacheTTL time.Duration) *Services {
	repos := repository.New(db)
	dataPoints := cache.NewDataPoints(repos, rdb, cacheTTL)
	return &Services{
		Repos:      repos,
		DataPoints: dataPoints,
		Readings:   &ReadingService{repos: repos, dataPoints: dataPoints, prefix: topicPrefix},
	}
}

var ErrBadMessage = errors.New("bad message")

// Topic is a parsed ingestion topic: either <prefix>/readings/<kind>/<id> or
// <prefix>/datapoints.
type Topic struct {
	Kind      domain.ReadingKind
	ID        int64
	DataPoint bool
}

func ParseTopic(prefix, topic string) (Topic, error) {
	rest, ok := strings.CutPrefix(topic, prefix+"/")
	if !ok {
		return Topic{}, fmt.Errorf("%w: topic %q outside %q", ErrBadMessage, topic, prefix)
	}
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 1 && parts[0] == "datapoints":
		return Topic{DataPoint: true}, nil
	case len(parts) == 3 && parts[0] == "readings":
		kind, err := domain.ParseReadingKind(parts[1])
		if err != nil {
			return Topic{}, fmt.Errorf("%w: %v", ErrBadMessage, err)
		}
		id, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil || id <= 0 {
			return Topic{}, fmt.Errorf("%w: bad equipment id %q", ErrBadMessage, parts[2])
		}
		return Topic{Kind: kind, ID: id}, nil
	}
	return Topic{}, fmt.Errorf("%w: unrecognised topic %q", ErrBadMessage, topic)
}

// ReadingTopic is the topic a reading for equipment id of the given kind is
// published on.
func ReadingTopic(prefix string, kind domain.ReadingKind, id int64) string {
	return fmt.Sprintf("%s/readings/%s/%d", prefix, kind, id)
}

func DataPointTopic(prefix string) string { return prefix + "/datapoints" }

type ReadingService struct {
	repos      *repository.Repos
	dataPoints *cache.DataPoints
	prefix     string
}

// FromMQTT stores one message. Readings are inserted as received; the
// equipment key always comes from the topic and the timestamp is stored in UTC.
func (s *ReadingService) FromMQTT(ctx context.Context, topic string, payload []byte) error {
	t, err := ParseTopic(s.prefix, topic)
	if err != nil {
		return err
	}
	if t.DataPoint {
		var dp domain.DataPoint
		if err := decode(payload, &dp); err != nil {
			return err
		}
		if strings.TrimSpace(dp.Path) == "" {
			return fmt.Errorf("%w: datapoint without path", ErrBadMessage)
		}
		return s.dataPoints.Put(ctx, &dp)
	}

	switch t.Kind {
	case domain.KindAHU:
		var rd domain.AHUReading
		if err := decodeReading(payload, &rd, &rd.TimeStamp); err != nil {
			return err
		}
		rd.AHUNumber = t.ID
		return s.repos.InsertAHUReading(ctx, &rd)
	case domain.KindFilter:
		var rd domain.FilterReading
		if err := decodeReading(payload, &rd, &rd.TimeStamp); err != nil {
			return err
		}
		rd.FilterID = t.ID
		return s.repos.InsertFilterReading(ctx, &rd)
	case domain.KindFan:
		var rd domain.FanReading
		if err := decodeReading(payload, &rd, &rd.TimeStamp); err != nil {
			return err
		}
		rd.FanID = t.ID
		return s.repos.InsertFanReading(ctx, &rd)
	case domain.KindDamper:
		var rd domain.DamperReading
		if err := decodeReading(payload, &rd, &rd.TimeStamp); err != nil {
			return err
		}
		rd.DamperID = t.ID
		return s.repos.InsertDamperReading(ctx, &rd)
	case domain.KindHEC:
		var rd domain.HECReading
		if err := decodeReading(payload, &rd, &rd.TimeStamp); err != nil {
			return err
		}
		rd.HECID = t.ID
		return s.repos.InsertHECReading(ctx, &rd)
	case domain.KindVAV:
		var rd domain.VAVReading
		if err := decodeReading(payload, &rd, &rd.TimeStamp); err != nil {
			return err
		}
		rd.VAVID = t.ID
		return s.repos.InsertVAVReading(ctx, &rd)
	case domain.KindSAV:
		var rd domain.SAVReading
		if err := decodeReading(payload, &rd, &rd.TimeStamp); err != nil {
			return err
		}
		rd.SAVID = t.ID
		return s.repos.InsertSAVReading(ctx, &rd)
	case domain.KindThermafuser:
		var rd domain.ThermafuserReading
		if err := decodeReading(payload, &rd, &rd.TimeStamp); err != nil {
			return err
		}
		rd.ThermafuserID = t.ID
		return s.repos.InsertThermafuserReading(ctx, &rd)
	}
	return fmt.Errorf("%w: no table for kind %q", ErrBadMessage, t.Kind)
}

func decode(payload []byte, v any) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	return nil
}

// decodeReading unmarshals payload into rd and normalises the timestamp it
// carries, which ts points at.
func decodeReading(payload []byte, rd any, ts *time.Time) error {
	if err := decode(payload, rd); err != nil {
		return err
	}
	if ts.IsZero() {
		return fmt.Errorf("%w: reading without time_stamp", ErrBadMessage)
	}
	*ts = ts.UTC()
	return nil
}

package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/repository"
	"github.com/rs/zerolog/log"
)

const keyTimeFormat = "20060102T150405Z"

// ObjectStore is where exports are written. *S3Client implements it.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

// Export is the document written for one equipment instance and window.
type Export struct {
	Kind       domain.ReadingKind `json:"kind"`
	ID         int64              `json:"id"`
	From       *time.Time         `json:"from,omitempty"`
	To         *time.Time         `json:"to,omitempty"`
	ExportedAt time.Time          `json:"exported_at"`
	Count      int                `json:"count"`
	Readings   json.RawMessage    `json:"readings"`
}

// Archiver copies reading range scans into object storage as JSON.
type Archiver struct {
	repos *repository.Repos
	store ObjectStore
	now   func() time.Time
}

func NewArchiver(repos *repository.Repos, store ObjectStore) *Archiver {
	return &Archiver{repos: repos, store: store, now: time.Now}
}

// ExportKey is readings/<kind>/<id>/<from>_<to>.json; an open bound is
// written as "open".
func ExportKey(kind domain.ReadingKind, id int64, w domain.TimeRange) string {
	bound := func(t time.Time) string {
		if t.IsZero() {
			return "open"
		}
		return t.UTC().Format(keyTimeFormat)
	}
	return fmt.Sprintf("%s%s_%s.json", exportPrefix(kind, id), bound(w.From), bound(w.To))
}

func exportPrefix(kind domain.ReadingKind, id int64) string {
	return fmt.Sprintf("readings/%s/%d/", kind, id)
}

// Export reads every reading of the equipment inside w and uploads them. It
// returns the object key and the number of readings written.
func (a *Archiver) Export(ctx context.Context, kind domain.ReadingKind, id int64, w domain.TimeRange) (string, int, error) {
	readings, n, err := a.readings(ctx, kind, id, w)
	if err != nil {
		return "", 0, err
	}
	raw, err := json.Marshal(readings)
	if err != nil {
		return "", 0, fmt.Errorf("failed to encode %s readings: %w", kind, err)
	}

	doc := Export{Kind: kind, ID: id, ExportedAt: a.now().UTC(), Count: n, Readings: raw}
	if !w.From.IsZero() {
		from := w.From.UTC()
		doc.From = &from
	}
	if !w.To.IsZero() {
		to := w.To.UTC()
		doc.To = &to
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", 0, fmt.Errorf("failed to encode export: %w", err)
	}

	key := ExportKey(kind, id, w)
	if err := a.store.Upload(ctx, key, data, "application/json"); err != nil {
		return "", 0, err
	}
	log.Info().Str("key", key).Str("kind", string(kind)).Int64("id", id).Int("count", n).Msg("readings exported")
	return key, n, nil
}

// Exports lists the keys already written for the equipment.
func (a *Archiver) Exports(ctx context.Context, kind domain.ReadingKind, id int64) ([]string, error) {
	return a.store.List(ctx, exportPrefix(kind, id))
}

func (a *Archiver) Load(ctx context.Context, key string) (*Export, error) {
	data, err := a.store.Download(ctx, key)
	if err != nil {
		return nil, err
	}
	var doc Export
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &doc, nil
}

func (a *Archiver) readings(ctx context.Context, kind domain.ReadingKind, id int64, w domain.TimeRange) (any, int, error) {
	switch kind {
	case domain.KindAHU:
		rs, err := a.repos.ListAHUReadings(ctx, id, w)
		return rs, len(rs), err
	case domain.KindFilter:
		rs, err := a.repos.ListFilterReadings(ctx, id, w)
		return rs, len(rs), err
	case domain.KindFan:
		rs, err := a.repos.ListFanReadings(ctx, id, w)
		return rs, len(rs), err
	case domain.KindDamper:
		rs, err := a.repos.ListDamperReadings(ctx, id, w)
		return rs, len(rs), err
	case domain.KindHEC:
		rs, err := a.repos.ListHECReadings(ctx, id, w)
		return rs, len(rs), err
	case domain.KindVAV:
		rs, err := a.repos.ListVAVReadings(ctx, id, w)
		return rs, len(rs), err
	case domain.KindSAV:
		rs, err := a.repos.ListSAVReadings(ctx, id, w)
		return rs, len(rs), err
	case domain.KindThermafuser:
		rs, err := a.repos.ListThermafuserReadings(ctx, id, w)
		return rs, len(rs), err
	}
	return nil, 0, fmt.Errorf("unknown reading kind %q", kind)
}

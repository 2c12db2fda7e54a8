// Package seed loads fixture buyers and records into a storage backend.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"procurement-search/config"
	"procurement-search/internal/domain"
	"procurement-search/pkg/logger"
	"procurement-search/pkg/storage"

	"github.com/goccy/go-json"
)

// Fixture is the on-disk seed format.
type Fixture struct {
	Buyers  []domain.Buyer             `json:"buyers"`
	Records []domain.ProcurementRecord `json:"records"`
}

// ObjectReader fetches fixture files from object storage.
type ObjectReader interface {
	ReadObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// Result reports how many rows a seed run wrote.
type Result struct {
	Buyers  int
	Records int
}

type Loader struct {
	repo    domain.SeedRepository
	objects ObjectReader
}

// NewLoader creates a Loader. objects may be nil when only local files are used.
func NewLoader(repo domain.SeedRepository, objects ObjectReader) *Loader {
	return &Loader{repo: repo, objects: objects}
}

// Run reads, validates and writes the fixture at source, which is a local
// path or an s3://bucket/key URL. Buyers are written before records.
func (l *Loader) Run(ctx context.Context, source string) (Result, error) {
	data, err := l.read(ctx, source)
	if err != nil {
		return Result{}, err
	}

	fx, err := Parse(data)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", source, err)
	}
	if err := fx.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", source, err)
	}

	if err := l.repo.UpsertBuyers(ctx, fx.Buyers); err != nil {
		return Result{}, fmt.Errorf("failed to write buyers: %w", err)
	}
	if err := l.repo.UpsertRecords(ctx, fx.Records); err != nil {
		return Result{}, fmt.Errorf("failed to write records: %w", err)
	}

	logger.WithContext(ctx).Info().
		Str("source", source).
		Int("buyers", len(fx.Buyers)).
		Int("records", len(fx.Records)).
		Msg("Seed complete")

	return Result{Buyers: len(fx.Buyers), Records: len(fx.Records)}, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "s3://") {
		bucket, key, ok := storage.ParseObjectURL(source)
		if !ok {
			return nil, fmt.Errorf("invalid object url %q", source)
		}
		if l.objects == nil {
			return nil, errors.New("object storage is not configured")
		}
		return l.objects.ReadObject(ctx, bucket, key)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return data, nil
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Fixture, error) {
	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &fx, nil
}

// Validate checks that every record references a fixture buyer and carries a
// known stage, and that ids are present and unique.
func (f *Fixture) Validate() error {
	buyers := make(map[string]struct{}, len(f.Buyers))
	for i, b := range f.Buyers {
		if b.ID == "" {
			return fmt.Errorf("buyer %d: missing id", i)
		}
		if b.ID == domain.AllBuyers {
			return fmt.Errorf("buyer %d: id %q is reserved", i, b.ID)
		}
		if _, dup := buyers[b.ID]; dup {
			return fmt.Errorf("buyer %s: duplicate id", b.ID)
		}
		buyers[b.ID] = struct{}{}
	}

	records := make(map[string]struct{}, len(f.Records))
	for i, r := range f.Records {
		if r.ID == "" {
			return fmt.Errorf("record %d: missing id", i)
		}
		if _, dup := records[r.ID]; dup {
			return fmt.Errorf("record %s: duplicate id", r.ID)
		}
		records[r.ID] = struct{}{}

		if !r.Stage.Valid() {
			return fmt.Errorf("record %s: unknown stage %q", r.ID, r.Stage)
		}
		if r.PublishDate.IsZero() {
			return fmt.Errorf("record %s: missing publishDate", r.ID)
		}
		if _, ok := buyers[r.BuyerID]; !ok {
			return fmt.Errorf("record %s: buyer %q is not in the fixture", r.ID, r.BuyerID)
		}
	}
	return nil
}

// RunSource seeds repo from source, connecting to object storage with cfg
// only when source is an s3:// URL.
func RunSource(ctx context.Context, cfg *config.Config, repo domain.SeedRepository, source string) (Result, error) {
	var objects ObjectReader
	if strings.HasPrefix(source, "s3://") {
		store, err := storage.NewObjectStore(ctx, storage.Options{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return Result{}, err
		}
		objects = store
	}
	return NewLoader(repo, objects).Run(ctx, source)
}

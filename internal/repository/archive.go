package repository

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/launchforge/startup-builder/internal/plan"
)

// ArchiveRepository stores generated artifacts for later inspection. Archiving
// is best-effort: callers log failures but never fail the request on them.
type ArchiveRepository interface {
	StorePlan(ctx context.Context, idea string, p *plan.StartupPlan) error
	StoreDeck(ctx context.Context, idea string, slides []plan.Slide) error
	GetStats(ctx context.Context) (*ArchiveStats, error)
	Close() error
}

// ArchiveStats summarizes the archived objects in the bucket.
type ArchiveStats struct {
	TotalObjects int       `json:"total_objects"`
	TotalBytes   int64     `json:"total_bytes"`
	OldestObject time.Time `json:"oldest_object"`
}

// archivedPlan is the stored JSON document for a generated plan.
type archivedPlan struct {
	Idea       string            `json:"idea"`
	Plan       *plan.StartupPlan `json:"plan"`
	ArchivedAt time.Time         `json:"archived_at"`
}

// archivedDeck is the stored JSON document for a generated pitch deck.
type archivedDeck struct {
	Idea       string       `json:"idea"`
	Slides     []plan.Slide `json:"slides"`
	ArchivedAt time.Time    `json:"archived_at"`
}

// cloudStorageArchive archives artifacts as JSON objects in a GCS bucket.
type cloudStorageArchive struct {
	client     *storage.Client
	bucketName string
	prefix     string
}

// NewCloudStorageArchive creates an archive backed by Google Cloud Storage.
func NewCloudStorageArchive(ctx context.Context, bucketName string) (ArchiveRepository, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &cloudStorageArchive{
		client:     client,
		bucketName: bucketName,
		prefix:     "archive/",
	}, nil
}

func (a *cloudStorageArchive) StorePlan(ctx context.Context, idea string, p *plan.StartupPlan) error {
	doc := archivedPlan{Idea: idea, Plan: p, ArchivedAt: time.Now()}
	return a.store(ctx, objectName(a.prefix, "plans", idea, doc.ArchivedAt), doc)
}

func (a *cloudStorageArchive) StoreDeck(ctx context.Context, idea string, slides []plan.Slide) error {
	doc := archivedDeck{Idea: idea, Slides: slides, ArchivedAt: time.Now()}
	return a.store(ctx, objectName(a.prefix, "decks", idea, doc.ArchivedAt), doc)
}

func (a *cloudStorageArchive) store(ctx context.Context, name string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling archive document: %w", err)
	}

	writer := a.client.Bucket(a.bucketName).Object(name).NewWriter(ctx)
	writer.ContentType = "application/json"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("writing object data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing object writer: %w", err)
	}

	return nil
}

func (a *cloudStorageArchive) GetStats(ctx context.Context) (*ArchiveStats, error) {
	bucket := a.client.Bucket(a.bucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: a.prefix})

	stats := &ArchiveStats{}

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing objects: %w", err)
		}

		stats.TotalObjects++
		stats.TotalBytes += attrs.Size

		if stats.OldestObject.IsZero() || attrs.Created.Before(stats.OldestObject) {
			stats.OldestObject = attrs.Created
		}
	}

	return stats, nil
}

func (a *cloudStorageArchive) Close() error {
	return a.client.Close()
}

// objectName builds a stable, collision-resistant object name from the idea
// hash and the archive timestamp.
func objectName(prefix, kind, idea string, at time.Time) string {
	hash := md5.Sum([]byte(idea))
	return fmt.Sprintf("%s%s/%s-%x.json", prefix, kind, at.UTC().Format("20060102T150405Z"), hash)
}

// noopArchive is used when no archive bucket is configured.
type noopArchive struct{}

// NewNoopArchive returns an archive that discards everything.
func NewNoopArchive() ArchiveRepository {
	return &noopArchive{}
}

func (n *noopArchive) StorePlan(ctx context.Context, idea string, p *plan.StartupPlan) error {
	return nil
}

func (n *noopArchive) StoreDeck(ctx context.Context, idea string, slides []plan.Slide) error {
	return nil
}

func (n *noopArchive) GetStats(ctx context.Context) (*ArchiveStats, error) {
	return &ArchiveStats{}, nil
}

func (n *noopArchive) Close() error {
	return nil
}

package cache

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/launchforge/startup-builder/internal/plan"
)

// Entry represents a cached plan
type Entry struct {
	Key         string            `json:"key"`
	Idea        string            `json:"idea"`
	Plan        *plan.StartupPlan `json:"plan"`
	CreatedAt   time.Time         `json:"created_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
	AccessedAt  time.Time         `json:"accessed_at"`
	AccessCount int               `json:"access_count"`
}

// Stats represents cache statistics
type Stats struct {
	TotalEntries   int           `json:"total_entries"`
	HitCount       int64         `json:"hit_count"`
	MissCount      int64         `json:"miss_count"`
	HitRate        float64       `json:"hit_rate"`
	OldestEntry    time.Time     `json:"oldest_entry"`
	AverageAge     time.Duration `json:"average_age"`
	ExpiredEntries int           `json:"expired_entries"`
}

// Manager is an in-memory TTL cache of generated plans. Expired entries are
// removed lazily on read and in bulk by CleanupExpired, which the server
// schedules with cron.
type Manager struct {
	entries   map[string]*Entry
	mutex     sync.RWMutex
	duration  time.Duration
	hitCount  int64
	missCount int64
}

// NewManager creates a new plan cache with the given TTL
func NewManager(duration time.Duration) *Manager {
	return &Manager{
		entries:  make(map[string]*Entry),
		duration: duration,
	}
}

// GetPlan retrieves a cached plan for an idea
func (m *Manager) GetPlan(ctx context.Context, idea string) (*plan.StartupPlan, error) {
	key := GenerateKey(idea)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.entries[key]
	if !exists {
		m.missCount++
		return nil, ErrCacheMiss
	}

	now := time.Now()
	if now.After(entry.ExpiresAt) {
		delete(m.entries, key)
		m.missCount++
		return nil, ErrCacheMiss
	}

	entry.AccessedAt = now
	entry.AccessCount++
	m.hitCount++

	return entry.Plan, nil
}

// SetPlan caches a generated plan for an idea
func (m *Manager) SetPlan(ctx context.Context, idea string, p *plan.StartupPlan) error {
	key := GenerateKey(idea)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := time.Now()
	m.entries[key] = &Entry{
		Key:        key,
		Idea:       idea,
		Plan:       p,
		CreatedAt:  now,
		ExpiresAt:  now.Add(m.duration),
		AccessedAt: now,
	}

	return nil
}

// Clear removes all entries from cache
func (m *Manager) Clear(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.entries = make(map[string]*Entry)
	m.hitCount = 0
	m.missCount = 0
	return nil
}

// CleanupExpired removes expired entries and returns how many were dropped
func (m *Manager) CleanupExpired() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := time.Now()
	removed := 0
	for key, entry := range m.entries {
		if now.After(entry.ExpiresAt) {
			delete(m.entries, key)
			removed++
		}
	}

	return removed
}

// GetStats returns cache statistics
func (m *Manager) GetStats(ctx context.Context) (*Stats, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	stats := &Stats{
		TotalEntries: len(m.entries),
		HitCount:     m.hitCount,
		MissCount:    m.missCount,
	}

	if m.hitCount+m.missCount > 0 {
		stats.HitRate = float64(m.hitCount) / float64(m.hitCount+m.missCount)
	}

	var totalAge time.Duration
	now := time.Now()

	for _, entry := range m.entries {
		if stats.OldestEntry.IsZero() || entry.CreatedAt.Before(stats.OldestEntry) {
			stats.OldestEntry = entry.CreatedAt
		}

		totalAge += now.Sub(entry.CreatedAt)

		if now.After(entry.ExpiresAt) {
			stats.ExpiredEntries++
		}
	}

	if len(m.entries) > 0 {
		stats.AverageAge = totalAge / time.Duration(len(m.entries))
	}

	return stats, nil
}

// Close releases cache resources
func (m *Manager) Close() error {
	return nil
}

// GenerateKey generates a cache key for an idea. Ideas differing only in
// surrounding whitespace or letter case map to the same key.
func GenerateKey(idea string) string {
	normalized := strings.ToLower(strings.TrimSpace(idea))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("plan:%x", hash)
}

// ErrCacheMiss indicates the requested entry is absent or expired
var ErrCacheMiss = fmt.Errorf("cache miss")

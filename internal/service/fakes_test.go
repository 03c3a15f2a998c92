package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-advisor/internal/db"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// memoryCache is an in-process Cache
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	c.sets++
	return nil
}

// memoryStore is an in-process Store
type memoryStore struct {
	mu       sync.Mutex
	analyses map[uuid.UUID]*db.Analysis
	order    []uuid.UUID
}

func newMemoryStore() *memoryStore {
	return &memoryStore{analyses: make(map[uuid.UUID]*db.Analysis)}
}

func (m *memoryStore) SaveReport(_ context.Context, report *types.Report, requestedBy *uuid.UUID) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.analyses[id] = db.NewAnalysis(id, report, requestedBy)
	m.order = append(m.order, id)
	return id, nil
}

func (m *memoryStore) GetAnalysis(_ context.Context, id uuid.UUID) (*db.Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.analyses[id], nil
}

func (m *memoryStore) ListAnalyses(_ context.Context, filters db.AnalysisFilters) ([]db.AnalysisSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []db.AnalysisSummary{}
	for i := len(m.order) - 1; i >= 0; i-- {
		a, ok := m.analyses[m.order[i]]
		if !ok {
			continue
		}
		if filters.TargetPosition != "" && a.TargetPosition != filters.TargetPosition {
			continue
		}
		out = append(out, db.AnalysisSummary{
			ID:             a.ID,
			TargetPosition: a.TargetPosition,
			OverallScore:   a.OverallScore,
			ReadinessLevel: a.ReadinessLevel,
			Failed:         a.Error != "",
			CreatedAt:      a.CreatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryStore) DeleteAnalysis(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.analyses[id]; !ok {
		return fmt.Errorf("%w: %s", db.ErrAnalysisNotFound, id)
	}
	delete(m.analyses, id)
	return nil
}

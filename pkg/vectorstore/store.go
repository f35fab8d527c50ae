package vectorstore

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"disaster-chatbot-be/pkg/corpus"
	"disaster-chatbot-be/pkg/embedding"
)

// ErrIndexNotFound is returned when a tenant has no persisted index;
// callers treat it as "tenant has no trained corpus yet".
var ErrIndexNotFound = errors.New("vector index not found")

const indexSuffix = "_index"

// Store persists one embedding index per tenant under a root directory.
// The artifact path is uniquely determined by the tenant identifier.
type Store struct {
	root     string
	provider embedding.Provider

	mu    sync.Mutex
	locks map[string]*sync.Mutex // serializes builds per tenant
}

func NewStore(root string, provider embedding.Provider) *Store {
	return &Store{
		root:     root,
		provider: provider,
		locks:    map[string]*sync.Mutex{},
	}
}

func (s *Store) path(tenantID string) string {
	return filepath.Join(s.root, tenantID+indexSuffix)
}

func (s *Store) buildLock(tenantID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[tenantID] = lock
	}
	return lock
}

// Build embeds every chunk, constructs the flat index and persists it.
// A pre-existing artifact for the tenant is replaced. The file is written
// to a temp path and renamed into place, so a concurrent Load never
// observes a partially written index.
func (s *Store) Build(ctx context.Context, tenantID string, chunks []corpus.Chunk) (*Index, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("build index %s: empty chunk sequence", tenantID)
	}

	lock := s.buildLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors, err := s.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed chunks for %s: %w", tenantID, err)
	}

	idx := &Index{
		Dimension: len(vectors[0]),
		Vectors:   vectors,
		Texts:     texts,
	}

	if err := s.persist(tenantID, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (s *Store) persist(tenantID string, idx *Index) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create index root: %w", err)
	}

	tmp, err := os.CreateTemp(s.root, tenantID+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}
	tmpName := tmp.Name()

	if err := gob.NewEncoder(tmp).Encode(idx); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode index %s: %w", tenantID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp index: %w", err)
	}

	if err := os.Rename(tmpName, s.path(tenantID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persist index %s: %w", tenantID, err)
	}
	return nil
}

// Load deserializes the tenant's index. Missing artifact yields
// ErrIndexNotFound.
func (s *Store) Load(tenantID string) (*Index, error) {
	f, err := os.Open(s.path(tenantID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("tenant %s: %w", tenantID, ErrIndexNotFound)
		}
		return nil, fmt.Errorf("open index %s: %w", tenantID, err)
	}
	defer f.Close()

	var idx Index
	if err := gob.NewDecoder(f).Decode(&idx); err != nil {
		return nil, fmt.Errorf("decode index %s: %w", tenantID, err)
	}
	return &idx, nil
}

// Exists probes whether a persisted index exists for the tenant.
func (s *Store) Exists(tenantID string) bool {
	_, err := os.Stat(s.path(tenantID))
	return err == nil
}

// Delete removes the tenant's artifact. Deleting an absent index is a no-op.
func (s *Store) Delete(tenantID string) error {
	err := os.Remove(s.path(tenantID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete index %s: %w", tenantID, err)
	}
	return nil
}

// LatestTenantID returns the lexicographically-last tenant identifier among
// persisted indexes. Chronological ordering holds only when callers use
// date-stamped identifiers, which is a naming convention, not enforced here.
func (s *Store) LatestTenantID() (string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrIndexNotFound
		}
		return "", fmt.Errorf("read index root: %w", err)
	}

	latest := ""
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), indexSuffix) {
			continue
		}
		tenantID := strings.TrimSuffix(e.Name(), indexSuffix)
		if tenantID > latest {
			latest = tenantID
		}
	}
	if latest == "" {
		return "", ErrIndexNotFound
	}
	return latest, nil
}

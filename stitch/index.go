package stitch

import (
	"context"
	"path"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"stitcher/storage"
)

// SnippetExt is the one file extension recognized as an indexable snippet.
const SnippetExt = ".wav"

const loadWorkers = 8

// Record is one stored audio snippet.
type Record struct {
	Name string // normalized word the snippet speaks
	Key  string // address in the backing store
	Hash string // fingerprint of the raw bytes
}

// Index maps words to their snippets. It lives for a single pipeline run
// (or one cache window when the server keeps it around) and is safe for
// concurrent use.
type Index struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewIndex() *Index {
	return &Index{
		records: make(map[string]Record),
	}
}

// Lookup is an exact-match lookup; callers normalize first.
func (ix *Index) Lookup(name string) (Record, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	rec, ok := ix.records[name]
	return rec, ok
}

// Insert adds a record, replacing any existing entry for the same word.
func (ix *Index) Insert(rec Record) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.records[rec.Name] = rec
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return len(ix.records)
}

// LoadIndex enumerates every snippet under prefix and fingerprints it.
// The load is all-or-nothing: any list or read failure drops the partial
// result. When two keys share a basename the first listed key wins; the
// winners are claimed before the parallel fetch so reordering the fetches
// cannot change the outcome.
func LoadIndex(ctx context.Context, store storage.Store, prefix string) (*Index, error) {
	keys, err := store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	claimed := make(map[string]string)
	order := []string{}
	for _, key := range keys {
		if !strings.HasSuffix(key, SnippetExt) {
			continue
		}
		name := strings.TrimSuffix(path.Base(key), SnippetExt)
		if name == "" {
			continue
		}
		if _, ok := claimed[name]; ok {
			continue
		}
		claimed[name] = key
		order = append(order, name)
	}

	index := NewIndex()
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(loadWorkers)
	for _, name := range order {
		name := name
		key := claimed[name]
		group.Go(func() error {
			data, err := store.Get(gctx, key)
			if err != nil {
				return err
			}
			index.Insert(Record{Name: name, Key: key, Hash: Fingerprint(data)})
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"prefix":   prefix,
		"snippets": index.Len(),
	}).Infoln("audio index loaded")

	return index, nil
}

package diskcache

import (
	"errors"
	"sync"
)

// Registry owns one long-lived NamespaceStore per category. Stores are
// created on first access. Create one Registry at start-up and pass it to
// the code that needs the cache.
type Registry struct {
	opts    CacheOptions
	metrics *metrics

	mu     sync.Mutex
	closed bool
	slots  [numCategories]*NamespaceStore
}

// NewRegistry returns a registry whose stores share opts. No directory is
// touched until a category is first requested.
func NewRegistry(opts CacheOptions) *Registry {
	opts = opts.withDefaults()
	return &Registry{
		opts:    opts,
		metrics: newMetrics(opts.Registerer),
	}
}

// Get returns the store for c, creating it on first use. After Close it
// returns stores that reject every request. Get panics on an unknown category.
func (r *Registry) Get(c Category) *NamespaceStore {
	if !c.valid() {
		panic("diskcache: unknown category " + c.String())
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s := r.slots[c]; s != nil {
		return s
	}
	var s *NamespaceStore
	if r.closed {
		s = closedStore(c, r.opts, r.metrics)
	} else {
		s = newNamespaceStore(c, r.opts, r.metrics)
	}
	r.slots[c] = s
	return s
}

func (r *Registry) Objects() *NamespaceStore { return r.Get(Object) }
func (r *Registry) Images() *NamespaceStore  { return r.Get(Image) }
func (r *Registry) Voices() *NamespaceStore  { return r.Get(Voice) }

// Close drains and stops every store created so far.
func (r *Registry) Close() error {
	r.mu.Lock()
	r.closed = true
	stores := r.slots
	r.mu.Unlock()

	var errs []error
	for _, s := range stores {
		if s == nil {
			continue
		}
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

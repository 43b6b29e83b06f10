package diskcache

import (
	"errors"
	"os"
	"time"

	"go.uber.org/zap"
)

// NamespaceStore menyimpan payload satu kategori di direktorinya sendiri.
//
// Semua penulisan berjalan berurutan di satu goroutine worker; Store aman
// dipanggil dari banyak goroutine dan tidak pernah menunggu I/O.
type NamespaceStore struct {
	category Category
	root     string
	opts     CacheOptions // opsi efektif setelah layout dimuat
	encoder  Encoder
	queue    *serialQueue
	log      *zap.Logger
	metrics  namespaceMetrics
	counters counters
}

// NewNamespaceStore creates the namespace directory for c under
// opts.BaseDir and starts its worker. Directory failures are logged and
// swallowed: the store stays usable and individual writes fail instead.
func NewNamespaceStore(c Category, opts CacheOptions) *NamespaceStore {
	opts = opts.withDefaults()
	return newNamespaceStore(c, opts, newMetrics(opts.Registerer))
}

func newNamespaceStore(c Category, opts CacheOptions, m *metrics) *NamespaceStore {
	s := &NamespaceStore{
		category: c,
		root:     namespaceDir(opts.BaseDir, opts.DirPrefix, c),
		opts:     opts,
		queue:    newSerialQueue(),
		log:      opts.Logger.With(zap.String("category", c.String())),
		metrics:  m.forCategory(c),
	}
	// Pastikan direktori ada sebelum job pertama berjalan.
	s.queue.do(s.prepare)
	s.encoder = c.policy().newEncoder(s.opts)
	return s
}

// closedStore returns a store that rejects every request with ErrClosed. An
// existing layout is loaded read-only so Path matches the files on disk.
func closedStore(c Category, opts CacheOptions, m *metrics) *NamespaceStore {
	s := &NamespaceStore{
		category: c,
		root:     namespaceDir(opts.BaseDir, opts.DirPrefix, c),
		opts:     opts,
		queue:    newClosedQueue(),
		log:      opts.Logger.With(zap.String("category", c.String())),
		metrics:  m.forCategory(c),
	}
	if _, err := loadLayout(s.root, c, &s.opts); err != nil {
		s.log.Warn("namespace layout unusable, keeping options", zap.String("dir", s.root), zap.Error(err))
	}
	s.encoder = c.policy().newEncoder(s.opts)
	return s
}

// prepare runs on the worker during construction.
func (s *NamespaceStore) prepare() {
	if err := os.MkdirAll(s.root, s.opts.DirMode); err != nil {
		s.log.Warn("create namespace dir failed", zap.String("dir", s.root), zap.Error(err))
		return
	}
	if err := verifyOrWriteLayout(s.root, s.category, &s.opts); err != nil {
		s.log.Warn("namespace layout unusable, keeping options", zap.String("dir", s.root), zap.Error(err))
	}
}

// Path returns the file that holds key in this namespace.
func (s *NamespaceStore) Path(key string) string {
	return Resolve(s.root, s.category, key, s.opts.Hasher)
}

// Store queues p for writing under key and returns immediately. onComplete,
// when non-nil, runs on the worker after a successful write only. The
// returned Completion carries the outcome; requests whose payload does not
// match the namespace category finish with ErrPayloadMismatch without
// touching the disk. Callers must not mutate p until the Completion is done.
func (s *NamespaceStore) Store(key string, p Payload, onComplete func()) *Completion {
	if key == "" {
		return s.reject(key, ErrEmptyKey)
	}
	// only the value variants are accepted; pointers (including typed nils)
	// also satisfy Payload and must not reach p.Category
	switch p.(type) {
	case ObjectPayload, ImagePayload, VoicePayload:
	default:
		return s.reject(key, ErrPayloadMismatch)
	}
	if p.Category() != s.category {
		return s.reject(key, ErrPayloadMismatch)
	}

	done := newCompletion()
	s.counters.submitted.Add(1)
	s.metrics.submitted.Inc()
	s.metrics.depth.Inc()
	accepted := s.queue.submit(func() {
		s.metrics.depth.Dec()
		err := s.write(key, p)
		if err == nil && onComplete != nil {
			onComplete()
		}
		done.finish(err)
	})
	if !accepted {
		s.metrics.depth.Dec()
		s.counters.dropped.Add(1)
		s.metrics.dropped.Inc()
		done.finish(&StoreError{Category: s.category, Key: key, Op: "submit", Err: ErrClosed})
	}
	return done
}

func (s *NamespaceStore) reject(key string, err error) *Completion {
	s.counters.dropped.Add(1)
	s.metrics.dropped.Inc()
	s.log.Debug("store rejected", zap.String("key", key), zap.Error(err))
	return resolved(&StoreError{Category: s.category, Key: key, Op: "validate", Err: err})
}

// write runs on the worker: resolve, encode, atomic write.
func (s *NamespaceStore) write(key string, p Payload) error {
	start := time.Now()
	path := s.Path(key)

	data, err := s.encoder.Encode(key, p)
	if err != nil {
		if errors.Is(err, ErrEmptyEncoding) {
			s.counters.dropped.Add(1)
			s.metrics.dropped.Inc()
			s.log.Debug("store dropped, nothing to write", zap.String("key", key))
		} else {
			s.counters.failed.Add(1)
			s.metrics.failed.Inc()
			s.log.Warn("encode failed", zap.String("key", key), zap.Error(err))
		}
		return &StoreError{Category: s.category, Key: key, Op: "encode", Err: err}
	}

	if err := writeFileAtomic(path, data, s.opts.FileMode, s.opts.SyncWrites); err != nil {
		s.counters.failed.Add(1)
		s.metrics.failed.Inc()
		s.log.Error("write failed", zap.String("key", key), zap.String("path", path), zap.Error(err))
		return &StoreError{Category: s.category, Key: key, Op: "write", Err: err}
	}

	s.counters.completed.Add(1)
	s.metrics.completed.Inc()
	s.metrics.duration.Observe(time.Since(start).Seconds())
	s.log.Debug("stored", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// DecodeObject restores an object file read from Path(key) into dst, using
// the codec and compression this namespace writes with.
func (s *NamespaceStore) DecodeObject(data []byte, key string, dst any) error {
	if s.category != Object {
		return &StoreError{Category: s.category, Key: key, Op: "decode", Err: ErrPayloadMismatch}
	}
	return unarchiveObject(s.opts.Codec, s.opts.CompressObjects, data, key, dst)
}

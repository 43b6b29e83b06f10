package diskcache

import "sync/atomic"

// Stats menyimpan statistik satu namespace.
type Stats struct {
	Category  Category
	Submitted uint64 // diterima ke antrean
	Completed uint64 // berhasil ditulis
	Failed    uint64 // gagal encode/tulis
	Dropped   uint64 // ditolak atau encoder tidak menghasilkan byte
	Pending   int    // masih menunggu di antrean
}

type counters struct {
	submitted atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
	dropped   atomic.Uint64
}

// Stats mengambil snapshot statistik tanpa lock berat.
func (s *NamespaceStore) Stats() Stats {
	return Stats{
		Category:  s.category,
		Submitted: s.counters.submitted.Load(),
		Completed: s.counters.completed.Load(),
		Failed:    s.counters.failed.Load(),
		Dropped:   s.counters.dropped.Load(),
		Pending:   s.queue.depth(),
	}
}

// ResetStats mengatur ulang penghitung.
func (s *NamespaceStore) ResetStats() {
	s.counters.submitted.Store(0)
	s.counters.completed.Store(0)
	s.counters.failed.Store(0)
	s.counters.dropped.Store(0)
}

// Category returns the content kind this store accepts.
func (s *NamespaceStore) Category() Category { return s.category }

// Root returns the namespace directory.
func (s *NamespaceStore) Root() string { return s.root }

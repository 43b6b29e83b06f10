package diskcache

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Flush waits until every request submitted before the call has finished.
func (s *NamespaceStore) Flush(ctx context.Context) error {
	return s.queue.barrier(ctx)
}

// Close stops accepting requests, drains the queue and stops the worker.
// Requests submitted afterwards finish with ErrClosed. Close is idempotent
// and returns the error of the final logger sync, if any.
func (s *NamespaceStore) Close() error {
	s.queue.close()
	if err := s.log.Sync(); err != nil && !unsyncableSink(err) {
		return fmt.Errorf("sync logger: %w", err)
	}
	return nil
}

// unsyncableSink reports errors from terminals and pipes, which cannot fsync.
func unsyncableSink(err error) bool {
	return errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOTTY)
}

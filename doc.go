// Package diskcache provides a keyed on-disk cache for three content
// categories: archived objects, images and raw voice clips. Every category
// lives in its own namespace directory and owns a single background worker,
// so writes to one namespace never interleave and run in submission order.
//
// The library is organised into several files for clarity:
//
//	category.go    – category enumeration & per-category policy table
//	hash.go        – key hashers (md5, xxhash64, sha256-128)
//	path.go        – key to file path resolution
//	payload.go     – typed payload variants
//	codec.go       – keyed object archive formats (json, gob, snappy)
//	image.go       – bitmap orientation normalisation & jpeg encoding
//	encode.go      – per-category payload encoders
//	options.go     – configuration struct & defaults
//	config.go      – persisted namespace layout
//	env.go         – options from environment / dotenv files
//	queue.go       – serial FIFO worker & completions
//	cache.go       – namespace store constructor & Store
//	io.go          – atomic file writes
//	buffer.go      – pooled encode buffers
//	stats.go       – lightweight stats accessors
//	metrics.go     – prometheus collectors
//	log.go         – zap logger construction
//	flush_close.go – flush & close helpers
//	registry.go    – one long-lived store per category
//
// Stores are obtained from a Registry created at application start-up:
//
//	reg := diskcache.NewRegistry(diskcache.DefaultOptions())
//	defer reg.Close()
//	done := reg.Objects().Store("user:42", diskcache.ObjectOf(user), nil)
//	if err := done.Wait(ctx); err != nil { ... }
//
// Two registries (or two stores) pointed at the same directory do not share a
// worker and therefore race on identical keys.
package diskcache

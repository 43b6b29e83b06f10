package diskcache

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by OptionsFromEnv.
const (
	EnvBaseDir         = "DISKCACHE_BASE_DIR"
	EnvDirPrefix       = "DISKCACHE_DIR_PREFIX"
	EnvHasher          = "DISKCACHE_HASHER"
	EnvCodec           = "DISKCACHE_CODEC"
	EnvCompressObjects = "DISKCACHE_COMPRESS_OBJECTS"
	EnvJPEGQuality     = "DISKCACHE_JPEG_QUALITY"
	EnvSyncWrites      = "DISKCACHE_SYNC_WRITES"
)

// OptionsFromEnv starts from DefaultOptions and applies DISKCACHE_* settings.
// Values from the given dotenv files are used unless the process environment
// sets the same variable.
func OptionsFromEnv(files ...string) (CacheOptions, error) {
	opts := DefaultOptions()

	vars := map[string]string{}
	if len(files) > 0 {
		m, err := godotenv.Read(files...)
		if err != nil {
			return opts, fmt.Errorf("read env files: %w", err)
		}
		vars = m
	}
	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := vars[name]
		return v, ok
	}

	if v, ok := lookup(EnvBaseDir); ok && v != "" {
		opts.BaseDir = v
	}
	if v, ok := lookup(EnvDirPrefix); ok && v != "" {
		opts.DirPrefix = v
	}
	if v, ok := lookup(EnvHasher); ok {
		h, err := HasherByName(v)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", EnvHasher, err)
		}
		opts.Hasher = h
	}
	if v, ok := lookup(EnvCodec); ok {
		c, err := CodecByName(v)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", EnvCodec, err)
		}
		opts.Codec = c
	}
	if v, ok := lookup(EnvCompressObjects); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", EnvCompressObjects, err)
		}
		opts.CompressObjects = b
	}
	if v, ok := lookup(EnvJPEGQuality); ok {
		q, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", EnvJPEGQuality, err)
		}
		if q < 1 || q > 100 {
			return opts, fmt.Errorf("%s: quality %d out of range 1..100", EnvJPEGQuality, q)
		}
		opts.JPEGQuality = q
	}
	if v, ok := lookup(EnvSyncWrites); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", EnvSyncWrites, err)
		}
		opts.SyncWrites = b
	}
	return opts, nil
}

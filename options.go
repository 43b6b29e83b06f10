package diskcache

import (
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultDirPrefix is prepended to the category tag to name a namespace directory.
const DefaultDirPrefix = "com.el.diskcache."

// CacheOptions menyediakan opsi konfigurasi untuk NamespaceStore dan Registry.
//
//   - BaseDir:         direktori induk (kosong = direktori cache platform)
//   - DirPrefix:       prefix nama direktori namespace
//   - Hasher:          fungsi key -> nama file (nil = md5)
//   - Codec:           format arsip object (nil = json)
//   - CompressObjects: kompres arsip object dengan snappy
//   - JPEGQuality:     kualitas jpeg 1..100 (0 = 90)
//   - SyncWrites:      fsync file & direktori setiap penulisan
//
// Nilai 0 artinya gunakan default. Lihat DefaultOptions() untuk nilai bawaan.
// Hasher, Codec dan CompressObjects dapat ditimpa oleh layout yang sudah
// tersimpan di direktori namespace.
type CacheOptions struct {
	BaseDir         string
	DirPrefix       string
	Hasher          KeyHasher
	Codec           ObjectCodec
	CompressObjects bool
	JPEGQuality     int
	FileMode        os.FileMode
	DirMode         os.FileMode
	SyncWrites      bool

	Logger     *zap.Logger           // nil = no logging
	Registerer prometheus.Registerer // nil = collectors are not registered
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan NewRegistry.
func DefaultOptions() CacheOptions {
	return CacheOptions{
		BaseDir:     defaultBaseDir(),
		DirPrefix:   DefaultDirPrefix,
		Hasher:      MD5Hasher{},
		Codec:       JSONCodec{},
		JPEGQuality: 90,
		FileMode:    0o644,
		DirMode:     0o755,
		SyncWrites:  true,
	}
}

func defaultBaseDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}
	return filepath.Join(os.TempDir(), "cache")
}

// withDefaults fills zero fields so the store never deals with unset options.
func (o CacheOptions) withDefaults() CacheOptions {
	if o.BaseDir == "" {
		o.BaseDir = defaultBaseDir()
	}
	if o.DirPrefix == "" {
		o.DirPrefix = DefaultDirPrefix
	}
	if o.Hasher == nil {
		o.Hasher = MD5Hasher{}
	}
	if o.Codec == nil {
		o.Codec = JSONCodec{}
	}
	if o.JPEGQuality <= 0 || o.JPEGQuality > 100 {
		o.JPEGQuality = 90
	}
	if o.FileMode == 0 {
		o.FileMode = 0o644
	}
	if o.DirMode == 0 {
		o.DirMode = 0o755
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

package diskcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerWritesFile(t *testing.T) {
	opts := DefaultLogOptions()
	opts.ToConsole = false
	opts.Level = "debug"
	opts.FilePath = filepath.Join(t.TempDir(), "diskcache.log")

	logger, err := NewLogger(opts)
	require.NoError(t, err)

	s := newTestStoreWithOpts(t, Voice, func(o *CacheOptions) { o.Logger = logger })
	require.NoError(t, s.Store("k", VoiceOf([]byte("x")), nil).Wait(waitCtx(t)))
	_ = logger.Sync()

	data, err := os.ReadFile(opts.FilePath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"module":"diskcache"`)
	require.Contains(t, string(data), `"category":"ELVoice"`)
	require.Contains(t, string(data), `"msg":"stored"`)
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger(LogOptions{Level: "loud"})
	require.Error(t, err)
}

func TestNewLoggerNoSinks(t *testing.T) {
	logger, err := NewLogger(LogOptions{Level: "info"})
	require.NoError(t, err)
	require.Equal(t, zap.NewNop().Core().Enabled(zap.InfoLevel), logger.Core().Enabled(zap.InfoLevel))
}

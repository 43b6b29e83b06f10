package diskcache

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var hexName = regexp.MustCompile(`^[0-9a-f]+$`)

func TestHashersDeterministicAndDistinct(t *testing.T) {
	hashers := []struct {
		h     KeyHasher
		width int
	}{
		{MD5Hasher{}, 32},
		{XXHasher{}, 16},
		{SHA256Hasher{}, 32},
	}
	for _, tc := range hashers {
		t.Run(tc.h.Name(), func(t *testing.T) {
			seen := make(map[string]string, 2000)
			for i := 0; i < 2000; i++ {
				key := fmt.Sprintf("user:%d/avatar?size=%d", i, i%7)
				d := tc.h.Hash(key)
				require.Equal(t, d, tc.h.Hash(key), "hash must be deterministic")
				require.Len(t, d, tc.width)
				require.Regexp(t, hexName, d)
				if prev, ok := seen[d]; ok {
					t.Fatalf("collision between %q and %q", prev, key)
				}
				seen[d] = key
			}
		})
	}
}

func TestMD5HasherKnownDigest(t *testing.T) {
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", MD5Hasher{}.Hash("abc"))
}

func TestHasherByName(t *testing.T) {
	for _, name := range []string{"", "md5", "xxhash", "xxhash64", "sha256", "sha256-128"} {
		h, err := HasherByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, h)
	}
	_, err := HasherByName("crc32")
	require.ErrorIs(t, err, ErrUnknownHasher)
}

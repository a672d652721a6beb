// pkg/crypto/random_test.go

package crypto

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestRandomIndex(t *testing.T) {
	t.Parallel()

	t.Run("stays in range", func(t *testing.T) {
		t.Parallel()
		for i := 0; i < 500; i++ {
			n, err := RandomIndex(nil, 7)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 7)
		}
	})

	t.Run("bound of one is always zero", func(t *testing.T) {
		t.Parallel()
		n, err := RandomIndex(nil, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("non-positive bound", func(t *testing.T) {
		t.Parallel()
		_, err := RandomIndex(nil, 0)
		assert.Error(t, err)
		_, err = RandomIndex(nil, -3)
		assert.Error(t, err)
	})

	t.Run("reader failure propagates", func(t *testing.T) {
		t.Parallel()
		_, err := RandomIndex(failingReader{}, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entropy exhausted")
	})
}

func TestRandomChar(t *testing.T) {
	t.Parallel()

	const charset = "abc"
	seen := map[byte]bool{}
	for i := 0; i < 300; i++ {
		c, err := RandomChar(nil, charset)
		require.NoError(t, err)
		assert.True(t, strings.IndexByte(charset, c) >= 0, "unexpected char %q", c)
		seen[c] = true
	}
	assert.Len(t, seen, len(charset), "every char should be drawn at least once in 300 tries")

	_, err := RandomChar(nil, "")
	assert.Error(t, err)
}

func TestShuffle(t *testing.T) {
	t.Parallel()

	t.Run("preserves multiset", func(t *testing.T) {
		t.Parallel()
		orig := []byte("AAbb12!@xyz")
		b := append([]byte(nil), orig...)
		require.NoError(t, Shuffle(nil, b))

		sortedOrig := append([]byte(nil), orig...)
		sort.Slice(sortedOrig, func(i, j int) bool { return sortedOrig[i] < sortedOrig[j] })
		sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
		assert.Equal(t, sortedOrig, b)
	})

	t.Run("deterministic for identical entropy", func(t *testing.T) {
		t.Parallel()
		seed := bytes.Repeat([]byte{0x5a, 0x13, 0xc7, 0x02}, 64)
		a := []byte("abcdefghij")
		b := []byte("abcdefghij")
		require.NoError(t, Shuffle(bytes.NewReader(seed), a))
		require.NoError(t, Shuffle(bytes.NewReader(seed), b))
		assert.Equal(t, a, b)
	})

	t.Run("short inputs are no-ops", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Shuffle(failingReader{}, nil))
		one := []byte("x")
		assert.NoError(t, Shuffle(failingReader{}, one))
		assert.Equal(t, []byte("x"), one)
	})

	t.Run("reader failure propagates", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, Shuffle(failingReader{}, []byte("abcd")))
	})
}

func TestRedact(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(empty)", Redact(""))
	assert.Equal(t, "[redacted:6 chars]", Redact("s3cret"))
	assert.Equal(t, "[redacted:2 chars]", Redact("密码"))
	assert.NotContains(t, Redact("hunter2"), "hunter2")
}

func TestSecureZero(t *testing.T) {
	t.Parallel()
	b := []byte("Str0ng!Pass")
	SecureZero(b)
	assert.Equal(t, make([]byte, 11), b)
	assert.NotPanics(t, func() { SecureZero(nil) })
}

/* pkg/crypto/random.go */

package crypto

import (
	"crypto/rand"
	"io"
	"math/big"

	cerr "github.com/cockroachdb/errors"
)

// DefaultSource is the entropy source used when a caller passes nil.
var DefaultSource io.Reader = rand.Reader

func source(r io.Reader) io.Reader {
	if r == nil {
		return DefaultSource
	}
	return r
}

// RandomIndex returns a uniform integer in [0, n) drawn from r.
// rand.Int rejects out-of-range samples, so there is no modulo bias.
func RandomIndex(r io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, cerr.Newf("random index bound must be positive, got %d", n)
	}
	v, err := rand.Int(source(r), big.NewInt(int64(n)))
	if err != nil {
		return 0, cerr.Wrap(err, "read entropy")
	}
	return int(v.Int64()), nil
}

// RandomChar picks one byte of charset uniformly at random.
func RandomChar(r io.Reader, charset string) (byte, error) {
	if charset == "" {
		return 0, cerr.New("charset is empty")
	}
	i, err := RandomIndex(r, len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// Shuffle permutes b in place with a Fisher-Yates shuffle driven by r.
func Shuffle(r io.Reader, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := RandomIndex(r, i+1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

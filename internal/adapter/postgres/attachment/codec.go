package attachment

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

const (
	encodingIdentity = "identity"
	encodingZstd     = "zstd"
)

// DefaultMaxSize bounds decompressed attachment bytes when WithMaxSize is not given.
const DefaultMaxSize int64 = 64 << 20

// zstdCodec compresses attachment bytes at rest. zstd.Encoder and
// zstd.Decoder are safe for concurrent use via EncodeAll/DecodeAll.
// enc is nil when writes are stored uncompressed.
type zstdCodec struct {
	enc     *zstd.Encoder
	dec     *zstd.Decoder
	maxSize int64
}

func newZstdCodec(compress bool, maxSize int64) (*zstdCodec, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	c := &zstdCodec{maxSize: maxSize}
	if compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
		c.enc = enc
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(maxSize)))
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	c.dec = dec
	return c, nil
}

// encode returns the stored bytes and their encoding. Data that does not
// shrink is stored as-is.
func (c *zstdCodec) encode(data []byte) ([]byte, string) {
	if c == nil || c.enc == nil || len(data) == 0 {
		return data, encodingIdentity
	}
	compressed := c.enc.EncodeAll(data, make([]byte, 0, len(data)))
	if len(compressed) >= len(data) {
		return data, encodingIdentity
	}
	return compressed, encodingZstd
}

// decode decompresses a zstd payload. sizeHint is the size recorded at
// upload; it only presizes the buffer and never exceeds maxSize.
func (c *zstdCodec) decode(data []byte, sizeHint int64) ([]byte, error) {
	if c == nil {
		return nil, errors.New("zstd decoder not configured")
	}
	out, err := c.dec.DecodeAll(data, make([]byte, 0, bufferHint(sizeHint, c.maxSize)))
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return out, nil
}

func bufferHint(size, limit int64) int64 {
	if size <= 0 {
		return 0
	}
	return min(size, limit)
}

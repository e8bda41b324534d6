// Package deltastore persists a diff script's delta-encoded form as a
// zstd-compressed, CRC64-verified blob. It sits outside the core engine:
// spec §1 treats patch persistence as a thin external collaborator, not a
// module responsibility.
package deltastore

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/glyphdiff/dmp/modules/crc"
	"github.com/glyphdiff/dmp/modules/dmp"
)

var (
	zstdReader = sync.Pool{
		New: func() any {
			d, _ := zstd.NewReader(nil)
			return d
		},
	}
	zstdWriter = sync.Pool{
		New: func() any {
			e, _ := zstd.NewWriter(nil)
			return e
		},
	}
)

// Encode compresses diffs' delta encoding and appends a CRC64 checksum, so
// a corrupted blob is caught on Decode rather than silently producing a
// wrong patch.
func Encode(diffs dmp.Diffs) ([]byte, error) {
	enc := zstdWriter.Get().(*zstd.Encoder)
	defer zstdWriter.Put(enc)
	compressed := enc.EncodeAll([]byte(diffs.ToDelta()), nil)

	var buf bytes.Buffer
	cw := crc.NewCrc64Writer(&buf)
	if _, err := cw.Write(compressed); err != nil {
		return nil, fmt.Errorf("deltastore: %w", err)
	}
	if _, err := cw.Finish(); err != nil {
		return nil, fmt.Errorf("deltastore: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode, verifying the trailing checksum before
// reconstructing the diff script against text1.
func Decode(text1 string, blob []byte) (dmp.Diffs, error) {
	if len(blob) < 16 {
		return nil, fmt.Errorf("deltastore: blob too short to carry a checksum")
	}
	compressedLen := len(blob) - 16

	cr := crc.NewCrc64Reader(bytes.NewReader(blob))
	compressed := make([]byte, compressedLen)
	if _, err := io.ReadFull(cr, compressed); err != nil {
		return nil, fmt.Errorf("deltastore: %w", err)
	}
	if err := cr.Verify(); err != nil {
		return nil, fmt.Errorf("deltastore: %w", err)
	}

	dec := zstdReader.Get().(*zstd.Decoder)
	defer zstdReader.Put(dec)
	delta, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("deltastore: %w", err)
	}
	return dmp.FromDelta(text1, string(delta))
}

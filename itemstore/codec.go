package itemstore

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec transforms blobs on their way to and from durable storage.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Name identifies the codec (used as a file suffix by LocalStore).
	Name() string
	// Encode returns the stored representation of data.
	Encode(data []byte) ([]byte, error)
	// Decode reverses Encode.
	Decode(data []byte) ([]byte, error)
}

// IdentityCodec stores blobs as-is.
type IdentityCodec struct{}

func (IdentityCodec) Name() string { return "" }

func (IdentityCodec) Encode(data []byte) ([]byte, error) { return data, nil }

func (IdentityCodec) Decode(data []byte) ([]byte, error) { return data, nil }

// ZstdCodec compresses blobs with zstd. The zero value is ready to use.
type ZstdCodec struct{}

func (ZstdCodec) Name() string { return "zst" }

func (ZstdCodec) Encode(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = enc.Close() }()
	return enc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decode(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// LZ4Codec compresses blobs with the LZ4 frame format. The zero value is
// ready to use.
type LZ4Codec struct{}

func (LZ4Codec) Name() string { return "lz4" }

func (LZ4Codec) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (LZ4Codec) Decode(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

package ir

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"hash/maphash"
	"io"
	"iter"
	"strings"
)

var (
	blobEncoding = base64.StdEncoding
	blobDecoding = base64.StdEncoding.Strict()
)

// Blob is an annotated, growable byte buffer.
//
// The metadata is fixed when the blob is created; the bytes may be
// appended to with Write and friends. A Blob owns its buffer: the
// constructors taking a byte slice take ownership of it and the caller
// must not retain or modify the slice afterwards.
//
// Equality and Hash reflect the current contents. Appending to a blob that
// is already reachable from a hashed Value (a struct entry, a ValueSet
// member) invalidates that hash; it is up to the caller not to do so.
//
// Binary reads (Bytes, Reader, WriteTo) give the raw bytes. Text reads
// (Text, MarshalText) give the base64 encoding. String, the display form,
// prefixes the base64 with "metadata:" when metadata is present; that form
// is not accepted by DecodeBase64, which only takes pure base64.
type Blob struct {
	metadata string
	hasMeta  bool
	data     []byte
	// owned is set once the blob is the payload of a Value.
	owned bool
}

func NewBlob() *Blob {
	return &Blob{}
}

func NewBlobWithMetadata(metadata string) *Blob {
	return &Blob{metadata: metadata, hasMeta: true}
}

func NewBlobWithCapacity(capacity int) *Blob {
	return BlobFromBytes(make([]byte, 0, capacity))
}

func NewBlobWithCapacityAndMetadata(capacity int, metadata string) *Blob {
	return BlobFromBytesWithMetadata(make([]byte, 0, capacity), metadata)
}

// BlobFromBytes creates a blob owning data.
func BlobFromBytes(data []byte) *Blob {
	return &Blob{data: data}
}

// BlobFromBytesWithMetadata creates an annotated blob owning data.
func BlobFromBytesWithMetadata(data []byte, metadata string) *Blob {
	return &Blob{data: data, metadata: metadata, hasMeta: true}
}

// BlobFromSeq collects the bytes produced by seq into a new blob.
func BlobFromSeq(seq iter.Seq[byte]) *Blob {
	b := NewBlob()
	b.Extend(seq)
	return b
}

// DecodeBase64 decodes standard, padded base64 text into a blob without
// metadata. The text is never split on a "metadata:" prefix.
func DecodeBase64(encoded string) (*Blob, error) {
	data, err := decodeBase64(encoded)
	if err != nil {
		return nil, err
	}
	return BlobFromBytes(data), nil
}

// DecodeBase64WithMetadata is DecodeBase64 with explicitly supplied
// metadata.
func DecodeBase64WithMetadata(encoded, metadata string) (*Blob, error) {
	data, err := decodeBase64(encoded)
	if err != nil {
		return nil, err
	}
	return BlobFromBytesWithMetadata(data, metadata), nil
}

func decodeBase64(encoded string) ([]byte, error) {
	// encoding/base64 silently skips line breaks; they are not part of
	// the canonical form.
	if i := strings.IndexAny(encoded, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, base64.CorruptInputError(i))
	}
	data, err := blobDecoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return data, nil
}

func (b *Blob) Metadata() (string, bool) {
	return b.metadata, b.hasMeta
}

func (b *Blob) Len() int {
	return len(b.data)
}

func (b *Blob) Cap() int {
	return cap(b.data)
}

// Bytes returns the underlying bytes without copying.
func (b *Blob) Bytes() []byte {
	return b.data
}

// IntoBytes hands the buffer to the caller, leaving b empty.
func (b *Blob) IntoBytes() []byte {
	data := b.data
	b.data = nil
	return data
}

func (b *Blob) EncodeBase64() string {
	return blobEncoding.EncodeToString(b.data)
}

// Text is the text-oriented read of a blob: its base64 encoding, without
// any metadata.
func (b *Blob) Text() string {
	return b.EncodeBase64()
}

// String returns the display form, "metadata:base64" or "base64".
func (b *Blob) String() string {
	data := b.EncodeBase64()
	if !b.hasMeta {
		return data
	}
	return b.metadata + ":" + data
}

func (b *Blob) MarshalText() ([]byte, error) {
	res := make([]byte, blobEncoding.EncodedLen(len(b.data)))
	blobEncoding.Encode(res, b.data)
	return res, nil
}

// UnmarshalText replaces the bytes of b with the decoded base64 text,
// keeping its metadata.
func (b *Blob) UnmarshalText(d []byte) error {
	data, err := decodeBase64(string(d))
	if err != nil {
		return err
	}
	b.data = data
	return nil
}

// Reader returns a reader over the raw bytes.
func (b *Blob) Reader() io.Reader {
	return bytes.NewReader(b.data)
}

// WriteTo writes the raw bytes to w.
func (b *Blob) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}

// Write appends p to the blob. It never fails.
func (b *Blob) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *Blob) WriteByte(c byte) error {
	b.data = append(b.data, c)
	return nil
}

func (b *Blob) WriteString(s string) (int, error) {
	b.data = append(b.data, s...)
	return len(s), nil
}

// ReadFrom appends everything read from r until EOF.
func (b *Blob) ReadFrom(r io.Reader) (int64, error) {
	buf := bytes.NewBuffer(b.data)
	n, err := buf.ReadFrom(r)
	b.data = buf.Bytes()
	return n, err
}

func (b *Blob) Extend(seq iter.Seq[byte]) {
	for c := range seq {
		b.data = append(b.data, c)
	}
}

func (b *Blob) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, c := range b.data {
			if !yield(c) {
				return
			}
		}
	}
}

// Clone returns a blob with the same metadata and a copy of the bytes.
// The clone is not held by any Value.
func (b *Blob) Clone() *Blob {
	res := *b
	res.owned = false
	if b.data != nil {
		res.data = make([]byte, len(b.data), cap(b.data))
		copy(res.data, b.data)
	}
	return &res
}

// AsBlob makes *Blob a BlobSource. The blob itself is returned, so
// converting it into a Value transfers ownership, unless the blob is
// already held by another Value, in which case FromBinary copies it.
func (b *Blob) AsBlob() *Blob {
	return b
}

func (b *Blob) Equal(o *Blob) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.hasMeta == o.hasMeta &&
		b.metadata == o.metadata &&
		bytes.Equal(b.data, o.data)
}

func (b *Blob) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	b.writeHash(&h)
	return h.Sum64()
}

func (b *Blob) writeHash(h *maphash.Hash) {
	writeOptString(h, b.metadata, b.hasMeta)
	writeUint64(h, uint64(len(b.data)))
	h.Write(b.data)
}

// Bytes is a byte slice that converts into a Binary value.
type Bytes []byte

// AsBlob copies the bytes into a new blob without metadata.
func (p Bytes) AsBlob() *Blob {
	return BlobFromBytes(bytes.Clone([]byte(p)))
}

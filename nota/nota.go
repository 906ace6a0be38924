// Package nota implements the binary codec for the back-notarization record
// embedded in a transaction output's script. The record commits to an
// earlier block by height and hash; everything after those fields is an
// opaque tail that must survive a decode/encode round trip byte-for-byte.
package nota

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/util/binaryserializer"
	"github.com/KomodoPlatform/zebra/util/chainhash"
)

// notaVersion is the version tag expected at the start of every serialized
// back-notarization record.
const notaVersion uint8 = 0x01

// minNotaLen is the minimal serialized length of a record: version tag,
// 4-byte height and 32-byte hash, with an empty tail.
const minNotaLen = 1 + 4 + chainhash.HashSize

// ErrNotaTooShort indicates that the candidate bytes are too short to hold a
// back-notarization record. Callers treat it as "no notarization present".
var ErrNotaTooShort = errors.New("notarization record too short")

// ErrNotaBadVersion indicates that the candidate bytes do not start with the
// expected version tag. Callers treat it as "no notarization present".
var ErrNotaBadVersion = errors.New("unknown notarization record version")

// BackNotarizationData is a back-notarization record: a commitment to the
// block at NotarizedHeight with hash NotarizedHash. Tail carries any bytes
// that followed the leading fields on the wire and is preserved verbatim by
// Serialize and Patch.
type BackNotarizationData struct {
	NotarizedHeight    uint32
	NotarizedBlockHash chainhash.Hash
	Tail               []byte
}

// Deserialize parses a serialized back-notarization record. The two typed
// failures, ErrNotaTooShort and ErrNotaBadVersion, mark ordinary
// non-notarization scripts and are not chain-breaking.
func Deserialize(b []byte) (*BackNotarizationData, error) {
	if len(b) < minNotaLen {
		return nil, errors.Wrapf(ErrNotaTooShort, "got %d bytes, need at least %d", len(b), minNotaLen)
	}

	r := bytes.NewReader(b)
	version, err := binaryserializer.Uint8(r)
	if err != nil {
		return nil, err
	}
	if version != notaVersion {
		return nil, errors.Wrapf(ErrNotaBadVersion, "got version %#02x", version)
	}

	n := &BackNotarizationData{}
	n.NotarizedHeight, err = binaryserializer.Uint32(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Read(n.NotarizedBlockHash[:]); err != nil {
		return nil, errors.WithStack(err)
	}

	n.Tail = make([]byte, r.Len())
	if len(n.Tail) != 0 {
		if _, err := r.Read(n.Tail); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return n, nil
}

// Serialize encodes the record to its canonical byte form. The encoding is
// deterministic: Deserialize(n.Serialize()) reproduces n exactly.
func (n *BackNotarizationData) Serialize() []byte {
	w := bytes.NewBuffer(make([]byte, 0, minNotaLen+len(n.Tail)))
	// Writing to a bytes.Buffer cannot fail.
	_ = binaryserializer.PutUint8(w, notaVersion)
	_ = binaryserializer.PutUint32(w, n.NotarizedHeight)
	_, _ = w.Write(n.NotarizedBlockHash[:])
	_, _ = w.Write(n.Tail)
	return w.Bytes()
}

// Patch replaces the notarized height and block hash, leaving the tail bytes
// untouched.
func (n *BackNotarizationData) Patch(height uint32, blockHash *chainhash.Hash) {
	n.NotarizedHeight = height
	n.NotarizedBlockHash = *blockHash
}

package nota

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/util/chainhash"
)

func TestRoundTrip(t *testing.T) {
	hash, err := chainhash.NewHashFromStr("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}

	original := &BackNotarizationData{
		NotarizedHeight:    2437301,
		NotarizedBlockHash: *hash,
		Tail:               []byte{0x01, 0x4b, 0x4d, 0x44, 0x00, 0xde, 0xad},
	}

	serialized := original.Serialize()
	decoded, err := Deserialize(serialized)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if decoded.NotarizedHeight != original.NotarizedHeight {
		t.Errorf("height %d, want %d", decoded.NotarizedHeight, original.NotarizedHeight)
	}
	if decoded.NotarizedBlockHash != original.NotarizedBlockHash {
		t.Errorf("hash %s, want %s", decoded.NotarizedBlockHash, original.NotarizedBlockHash)
	}
	if !bytes.Equal(decoded.Tail, original.Tail) {
		t.Errorf("tail %x, want %x", decoded.Tail, original.Tail)
	}

	// A second encode reproduces the input bytes exactly.
	if !bytes.Equal(decoded.Serialize(), serialized) {
		t.Error("re-serialization is not byte identical")
	}
}

func TestEmptyTail(t *testing.T) {
	record := &BackNotarizationData{NotarizedHeight: 1}
	decoded, err := Deserialize(record.Serialize())
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if len(decoded.Tail) != 0 {
		t.Errorf("tail %x, want empty", decoded.Tail)
	}
}

func TestDeserializeTooShort(t *testing.T) {
	_, err := Deserialize(make([]byte, minNotaLen-1))
	if !errors.Is(err, ErrNotaTooShort) {
		t.Errorf("got %v, want ErrNotaTooShort", err)
	}

	_, err = Deserialize(nil)
	if !errors.Is(err, ErrNotaTooShort) {
		t.Errorf("nil input: got %v, want ErrNotaTooShort", err)
	}
}

func TestDeserializeBadVersion(t *testing.T) {
	b := (&BackNotarizationData{NotarizedHeight: 10}).Serialize()
	b[0] = 0x6a

	_, err := Deserialize(b)
	if !errors.Is(err, ErrNotaBadVersion) {
		t.Errorf("got %v, want ErrNotaBadVersion", err)
	}
}

func TestPatchPreservesTail(t *testing.T) {
	record := &BackNotarizationData{
		NotarizedHeight: 5,
		Tail:            []byte{0x4b, 0x4d, 0x44},
	}

	hash, err := chainhash.NewHashFromStr("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}
	record.Patch(42, hash)

	if record.NotarizedHeight != 42 {
		t.Errorf("height %d, want 42", record.NotarizedHeight)
	}
	if record.NotarizedBlockHash != *hash {
		t.Errorf("hash %s, want %s", record.NotarizedBlockHash, hash)
	}
	if !bytes.Equal(record.Tail, []byte{0x4b, 0x4d, 0x44}) {
		t.Errorf("tail %x changed by Patch", record.Tail)
	}
}

// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// mainnetGenesisHashStr is the Bitcoin mainnet genesis block hash, used here
// only as a well-known byte-reversed hex vector.
const mainnetGenesisHashStr = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"

func TestHashFuncs(t *testing.T) {
	data := []byte("hello")

	// Known SHA-256 vectors.
	wantSingle := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	wantDouble := "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50"

	single := HashB(data)
	if hex.EncodeToString(single) != wantSingle {
		t.Errorf("HashB: got %x, want %s", single, wantSingle)
	}
	if got := HashH(data); !bytes.Equal(got[:], single) {
		t.Errorf("HashH disagrees with HashB: %x vs %x", got[:], single)
	}

	double := DoubleHashB(data)
	if hex.EncodeToString(double) != wantDouble {
		t.Errorf("DoubleHashB: got %x, want %s", double, wantDouble)
	}
	if got := DoubleHashH(data); !bytes.Equal(got[:], double) {
		t.Errorf("DoubleHashH disagrees with DoubleHashB: %x vs %x", got[:], double)
	}
	if got := DoubleHashH(HashB(data)); !bytes.Equal(got[:], double) {
		t.Errorf("DoubleHashH is not hash(hash(b)): %x vs %x", got[:], double)
	}
}

func TestHashStringRoundTrip(t *testing.T) {
	hash, err := NewHashFromStr(mainnetGenesisHashStr)
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}
	if hash.String() != mainnetGenesisHashStr {
		t.Errorf("String round trip: got %s, want %s", hash.String(), mainnetGenesisHashStr)
	}

	// The string form is byte reversed, so the first raw byte carries the
	// low-order end of the hex string.
	if hash[0] != 0x6f {
		t.Errorf("hash[0] = %#x, want 0x6f", hash[0])
	}

	if _, err := NewHashFromStr(mainnetGenesisHashStr + "00"); err == nil {
		t.Error("NewHashFromStr accepted an overlong string")
	}
}

func TestCloneBytes(t *testing.T) {
	hash := DoubleHashH([]byte("clone me"))
	cloned := hash.CloneBytes()
	if !bytes.Equal(cloned, hash[:]) {
		t.Fatalf("CloneBytes: got %x, want %x", cloned, hash[:])
	}

	// Mutating the clone must not touch the original.
	cloned[0] ^= 0xff
	if bytes.Equal(cloned, hash[:]) {
		t.Error("CloneBytes returned a view of the original hash")
	}
}

func TestSetBytesAndIsEqual(t *testing.T) {
	raw := HashB([]byte("set me"))

	var hash Hash
	if err := hash.SetBytes(raw); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	if err := hash.SetBytes(raw[:HashSize-1]); err == nil {
		t.Error("SetBytes accepted a short slice")
	}

	other, err := NewHash(raw)
	if err != nil {
		t.Fatalf("NewHash: %v", err)
	}
	if !hash.IsEqual(other) {
		t.Errorf("IsEqual: %s != %s", &hash, other)
	}
	if hash.IsEqual(&ZeroHash) {
		t.Error("IsEqual matched the zero hash")
	}
	var nilHash *Hash
	if !nilHash.IsEqual(nil) {
		t.Error("IsEqual(nil, nil) = false")
	}
	if nilHash.IsEqual(&hash) {
		t.Error("IsEqual(nil, hash) = true")
	}
}

package blockchain

import (
	"testing"

	"github.com/KomodoPlatform/zebra/util/chainhash"
	"github.com/KomodoPlatform/zebra/wire"
)

func testOutpoint(t *testing.T, hashHex string, index uint32) wire.Outpoint {
	t.Helper()
	hash, err := chainhash.NewHashFromStr(hashHex)
	if err != nil {
		t.Fatalf("NewHashFromStr(%s): %v", hashHex, err)
	}
	return *wire.NewOutpoint(hash, index)
}

func TestUTXOSetAddRemove(t *testing.T) {
	set := NewUTXOSet()
	outpoint := testOutpoint(t, "1111111111111111111111111111111111111111111111111111111111111111", 0)
	entry := NewUTXOEntry(wire.NewTxOut(5000, []byte{0x51}), false, 7)

	if err := set.Add(outpoint, entry); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("set has %d entries, want 1", set.Len())
	}
	got, ok := set.Get(outpoint)
	if !ok {
		t.Fatal("Get: entry not found after Add")
	}
	if got.Amount() != 5000 || got.BlockHeight() != 7 || got.IsCoinbase() {
		t.Errorf("entry round trip mismatch: %d/%d/%t", got.Amount(), got.BlockHeight(), got.IsCoinbase())
	}

	if err := set.Remove(outpoint); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if set.Contains(outpoint) {
		t.Error("entry still present after Remove")
	}
	if err := set.Remove(outpoint); err == nil {
		t.Error("Remove of an absent outpoint did not error")
	}
}

func TestUTXOSetCommitment(t *testing.T) {
	emptyCommitment := NewUTXOSet().UTXOCommitment()

	outpointA := testOutpoint(t, "1111111111111111111111111111111111111111111111111111111111111111", 0)
	outpointB := testOutpoint(t, "2222222222222222222222222222222222222222222222222222222222222222", 3)
	entryA := NewUTXOEntry(wire.NewTxOut(5000, []byte{0x51}), false, 7)
	entryB := NewUTXOEntry(wire.NewTxOut(9000, []byte{0x52}), true, 9)

	// The commitment is insertion-order independent.
	setAB := NewUTXOSet()
	if err := setAB.Add(outpointA, entryA); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := setAB.Add(outpointB, entryB); err != nil {
		t.Fatalf("Add: %v", err)
	}
	setBA := NewUTXOSet()
	if err := setBA.Add(outpointB, entryB); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := setBA.Add(outpointA, entryA); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if setAB.UTXOCommitment() != setBA.UTXOCommitment() {
		t.Error("commitment depends on insertion order")
	}

	// Removing everything restores the empty commitment.
	if err := setAB.Remove(outpointA); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := setAB.Remove(outpointB); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if setAB.UTXOCommitment() != emptyCommitment {
		t.Error("commitment of an emptied set differs from the empty set")
	}
}

func TestUTXOSetOutpointsOrder(t *testing.T) {
	set := NewUTXOSet()
	outpoints := []wire.Outpoint{
		testOutpoint(t, "3333333333333333333333333333333333333333333333333333333333333333", 1),
		testOutpoint(t, "1111111111111111111111111111111111111111111111111111111111111111", 2),
		testOutpoint(t, "1111111111111111111111111111111111111111111111111111111111111111", 0),
	}
	for _, outpoint := range outpoints {
		err := set.Add(outpoint, NewUTXOEntry(wire.NewTxOut(1000, []byte{0x51}), false, 1))
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got := set.Outpoints()
	want := []wire.Outpoint{outpoints[2], outpoints[1], outpoints[0]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Outpoints()[%d] = %s:%d, want %s:%d",
				i, got[i].TxID, got[i].Index, want[i].TxID, want[i].Index)
		}
	}
}

func TestUTXOSetClone(t *testing.T) {
	set := NewUTXOSet()
	outpoint := testOutpoint(t, "1111111111111111111111111111111111111111111111111111111111111111", 0)
	err := set.Add(outpoint, NewUTXOEntry(wire.NewTxOut(5000, []byte{0x51}), false, 7))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	clone := set.Clone()
	if clone.UTXOCommitment() != set.UTXOCommitment() {
		t.Fatal("clone commitment differs from the original")
	}

	if err := clone.Remove(outpoint); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !set.Contains(outpoint) {
		t.Error("removing from the clone mutated the original")
	}
	if clone.UTXOCommitment() == set.UTXOCommitment() {
		t.Error("clone commitment still tracks the original after divergence")
	}
}

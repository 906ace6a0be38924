package wire

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/KomodoPlatform/zebra/util/chainhash"
)

func testTx(t *testing.T) *MsgTx {
	t.Helper()
	prevTxID, err := chainhash.NewHashFromStr("79a9ed1a08d43e81d410a5a0a46b2280b2c17b7455f29a2d2798e5da2e7ffc49")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}

	tx := NewMsgTx(TxVersion)
	tx.AddTxIn(NewTxIn(NewOutpoint(prevTxID, 2), []byte{0x51, 0x52}))
	tx.AddTxOut(NewTxOut(5000, []byte{0x51}))
	tx.AddTxOut(NewTxOut(0, []byte{0x6a, 0x01, 0x02}))
	return tx
}

func TestTxSerializeRoundTrip(t *testing.T) {
	tx := testTx(t)

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if buf.Len() != tx.SerializeSize() {
		t.Errorf("serialized %d bytes, SerializeSize reports %d", buf.Len(), tx.SerializeSize())
	}

	var decoded MsgTx
	if err := decoded.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if decoded.TxHash() != tx.TxHash() {
		t.Errorf("round trip changed the transaction:\n%s\n%s",
			spew.Sdump(tx), spew.Sdump(&decoded))
	}
}

func TestTxCopyIsDeep(t *testing.T) {
	tx := testTx(t)
	txCopy := tx.Copy()

	txCopy.TxIn[0].SignatureScript[0] = 0x00
	txCopy.TxOut[0].Value = 1

	if tx.TxIn[0].SignatureScript[0] != 0x51 {
		t.Error("mutating the copy's signature script changed the original")
	}
	if tx.TxOut[0].Value != 5000 {
		t.Error("mutating the copy's output changed the original")
	}
}

func TestIsCoinBase(t *testing.T) {
	coinbase := NewMsgTx(TxVersion)
	coinbase.AddTxIn(NewCoinbaseTxIn(StandardCoinbaseScript(10, nil)))
	coinbase.AddTxOut(NewTxOut(5000, []byte{0x51}))
	if !coinbase.IsCoinBase() {
		t.Error("coinbase transaction not detected")
	}

	if testTx(t).IsCoinBase() {
		t.Error("regular transaction detected as coinbase")
	}
}

func TestBlockSerializeRoundTrip(t *testing.T) {
	header := &BlockHeader{Version: 4, Bits: 0x200f0f0f}
	block := NewMsgBlock(header)
	block.AddTransaction(testTx(t))

	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	var decoded MsgBlock
	if err := decoded.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if decoded.BlockHash() != block.BlockHash() {
		t.Errorf("round trip changed the block:\n%s\n%s",
			spew.Sdump(block), spew.Sdump(&decoded))
	}

	gotHashes := decoded.TxHashes()
	wantHashes := block.TxHashes()
	if len(gotHashes) != len(wantHashes) {
		t.Fatalf("TxHashes length %d, want %d", len(gotHashes), len(wantHashes))
	}
	for i, hash := range gotHashes {
		if hash != wantHashes[i] {
			t.Errorf("TxHashes[%d] = %s, want %s", i, hash, wantHashes[i])
		}
	}
}

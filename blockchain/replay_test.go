package blockchain

import (
	"bytes"
	"testing"
	"time"

	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/chaincfg"
	"github.com/KomodoPlatform/zebra/nota"
	"github.com/KomodoPlatform/zebra/util/chainhash"
	"github.com/KomodoPlatform/zebra/wire"
)

// allowAllSpends is a spend policy that accepts every spend.
func allowAllSpends(_ *chaincfg.Params, _ wire.Outpoint, _ SpendRestriction, _ *OrderedUTXO) error {
	return nil
}

// testFixup is the reference fixup used throughout these tests. It registers
// coinbase outputs, rewrites the inputs of every other transaction to spend
// either the supplied known-UTXO hints or the lowest-ordered entries of the
// UTXO set, and keeps the accumulator's pools and set in step with what it
// rewrote.
func testFixup(params *chaincfg.Params, tx *wire.MsgTx, txIndex int, height uint64,
	_ *time.Time, acc *ChainAccumulator, checkSpend SpendPolicyFunc,
	knownUTXOs []KnownUTXO) (*wire.MsgTx, error) {

	if txIndex == 0 {
		txHash := tx.TxHash()
		var created btcutil.Amount
		for i, txOut := range tx.TxOut {
			outpoint := wire.NewOutpoint(&txHash, uint32(i))
			err := acc.UTXOs.Add(*outpoint, NewUTXOEntry(txOut, true, height))
			if err != nil {
				return nil, err
			}
			created += btcutil.Amount(txOut.Value)
		}
		acc.Pools.Credit(PoolTransparent, created)
		return tx, nil
	}

	if knownUTXOs != nil {
		if len(knownUTXOs) != len(tx.TxIn) {
			return nil, errors.Errorf("got %d hints for %d inputs", len(knownUTXOs), len(tx.TxIn))
		}
		for i, hint := range knownUTXOs {
			err := checkSpend(params, hint.Outpoint, SpendAnyOutput, &hint.UTXO)
			if err != nil {
				return nil, err
			}
			tx.TxIn[i].PreviousOutpoint = hint.Outpoint
			err = acc.UTXOs.Remove(hint.Outpoint)
			if err != nil {
				return nil, err
			}
			err = acc.Pools.Debit(PoolTransparent, btcutil.Amount(hint.UTXO.Entry.Amount()))
			if err != nil {
				return nil, err
			}
		}
	} else {
		outpoints := acc.UTXOs.Outpoints()
		if len(outpoints) < len(tx.TxIn) {
			return nil, errors.Errorf("only %d unspent outputs for %d inputs", len(outpoints), len(tx.TxIn))
		}
		for i := range tx.TxIn {
			outpoint := outpoints[i]
			entry, _ := acc.UTXOs.Get(outpoint)
			restriction := SpendAnyOutput
			if entry.IsCoinbase() {
				restriction = SpendShieldedOnly
			}
			err := checkSpend(params, outpoint, restriction, &OrderedUTXO{Entry: entry, TxIndex: 0})
			if err != nil {
				return nil, err
			}
			tx.TxIn[i].PreviousOutpoint = outpoint
			err = acc.UTXOs.Remove(outpoint)
			if err != nil {
				return nil, err
			}
			err = acc.Pools.Debit(PoolTransparent, btcutil.Amount(entry.Amount()))
			if err != nil {
				return nil, err
			}
		}
	}

	txHash := tx.TxHash()
	var created btcutil.Amount
	for i, txOut := range tx.TxOut {
		outpoint := wire.NewOutpoint(&txHash, uint32(i))
		err := acc.UTXOs.Add(*outpoint, NewUTXOEntry(txOut, false, height))
		if err != nil {
			return nil, err
		}
		created += btcutil.Amount(txOut.Value)
	}
	acc.Pools.Credit(PoolTransparent, created)
	return tx, nil
}

func TestBuildChainGenesisAndLinkage(t *testing.T) {
	params := &chaincfg.TestnetParams
	acc := NewChainAccumulator()

	blocks, err := BuildChain(params, "TESTBRANCH", nil, acc, 0, 2, true,
		testFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain: %+v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("built %d blocks, want 2", len(blocks))
	}

	// Height 0 carries the genesis linkage and coinbase payload.
	if blocks[0].Header.PrevBlock != params.GenesisPrevBlock {
		t.Errorf("block 0 previous hash %s, want genesis sentinel", blocks[0].Header.PrevBlock)
	}
	if !bytes.Equal(blocks[0].Transactions[0].TxIn[0].SignatureScript, params.GenesisCoinbaseScript) {
		t.Error("block 0 coinbase does not carry the genesis payload")
	}

	// Height 1 links to height 0 and advances the timestamp by one target
	// interval.
	block0Hash := blocks[0].BlockHash()
	if blocks[1].Header.PrevBlock != block0Hash {
		t.Errorf("block 1 previous hash %s, want %s", blocks[1].Header.PrevBlock, block0Hash)
	}
	wantTime := blocks[0].Header.Timestamp.Add(params.TargetTimePerBlock)
	if !blocks[1].Header.Timestamp.Equal(wantTime) {
		t.Errorf("block 1 timestamp %v, want %v", blocks[1].Header.Timestamp, wantTime)
	}

	// Heights 0 and 1 have no block two back, so their notarization
	// records stay the template placeholder.
	for height, block := range blocks {
		lastTx := block.Transactions[len(block.Transactions)-1]
		lastOut := lastTx.TxOut[len(lastTx.TxOut)-1]
		record, err := nota.Deserialize(lastOut.ScriptPubKey)
		if err != nil {
			t.Fatalf("height %d: notarization did not decode: %v", height, err)
		}
		if record.NotarizedHeight != 0 || record.NotarizedBlockHash != chainhash.ZeroHash {
			t.Errorf("height %d: notarization was patched without a target block", height)
		}
	}
}

func TestBuildChainPatchesNotarizations(t *testing.T) {
	params := &chaincfg.TestnetParams
	acc := NewChainAccumulator()

	prefix, err := BuildChain(params, "TESTBRANCH", nil, acc, 0, 2, false,
		testFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain(prefix): %+v", err)
	}

	blocks, err := BuildChain(params, "TESTBRANCH", prefix, acc, 2, 3, true,
		testFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain: %+v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("built %d blocks, want 3", len(blocks))
	}

	// Every built block's notarization commits to the block two positions
	// back, across the prefix boundary and within the new suffix.
	all := append(append([]*wire.MsgBlock{}, prefix...), blocks...)
	for height := 2; height < len(all); height++ {
		block := all[height]
		notaTx := block.Transactions[len(block.Transactions)-1]
		record, err := nota.Deserialize(notaTx.TxOut[len(notaTx.TxOut)-1].ScriptPubKey)
		if err != nil {
			t.Fatalf("height %d: notarization did not decode: %v", height, err)
		}
		if record.NotarizedHeight != uint32(height-2) {
			t.Errorf("height %d: notarized height %d, want %d", height, record.NotarizedHeight, height-2)
		}
		wantHash := all[height-2].BlockHash()
		if record.NotarizedBlockHash != wantHash {
			t.Errorf("height %d: notarized hash %s, want %s", height, record.NotarizedBlockHash, wantHash)
		}

		// The notarization spends the block's own funding transaction.
		tx1Hash := block.Transactions[1].TxHash()
		for i, txIn := range notaTx.TxIn {
			if txIn.PreviousOutpoint.TxID != tx1Hash {
				t.Errorf("height %d: notarization input %d spends %s, want funding tx %s",
					height, i, txIn.PreviousOutpoint.TxID, tx1Hash)
			}
		}
	}

	// Coinbase payloads carry the branch tag at the current height.
	for i, block := range blocks {
		height, extraData, err := wire.ParseCoinbaseScript(block.Transactions[0].TxIn[0].SignatureScript)
		if err != nil {
			t.Fatalf("block %d: ParseCoinbaseScript: %v", i, err)
		}
		if height != uint64(i+2) {
			t.Errorf("block %d: coinbase height %d, want %d", i, height, i+2)
		}
		if !bytes.HasSuffix(extraData, []byte("TESTBRANCH")) {
			t.Errorf("block %d: coinbase payload %x does not end with the branch tag", i, extraData)
		}
	}
}

func TestBuildChainKnownUTXOHints(t *testing.T) {
	params := &chaincfg.TestnetParams
	acc := NewChainAccumulator()

	prefix, err := BuildChain(params, "HINTS", nil, acc, 0, 2, false,
		testFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain(prefix): %+v", err)
	}

	var captured []KnownUTXO
	capturingFixup := func(params *chaincfg.Params, tx *wire.MsgTx, txIndex int,
		height uint64, parentTime *time.Time, acc *ChainAccumulator,
		checkSpend SpendPolicyFunc, knownUTXOs []KnownUTXO) (*wire.MsgTx, error) {

		if txIndex >= 2 && knownUTXOs != nil {
			captured = append([]KnownUTXO{}, knownUTXOs...)
		}
		return testFixup(params, tx, txIndex, height, parentTime, acc, checkSpend, knownUTXOs)
	}

	blocks, err := BuildChain(params, "HINTS", prefix, acc, 2, 1, true,
		capturingFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain: %+v", err)
	}

	notaTx := blocks[0].Transactions[len(blocks[0].Transactions)-1]
	if len(captured) != len(notaTx.TxIn) {
		t.Fatalf("captured %d hints for %d notarization inputs", len(captured), len(notaTx.TxIn))
	}

	tx1 := blocks[0].Transactions[1]
	tx1Hash := tx1.TxHash()
	for i, hint := range captured {
		if hint.Outpoint.TxID != tx1Hash {
			t.Errorf("hint %d points at %s, want funding tx %s", i, hint.Outpoint.TxID, tx1Hash)
		}
		fundingOut := tx1.TxOut[hint.Outpoint.Index]
		if hint.UTXO.Entry.Amount() != fundingOut.Value {
			t.Errorf("hint %d amount %d, want %d", i, hint.UTXO.Entry.Amount(), fundingOut.Value)
		}
		if !bytes.Equal(hint.UTXO.Entry.ScriptPubKey(), fundingOut.ScriptPubKey) {
			t.Errorf("hint %d locking script does not match the funding output", i)
		}
		if hint.UTXO.Entry.BlockHeight() != 2 {
			t.Errorf("hint %d recorded at height %d, want 2", i, hint.UTXO.Entry.BlockHeight())
		}
		if hint.UTXO.Entry.IsCoinbase() {
			t.Errorf("hint %d marked as coinbase", i)
		}
		if hint.UTXO.TxIndex != 1 {
			t.Errorf("hint %d transaction index %d, want 1", i, hint.UTXO.TxIndex)
		}
	}
}

func TestBuildChainDropsRejectedTransactions(t *testing.T) {
	params := &chaincfg.TestnetParams
	acc := NewChainAccumulator()

	prefix, err := BuildChain(params, "DROP", nil, acc, 0, 2, false,
		testFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain(prefix): %+v", err)
	}

	rejectingFixup := func(params *chaincfg.Params, tx *wire.MsgTx, txIndex int,
		height uint64, parentTime *time.Time, acc *ChainAccumulator,
		checkSpend SpendPolicyFunc, knownUTXOs []KnownUTXO) (*wire.MsgTx, error) {

		if txIndex == 2 {
			return nil, errors.New("rejected by test policy")
		}
		return testFixup(params, tx, txIndex, height, parentTime, acc, checkSpend, knownUTXOs)
	}

	blocks, err := BuildChain(params, "DROP", prefix, acc, 2, 1, true,
		rejectingFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain: %+v", err)
	}

	// The notarization transaction at index 2 was dropped; the block keeps
	// its other transactions and the merkle root covers exactly those.
	block := blocks[0]
	if len(block.Transactions) != 2 {
		t.Fatalf("block has %d transactions, want 2", len(block.Transactions))
	}
	wantRoot := CalcMerkleRoot(block.Transactions)
	if block.Header.MerkleRoot != wantRoot {
		t.Errorf("merkle root %s, want %s over the surviving transactions",
			block.Header.MerkleRoot, wantRoot)
	}
}

func TestBuildChainDeterminism(t *testing.T) {
	params := &chaincfg.TestnetParams

	run := func() []byte {
		acc := NewChainAccumulator()
		prefix, err := BuildChain(params, "DET", nil, acc, 0, 2, false,
			testFixup, allowAllSpends)
		if err != nil {
			t.Fatalf("BuildChain(prefix): %+v", err)
		}
		blocks, err := BuildChain(params, "DET", prefix, acc, 2, 3, true,
			testFixup, allowAllSpends)
		if err != nil {
			t.Fatalf("BuildChain: %+v", err)
		}

		var buf bytes.Buffer
		for _, block := range append(prefix, blocks...) {
			err := block.Serialize(&buf)
			if err != nil {
				t.Fatalf("Serialize: %v", err)
			}
		}
		return buf.Bytes()
	}

	first := run()
	second := run()
	if !bytes.Equal(first, second) {
		t.Error("two replays of identical inputs produced different blocks")
	}
}

func TestBuildChainPrefixMismatch(t *testing.T) {
	params := &chaincfg.TestnetParams
	acc := NewChainAccumulator()

	_, err := BuildChain(params, "BAD", nil, acc, 5, 1, false,
		testFixup, allowAllSpends)
	if err == nil {
		t.Fatal("BuildChain accepted a prefix that does not cover the start height")
	}
}

func TestBuildChainLeavesPrefixUntouched(t *testing.T) {
	params := &chaincfg.TestnetParams
	acc := NewChainAccumulator()

	prefix, err := BuildChain(params, "FREEZE", nil, acc, 0, 2, false,
		testFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain(prefix): %+v", err)
	}

	var before bytes.Buffer
	for _, block := range prefix {
		if err := block.Serialize(&before); err != nil {
			t.Fatalf("Serialize: %v", err)
		}
	}

	_, err = BuildChain(params, "FREEZE", prefix, acc, 2, 2, true,
		testFixup, allowAllSpends)
	if err != nil {
		t.Fatalf("BuildChain: %+v", err)
	}

	var after bytes.Buffer
	for _, block := range prefix {
		if err := block.Serialize(&after); err != nil {
			t.Fatalf("Serialize: %v", err)
		}
	}
	if !bytes.Equal(before.Bytes(), after.Bytes()) {
		t.Error("replay modified the prefix blocks")
	}
}

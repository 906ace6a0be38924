// Package blockchain implements the chain replay engine: it rebuilds a
// suffix of a chain from deterministic template blocks, patching each
// block's coinbase, notarization record, merkle root and hash linkage so
// that the result is a structurally consistent continuation of the supplied
// prefix. General transaction rewriting is delegated to an externally
// supplied fixup function that advances the running chain state.
//
// The engine is purely sequential; it spawns no goroutines and performs no
// I/O, and a ChainAccumulator is owned by exactly one BuildChain call.
package blockchain

import (
	"time"

	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/chaincfg"
	"github.com/KomodoPlatform/zebra/nota"
	"github.com/KomodoPlatform/zebra/wire"
)

// BuildChain rebuilds count blocks on top of prefixBlocks, starting at
// startHeight, and returns only the newly built blocks in height order.
//
// Every new block starts from a deterministic template, with or without a
// notarization transaction per includeNotarization. For each height the
// engine rewrites the coinbase (genesis payload at height 0, otherwise the
// template payload extended with branchTag and rebuilt at the current
// height), patches a decodable back-notarization record on the last output
// of any transaction at index 2 or above to commit to the block two
// positions back, and hands every transaction to fixup together with the
// accumulator and, where a record was patched, known-UTXO hints mapping the
// transaction's inputs onto the block's own funding transaction at index 1.
// A transaction rejected by fixup is dropped from the block; template
// inconsistencies and broken linkage fail the whole replay.
//
// The prefix must cover exactly the heights below startHeight. Prefix
// blocks are read, never modified, and the returned blocks alias neither
// the prefix nor the templates.
func BuildChain(params *chaincfg.Params, branchTag string, prefixBlocks []*wire.MsgBlock,
	acc *ChainAccumulator, startHeight uint64, count uint32, includeNotarization bool,
	fixup TxFixupFunc, checkSpend SpendPolicyFunc) ([]*wire.MsgBlock, error) {

	if uint64(len(prefixBlocks)) != startHeight {
		return nil, errors.Errorf("prefix covers %d blocks but replay starts at height %d",
			len(prefixBlocks), startHeight)
	}

	// Lay out the full sequence, prefix plus templates, so that a block's
	// predecessors resolve by position regardless of which side of
	// startHeight they fall on.
	blocks := make([]*wire.MsgBlock, 0, startHeight+uint64(count))
	blocks = append(blocks, prefixBlocks...)
	for i := uint32(0); i < count; i++ {
		if includeNotarization {
			blocks = append(blocks, notaBlockTemplate())
		} else {
			blocks = append(blocks, plainBlockTemplate())
		}
	}

	for i := startHeight; i < uint64(len(blocks)); i++ {
		height := i
		block := blocks[i]

		var prev, prev2 *wire.MsgBlock
		if i > 0 {
			prev = blocks[i-1]
		}
		if i > 1 {
			prev2 = blocks[i-2]
		}

		var parentTime *time.Time
		if prev != nil {
			t := prev.Header.Timestamp
			parentTime = &t
		}

		var tx1Fixed *wire.MsgTx
		newTransactions := make([]*wire.MsgTx, 0, len(block.Transactions))
		for txIndex, blockTx := range block.Transactions {
			tx := blockTx.Copy()

			if txIndex == 0 {
				err := fixCoinbase(params, tx, height, branchTag)
				if err != nil {
					return nil, err
				}
			}

			var knownUTXOs []KnownUTXO
			if txIndex >= 2 && prev2 != nil {
				var err error
				knownUTXOs, err = fixNotarization(tx, height, prev2, tx1Fixed)
				if err != nil {
					return nil, err
				}
			}

			fixedTx, err := fixup(params, tx, txIndex, height, parentTime, acc,
				checkSpend, knownUTXOs)
			if err != nil {
				log.Warnf("Dropping transaction %d at height %d: %s", txIndex, height, err)
				continue
			}
			if txIndex == 1 {
				tx1Fixed = fixedTx
			}
			newTransactions = append(newTransactions, fixedTx)
		}

		block.Transactions = newTransactions
		block.Header.MerkleRoot = CalcMerkleRoot(newTransactions)

		if height == 0 {
			block.Header.PrevBlock = params.GenesisPrevBlock
		} else {
			if prev == nil {
				return nil, errors.Errorf("no predecessor block to link height %d", height)
			}
			block.Header.PrevBlock = prev.BlockHash()
			block.Header.Timestamp = prev.Header.Timestamp.Add(params.TargetTimePerBlock)
		}
	}

	return blocks[startHeight:], nil
}

// fixCoinbase rebuilds the coinbase input of the transaction at index 0. At
// height 0 the input carries the fixed genesis payload; at any other height
// it carries the template payload extended with the branch tag, re-encoded
// with the current height and a maximal sequence number. A transaction at
// index 0 that is not a coinbase marks a broken template and is fatal.
func fixCoinbase(params *chaincfg.Params, tx *wire.MsgTx, height uint64, branchTag string) error {
	var script []byte
	if height == 0 {
		script = params.GenesisCoinbaseScript
	} else {
		if !tx.IsCoinBase() {
			return errors.Errorf("template transaction 0 at height %d is not a coinbase", height)
		}
		_, extraData, err := wire.ParseCoinbaseScript(tx.TxIn[0].SignatureScript)
		if err != nil {
			return errors.Wrapf(err, "template coinbase script at height %d", height)
		}
		script = wire.StandardCoinbaseScript(height, append(extraData, branchTag...))
	}

	tx.TxIn = []*wire.TxIn{wire.NewCoinbaseTxIn(script)}
	return nil
}

// fixNotarization patches the back-notarization record on the transaction's
// last output, when one decodes there, to commit to the block two positions
// back: target height height-2, target hash the hash of prev2. It then
// synthesizes one known-UTXO hint per input, re-pointing each input at the
// output of the block's own funding transaction tx1Fixed under the input's
// original index: current height, immediately spendable, non-coinbase. A
// transaction without a decodable record is left untouched and gets no
// hints.
func fixNotarization(tx *wire.MsgTx, height uint64, prev2 *wire.MsgBlock,
	tx1Fixed *wire.MsgTx) ([]KnownUTXO, error) {

	if len(tx.TxOut) == 0 {
		return nil, nil
	}
	last := tx.TxOut[len(tx.TxOut)-1]
	record, err := nota.Deserialize(last.ScriptPubKey)
	if err != nil {
		return nil, nil
	}

	prev2Hash := prev2.BlockHash()
	record.Patch(uint32(height-2), &prev2Hash)
	last.ScriptPubKey = record.Serialize()

	if tx1Fixed == nil {
		return nil, errors.Errorf("notarization at height %d has no funding transaction to spend", height)
	}

	tx1Hash := tx1Fixed.TxHash()
	knownUTXOs := make([]KnownUTXO, 0, len(tx.TxIn))
	for _, txIn := range tx.TxIn {
		index := txIn.PreviousOutpoint.Index
		if index >= uint32(len(tx1Fixed.TxOut)) {
			return nil, errors.Errorf("notarization input at height %d references funding output %d of %d",
				height, index, len(tx1Fixed.TxOut))
		}
		knownUTXOs = append(knownUTXOs, KnownUTXO{
			Outpoint: *wire.NewOutpoint(&tx1Hash, index),
			UTXO: OrderedUTXO{
				Entry:   NewUTXOEntry(tx1Fixed.TxOut[index], false, height),
				TxIndex: 1,
			},
		})
	}
	return knownUTXOs, nil
}

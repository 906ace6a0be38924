package blockchain

import (
	"time"

	"github.com/KomodoPlatform/zebra/chaincfg"
	"github.com/KomodoPlatform/zebra/wire"
)

// OrderedUTXO is a UTXOEntry together with the index of its creating
// transaction within its block. The index lets spend policies distinguish
// outputs of the funding transaction from outputs created later in the same
// block.
type OrderedUTXO struct {
	Entry   *UTXOEntry
	TxIndex int
}

// KnownUTXO is a precomputed spend candidate handed to the fixup function:
// the outpoint an input should be rewritten to spend, and the UTXO that
// outpoint refers to. Hints let the replay engine pin a notarization
// transaction's inputs to its block's own funding outputs instead of
// letting the fixup function pick arbitrary unspent outputs.
type KnownUTXO struct {
	Outpoint wire.Outpoint
	UTXO     OrderedUTXO
}

// SpendRestriction classifies the constraint placed on spending a
// particular output. The replay engine threads it through to the spend
// policy unchanged and attaches no meaning to it.
type SpendRestriction int

const (
	// SpendAnyOutput places no constraint on the spending transaction.
	SpendAnyOutput SpendRestriction = iota

	// SpendShieldedOnly marks a spend that is only valid when the
	// spending transaction has exclusively shielded outputs, the rule
	// applied to coinbase spends.
	SpendShieldedOnly
)

// SpendPolicyFunc decides whether the given UTXO may be spent through the
// given outpoint under the given restriction. It is supplied by the caller
// and invoked by the fixup function, never by the replay engine itself.
type SpendPolicyFunc func(params *chaincfg.Params, outpoint wire.Outpoint,
	restriction SpendRestriction, utxo *OrderedUTXO) error

// TxFixupFunc rewrites one transaction during replay. It receives the
// transaction after the engine's local coinbase and notarization patches,
// the transaction's index within its block, the block height, the parent
// block's timestamp (nil at height 0), the running accumulator which it is
// expected to advance, the caller's spend policy, and, for transactions at
// index >= 2 whose notarization was patched, the known-UTXO hints.
//
// Returning a transaction keeps it in the block; returning an error drops
// it. A dropped transaction is not fatal to the replay.
type TxFixupFunc func(params *chaincfg.Params, tx *wire.MsgTx, txIndex int,
	height uint64, parentTime *time.Time, acc *ChainAccumulator,
	checkSpend SpendPolicyFunc, knownUTXOs []KnownUTXO) (*wire.MsgTx, error)

package blockchain

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/kaspanet/go-muhash"
	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/util/binaryserializer"
	"github.com/KomodoPlatform/zebra/util/chainhash"
	"github.com/KomodoPlatform/zebra/wire"
)

// txoFlags is a bitmask defining additional information and state for a
// transaction output in a UTXO set.
type txoFlags uint8

const (
	// tfCoinbase indicates that a txout was contained in a coinbase tx.
	tfCoinbase txoFlags = 1 << iota
)

// UTXOEntry houses details about an individual transaction output in a UTXO
// set such as whether or not it was contained in a coinbase tx, the height
// of the block that contains the tx, and the locking script it must satisfy.
type UTXOEntry struct {
	amount       uint64
	scriptPubKey []byte
	blockHeight  uint64
	packedFlags  txoFlags
}

// NewUTXOEntry creates a new UTXOEntry representing the given txOut.
func NewUTXOEntry(txOut *wire.TxOut, isCoinbase bool, blockHeight uint64) *UTXOEntry {
	entry := &UTXOEntry{
		amount:       txOut.Value,
		scriptPubKey: txOut.ScriptPubKey,
		blockHeight:  blockHeight,
	}
	if isCoinbase {
		entry.packedFlags |= tfCoinbase
	}
	return entry
}

// Amount returns the output's value.
func (entry *UTXOEntry) Amount() uint64 {
	return entry.amount
}

// ScriptPubKey returns the output's locking script.
func (entry *UTXOEntry) ScriptPubKey() []byte {
	return entry.scriptPubKey
}

// BlockHeight returns the height of the block containing the output.
func (entry *UTXOEntry) BlockHeight() uint64 {
	return entry.blockHeight
}

// IsCoinbase returns whether or not the output was contained in a coinbase
// transaction.
func (entry *UTXOEntry) IsCoinbase() bool {
	return entry.packedFlags&tfCoinbase == tfCoinbase
}

// TxOut converts the entry back into a wire transaction output.
func (entry *UTXOEntry) TxOut() *wire.TxOut {
	return wire.NewTxOut(entry.amount, entry.scriptPubKey)
}

// utxoCollection represents a set of UTXOs indexed by their outpoints.
type utxoCollection map[wire.Outpoint]*UTXOEntry

func (uc utxoCollection) String() string {
	utxoStrings := make([]string, len(uc))

	i := 0
	for outpoint, entry := range uc {
		utxoStrings[i] = fmt.Sprintf("(%s, %d) => %d", outpoint.TxID, outpoint.Index, entry.amount)
		i++
	}

	// Sort strings for determinism.
	sort.Strings(utxoStrings)

	return fmt.Sprintf("[ %s ]", strings.Join(utxoStrings, ", "))
}

func (uc utxoCollection) clone() utxoCollection {
	clone := make(utxoCollection, len(uc))
	for outpoint, entry := range uc {
		clone[outpoint] = entry
	}
	return clone
}

// UTXOSet is a set of unspent transaction outputs together with a running
// multiset commitment over its members. The commitment is maintained
// incrementally on every Add and Remove so that two sets holding the same
// members report the same commitment regardless of insertion order.
type UTXOSet struct {
	utxos    utxoCollection
	multiset *muhash.MuHash
}

// NewUTXOSet creates an empty UTXOSet.
func NewUTXOSet() *UTXOSet {
	return &UTXOSet{
		utxos:    utxoCollection{},
		multiset: muhash.NewMuHash(),
	}
}

// serializeUTXO writes the canonical multiset representation of a single
// UTXO: the outpoint, a header code packing the block height and coinbase
// flag, the amount and the locking script.
func serializeUTXO(w *bytes.Buffer, entry *UTXOEntry, outpoint *wire.Outpoint) error {
	_, err := w.Write(outpoint.TxID[:])
	if err != nil {
		return errors.WithStack(err)
	}
	err = binaryserializer.PutUint32(w, outpoint.Index)
	if err != nil {
		return err
	}

	headerCode := entry.blockHeight << 1
	if entry.IsCoinbase() {
		headerCode |= 0x01
	}
	err = binaryserializer.PutUint64(w, headerCode)
	if err != nil {
		return err
	}
	err = binaryserializer.PutUint64(w, entry.amount)
	if err != nil {
		return err
	}
	err = wire.WriteVarBytes(w, entry.scriptPubKey)
	if err != nil {
		return err
	}
	return nil
}

// Add inserts a UTXO into the set, replacing any entry already stored under
// the same outpoint, and folds it into the multiset commitment.
func (us *UTXOSet) Add(outpoint wire.Outpoint, entry *UTXOEntry) error {
	if existing, ok := us.utxos[outpoint]; ok {
		err := us.removeFromMultiset(existing, &outpoint)
		if err != nil {
			return err
		}
	}
	us.utxos[outpoint] = entry
	return us.addToMultiset(entry, &outpoint)
}

// Remove deletes the UTXO stored under the given outpoint and unfolds it
// from the multiset commitment. Removing an absent outpoint is an error.
func (us *UTXOSet) Remove(outpoint wire.Outpoint) error {
	entry, ok := us.utxos[outpoint]
	if !ok {
		return errors.Errorf("outpoint %s is not in the UTXO set", outpoint)
	}
	delete(us.utxos, outpoint)
	return us.removeFromMultiset(entry, &outpoint)
}

func (us *UTXOSet) addToMultiset(entry *UTXOEntry, outpoint *wire.Outpoint) error {
	w := &bytes.Buffer{}
	err := serializeUTXO(w, entry, outpoint)
	if err != nil {
		return err
	}
	us.multiset.Add(w.Bytes())
	return nil
}

func (us *UTXOSet) removeFromMultiset(entry *UTXOEntry, outpoint *wire.Outpoint) error {
	w := &bytes.Buffer{}
	err := serializeUTXO(w, entry, outpoint)
	if err != nil {
		return err
	}
	us.multiset.Remove(w.Bytes())
	return nil
}

// Get returns the entry stored under the given outpoint and a boolean
// indicating whether it is in the set.
func (us *UTXOSet) Get(outpoint wire.Outpoint) (*UTXOEntry, bool) {
	entry, ok := us.utxos[outpoint]
	return entry, ok
}

// Contains reports whether an entry is stored under the given outpoint.
func (us *UTXOSet) Contains(outpoint wire.Outpoint) bool {
	_, ok := us.utxos[outpoint]
	return ok
}

// Len returns the number of UTXOs in the set.
func (us *UTXOSet) Len() int {
	return len(us.utxos)
}

// Clone returns a copy of the set that may be mutated independently.
// Entries are shared; they are immutable once constructed.
func (us *UTXOSet) Clone() *UTXOSet {
	return &UTXOSet{
		utxos:    us.utxos.clone(),
		multiset: us.multiset.Clone(),
	}
}

// Outpoints returns the set's outpoints ordered by transaction ID and
// index, so that iteration over the set is deterministic.
func (us *UTXOSet) Outpoints() []wire.Outpoint {
	outpoints := make([]wire.Outpoint, 0, len(us.utxos))
	for outpoint := range us.utxos {
		outpoints = append(outpoints, outpoint)
	}
	sort.Slice(outpoints, func(i, j int) bool {
		cmp := bytes.Compare(outpoints[i].TxID[:], outpoints[j].TxID[:])
		if cmp != 0 {
			return cmp < 0
		}
		return outpoints[i].Index < outpoints[j].Index
	})
	return outpoints
}

// UTXOCommitment returns the multiset hash committing to the current
// members of the set.
func (us *UTXOSet) UTXOCommitment() chainhash.Hash {
	finalized := us.multiset.Finalize()
	return chainhash.Hash(finalized)
}

func (us *UTXOSet) String() string {
	return us.utxos.String()
}

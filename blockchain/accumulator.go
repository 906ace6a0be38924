package blockchain

// ChainAccumulator is the running chain state threaded through one replay:
// the value pool balances and the UTXO set as of the last processed
// transaction. An accumulator is exclusively owned by a single BuildChain
// call, so it requires no locking.
type ChainAccumulator struct {
	Pools ValuePools
	UTXOs *UTXOSet
}

// NewChainAccumulator creates an accumulator with zeroed pools and an empty
// UTXO set.
func NewChainAccumulator() *ChainAccumulator {
	return &ChainAccumulator{
		UTXOs: NewUTXOSet(),
	}
}

// Clone returns an accumulator that may be mutated independently.
func (acc *ChainAccumulator) Clone() *ChainAccumulator {
	return &ChainAccumulator{
		Pools: acc.Pools,
		UTXOs: acc.UTXOs.Clone(),
	}
}

package blockchain

import (
	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"
)

// ErrValuePoolUnderflow is returned when a debit would drive a value pool
// below zero. Pools track chain-wide balances and must stay non-negative.
var ErrValuePoolUnderflow = errors.New("value pool balance cannot go negative")

// Pool identifies one of the chain-wide value pools.
type Pool int

const (
	// PoolTransparent is the transparent value pool.
	PoolTransparent Pool = iota

	// PoolSprout is the sprout shielded value pool.
	PoolSprout

	// PoolSapling is the sapling shielded value pool.
	PoolSapling
)

func (p Pool) String() string {
	switch p {
	case PoolTransparent:
		return "transparent"
	case PoolSprout:
		return "sprout"
	case PoolSapling:
		return "sapling"
	}
	return "unknown"
}

// ValuePools holds the non-negative running balance of each chain-wide
// value pool.
type ValuePools struct {
	Transparent btcutil.Amount
	Sprout      btcutil.Amount
	Sapling     btcutil.Amount
}

func (vp *ValuePools) balance(pool Pool) *btcutil.Amount {
	switch pool {
	case PoolSprout:
		return &vp.Sprout
	case PoolSapling:
		return &vp.Sapling
	default:
		return &vp.Transparent
	}
}

// Credit adds the given amount to a pool.
func (vp *ValuePools) Credit(pool Pool, amount btcutil.Amount) {
	*vp.balance(pool) += amount
}

// Debit removes the given amount from a pool. Debiting more than the pool
// holds returns ErrValuePoolUnderflow and leaves the pool unchanged.
func (vp *ValuePools) Debit(pool Pool, amount btcutil.Amount) error {
	balance := vp.balance(pool)
	if amount > *balance {
		return errors.Wrapf(ErrValuePoolUnderflow, "%s pool holds %s, debit of %s", pool, *balance, amount)
	}
	*balance -= amount
	return nil
}

// Balance returns the current balance of a pool.
func (vp *ValuePools) Balance(pool Pool) btcutil.Amount {
	return *vp.balance(pool)
}

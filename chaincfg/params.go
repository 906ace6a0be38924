// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/util/chainhash"
)

// Params defines a network by its parameters. These parameters may be used
// by applications to differentiate networks as well as addresses and keys
// for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// GenesisPrevBlock is the previous-block hash sentinel placed in the
	// header of the block at height 0.
	GenesisPrevBlock chainhash.Hash

	// GenesisCoinbaseScript is the signature script carried by the
	// genesis coinbase input. A chain rebuild forces this payload onto
	// any block at height 0.
	GenesisCoinbaseScript []byte

	// TargetTimePerBlock is the desired amount of time between blocks.
	// A rebuilt block's timestamp is its parent's timestamp plus this
	// interval.
	TargetTimePerBlock time.Duration
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:                  "mainnet",
	GenesisPrevBlock:      genesisPrevBlock,
	GenesisCoinbaseScript: genesisCoinbaseScript,
	TargetTimePerBlock:    time.Second * 60,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:                  "testnet",
	GenesisPrevBlock:      genesisPrevBlock,
	GenesisCoinbaseScript: genesisCoinbaseScript,
	TargetTimePerBlock:    time.Second * 60,
}

var registeredNets = map[string]*Params{}

// ErrDuplicateNet describes an error where the parameters for a network
// could not be registered due to the network already being a standard
// network.
var ErrDuplicateNet = errors.New("duplicate network")

// Register registers the network parameters for a network. This may error
// with ErrDuplicateNet if the network is already registered.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Name] = params
	return nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
}

// mustRegister performs the same function as Register except it panics on
// error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

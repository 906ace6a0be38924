// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/KomodoPlatform/zebra/util/chainhash"
)

// genesisCoinbaseScript is the signature script of the coinbase transaction
// of the genesis block. It carries the original chain-launch commitment and
// is forced verbatim onto any block rebuilt at height 0.
var genesisCoinbaseScript = []byte{
	0x04, 0xff, 0xff, 0x07, 0x1f, 0x01, 0x04, 0x45, /* |.......E| */
	0x5a, 0x63, 0x61, 0x73, 0x68, 0x30, 0x62, 0x39, /* |Zcash0b9| */
	0x63, 0x34, 0x65, 0x65, 0x66, 0x38, 0x62, 0x37, /* |c4eef8b7| */
	0x63, 0x63, 0x34, 0x31, 0x37, 0x65, 0x65, 0x35, /* |cc417ee5| */
	0x30, 0x30, 0x31, 0x65, 0x33, 0x35, 0x30, 0x30, /* |001e3500| */
	0x39, 0x38, 0x34, 0x62, 0x36, 0x66, 0x65, 0x61, /* |984b6fea| */
	0x33, 0x35, 0x36, 0x38, 0x33, 0x61, 0x37, 0x63, /* |35683a7c| */
	0x61, 0x63, 0x31, 0x34, 0x31, 0x61, 0x30, 0x34, /* |ac141a04| */
	0x33, 0x63, 0x34, 0x32, 0x30, 0x36, 0x34, 0x38, /* |3c420648| */
	0x33, 0x35, 0x64, 0x33, 0x34,                   /* |35d34|   */
}

// genesisPrevBlock is the previous-block hash sentinel carried by the genesis
// block header: there is no block before genesis, so it is all zeroes.
var genesisPrevBlock = chainhash.ZeroHash

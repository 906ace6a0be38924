// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"
)

// Script opcodes used by this package.
const (
	OpData33   = 0x21 // push the next 33 bytes
	OpData65   = 0x41 // push the next 65 bytes
	OpCheckSig = 0xac
)

// Serialized public key lengths recognized in canonical pay-to-pubkey
// scripts.
const (
	compressedPubKeyLen   = 33
	uncompressedPubKeyLen = 65
)

// ErrUnsupportedPubKey indicates that a public key handed to a script
// builder is neither a 33-byte compressed key nor a 65-byte uncompressed
// key.
var ErrUnsupportedPubKey = errors.New("unsupported public key length")

// ExtractPubKeyFromP2PK returns the serialized public key of a canonical
// pay-to-pubkey script. The only accepted forms are a single push of a
// 33-byte or 65-byte key followed immediately by OP_CHECKSIG. Any other
// script shape returns false.
func ExtractPubKeyFromP2PK(script []byte) ([]byte, bool) {
	if len(script) == compressedPubKeyLen+2 &&
		script[0] == OpData33 &&
		script[compressedPubKeyLen+1] == OpCheckSig {

		return script[1 : compressedPubKeyLen+1], true
	}

	if len(script) == uncompressedPubKeyLen+2 &&
		script[0] == OpData65 &&
		script[uncompressedPubKeyLen+1] == OpCheckSig {

		return script[1 : uncompressedPubKeyLen+1], true
	}

	return nil, false
}

// PayToPubKeyScript creates a new script to pay a transaction output to the
// provided serialized public key.
func PayToPubKeyScript(serializedPubKey []byte) ([]byte, error) {
	var pushOp byte
	switch len(serializedPubKey) {
	case compressedPubKeyLen:
		pushOp = OpData33
	case uncompressedPubKeyLen:
		pushOp = OpData65
	default:
		return nil, errors.Wrapf(ErrUnsupportedPubKey, "got %d bytes", len(serializedPubKey))
	}

	script := make([]byte, 0, len(serializedPubKey)+2)
	script = append(script, pushOp)
	script = append(script, serializedPubKey...)
	script = append(script, OpCheckSig)
	return script, nil
}

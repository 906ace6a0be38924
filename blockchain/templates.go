package blockchain

import (
	"encoding/hex"
	"time"

	"github.com/KomodoPlatform/zebra/nota"
	"github.com/KomodoPlatform/zebra/util/chainhash"
	"github.com/KomodoPlatform/zebra/wire"
)

// Template blocks are the raw material of a replay: deterministic,
// structurally valid blocks whose coinbase, notarization record, merkle
// root and hash linkage are all placeholders that BuildChain rewrites per
// height. One template carries a notarization transaction, the other does
// not.

const (
	templateBlockVersion = 4
	templateBits         = 0x200f0f0f

	// templateReward is the coinbase output value of the templates.
	templateReward = 3 * 100000000

	// fundingOutputValue is the value of each funding output that a
	// notarization transaction spends.
	fundingOutputValue = 10000
)

// templateTime is the fixed header timestamp both templates carry. Replay
// overwrites it for every height above zero.
var templateTime = time.Unix(1619000000, 0)

// fromHex converts the passed hex string into bytes and will panic if there
// is an error. This is only provided for the hard-coded template values
// below, so it will only (and must only) be called with hard-coded values.
func fromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

func fromHexHash(s string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic("invalid hash hex in source file: " + s)
	}
	return hash
}

var (
	// templateMinerScript receives the coinbase reward.
	templateMinerScript = fromHex("2103b7621b44118017a16043f19b30cc8a4cfe068ac4e42417bae16ba460c80f3828ac")

	// templateFundingScript locks the funding outputs spent by the
	// notarization transaction.
	templateFundingScript = fromHex("2102ebfc784a4ba768aad88d44d1045d240d47b26e248cafaf1c5169a42d7a61d344ac")

	// templateFundingSource is the placeholder outpoint transaction the
	// funding transaction claims to spend. The fixup function is expected
	// to rewrite it against the live UTXO set.
	templateFundingSource = fromHexHash("79a9ed1a08d43e81d410a5a0a46b2280b2c17b7455f29a2d2798e5da2e7ffc49")

	// templateNotaSource is the placeholder outpoint transaction of the
	// notarization inputs. BuildChain replaces these inputs with hints
	// pointing at the block's own funding transaction.
	templateNotaSource = fromHexHash("51f9c39938ed9ef3da43c26e42d9e057d0c8b68dd449c284d0ef163e85490b51")

	// templateNotaTail holds the placeholder record's opaque trailing
	// fields: a miner-opt-in marker and the chain symbol.
	templateNotaTail = fromHex("014b4d4400")
)

// coinbaseTemplateTx builds the template coinbase transaction. Its payload
// and height are placeholders rebuilt by the coinbase fixup.
func coinbaseTemplateTx() *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewCoinbaseTxIn(wire.StandardCoinbaseScript(1, []byte{0x00})))
	tx.AddTxOut(wire.NewTxOut(templateReward, templateMinerScript))
	return tx
}

// fundingTemplateTx builds the template funding transaction: the source of
// the outputs a notarization transaction in the same block spends. It
// carries three outputs so hinted input indexes 0 through 2 all resolve.
func fundingTemplateTx() *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutpoint(templateFundingSource, 0), nil))
	for i := 0; i < 3; i++ {
		tx.AddTxOut(wire.NewTxOut(fundingOutputValue, templateFundingScript))
	}
	return tx
}

// notaTemplateTx builds the template notarization transaction. Its last
// output embeds a placeholder back-notarization record that BuildChain
// patches per height; its inputs reference placeholder outpoints whose
// indexes select the funding transaction outputs to spend.
func notaTemplateTx() *wire.MsgTx {
	record := &nota.BackNotarizationData{Tail: templateNotaTail}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutpoint(templateNotaSource, 0), nil))
	tx.AddTxIn(wire.NewTxIn(wire.NewOutpoint(templateNotaSource, 1), nil))
	tx.AddTxOut(wire.NewTxOut(fundingOutputValue, templateFundingScript))
	tx.AddTxOut(wire.NewTxOut(0, record.Serialize()))
	return tx
}

func templateHeader() *wire.BlockHeader {
	return &wire.BlockHeader{
		Version:   templateBlockVersion,
		Timestamp: templateTime,
		Bits:      templateBits,
	}
}

// plainBlockTemplate returns a fresh copy of the template block without a
// notarization transaction.
func plainBlockTemplate() *wire.MsgBlock {
	block := wire.NewMsgBlock(templateHeader())
	block.AddTransaction(coinbaseTemplateTx())
	block.AddTransaction(fundingTemplateTx())
	return block
}

// notaBlockTemplate returns a fresh copy of the template block carrying a
// notarization transaction.
func notaBlockTemplate() *wire.MsgBlock {
	block := plainBlockTemplate()
	block.AddTransaction(notaTemplateTx())
	return block
}

package notary

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/txscript"
	"github.com/KomodoPlatform/zebra/wire"
)

// artikEUPubKeyHex is elected in seasons 0 and 1 only, at roster position 4
// of season 0.
const artikEUPubKeyHex = "03f54b2c24f82632e3cdebe4568ba0acf487a80f8a89779173cdb78f74514847ce"

func mustParsePubKey(t *testing.T, pubKeyHex string) *btcec.PublicKey {
	t.Helper()
	keyBytes, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		t.Fatalf("DecodeString(%s): %v", pubKeyHex, err)
	}
	pubKey, err := btcec.ParsePubKey(keyBytes)
	if err != nil {
		t.Fatalf("ParsePubKey(%s): %v", pubKeyHex, err)
	}
	return pubKey
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := New()
	if err != nil {
		t.Fatalf("New: %+v", err)
	}
	return reg
}

func TestNewDecodesAllSeasons(t *testing.T) {
	reg := newTestRegistry(t)

	if len(reg.seasons) != NumSeasons {
		t.Fatalf("decoded %d seasons, want %d", len(reg.seasons), NumSeasons)
	}
	for i, season := range reg.seasons {
		if season.Index != i {
			t.Errorf("season %d carries index %d", i, season.Index)
		}
		if len(season.Notaries) != NumNotaries {
			t.Errorf("season %d has %d notaries, want %d", i, len(season.Notaries), NumNotaries)
		}
	}
}

func TestSeasonForHeight(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		height    uint64
		wantIndex int
	}{
		{height: 0, wantIndex: 0},
		{height: 813999, wantIndex: 0},
		{height: 814000, wantIndex: 0},
		{height: 814001, wantIndex: 1},
		{height: 1444000, wantIndex: 1},
		{height: 1444001, wantIndex: 2},
		{height: 1670000, wantIndex: 2},
		{height: 1670001, wantIndex: 3},
		{height: 1922001, wantIndex: 4},
		{height: 2437301, wantIndex: 5},
		{height: 2963331, wantIndex: 6},
		{height: 7113400, wantIndex: 6},
	}
	for _, test := range tests {
		season, err := reg.SeasonForHeight(test.height)
		if err != nil {
			t.Errorf("SeasonForHeight(%d): unexpected error: %v", test.height, err)
			continue
		}
		if season.Index != test.wantIndex {
			t.Errorf("SeasonForHeight(%d) = season %d, want %d", test.height, season.Index, test.wantIndex)
		}
	}

	_, err := reg.SeasonForHeight(7113401)
	if !errors.Is(err, ErrNoSeasonForHeight) {
		t.Errorf("SeasonForHeight(7113401): got %v, want ErrNoSeasonForHeight", err)
	}
}

func TestSeasonForTimestamp(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		timestamp uint32
		wantIndex int
	}{
		{timestamp: 0, wantIndex: 0},
		{timestamp: 1525132799, wantIndex: 0},
		{timestamp: 1525132800, wantIndex: 0},
		{timestamp: 1525132801, wantIndex: 1},
		{timestamp: 1563148801, wantIndex: 2},
		{timestamp: 1576840001, wantIndex: 3},
		{timestamp: 1592146801, wantIndex: 4},
		{timestamp: 1623682801, wantIndex: 5},
		{timestamp: 1656077854, wantIndex: 6},
		{timestamp: 1751328000, wantIndex: 6},
	}
	for _, test := range tests {
		season, err := reg.SeasonForTimestamp(test.timestamp)
		if err != nil {
			t.Errorf("SeasonForTimestamp(%d): unexpected error: %v", test.timestamp, err)
			continue
		}
		if season.Index != test.wantIndex {
			t.Errorf("SeasonForTimestamp(%d) = season %d, want %d", test.timestamp, season.Index, test.wantIndex)
		}
	}

	_, err := reg.SeasonForTimestamp(1751328001)
	if !errors.Is(err, ErrNoSeasonForTimestamp) {
		t.Errorf("SeasonForTimestamp(1751328001): got %v, want ErrNoSeasonForTimestamp", err)
	}
}

func TestNotaryIDForHeight(t *testing.T) {
	reg := newTestRegistry(t)
	pubKey := mustParsePubKey(t, artikEUPubKeyHex)

	id, ok, err := reg.NotaryIDForHeight(813999, pubKey)
	if err != nil {
		t.Fatalf("NotaryIDForHeight(813999): %v", err)
	}
	if !ok {
		t.Fatal("NotaryIDForHeight(813999): expected roster membership")
	}
	if id != 4 {
		t.Errorf("NotaryIDForHeight(813999) = id %d, want 4", id)
	}

	// The same key is not elected past season 1.
	_, ok, err = reg.NotaryIDForHeight(2000000, pubKey)
	if err != nil {
		t.Fatalf("NotaryIDForHeight(2000000): %v", err)
	}
	if ok {
		t.Error("NotaryIDForHeight(2000000): key should not be in the season 4 roster")
	}

	_, _, err = reg.NotaryIDForHeight(8000000, pubKey)
	if !errors.Is(err, ErrNoSeasonForHeight) {
		t.Errorf("NotaryIDForHeight(8000000): got %v, want ErrNoSeasonForHeight", err)
	}
}

func TestNotaryIDForTimestamp(t *testing.T) {
	reg := newTestRegistry(t)
	pubKey := mustParsePubKey(t, artikEUPubKeyHex)

	id, ok, err := reg.NotaryIDForTimestamp(1525132799, pubKey)
	if err != nil {
		t.Fatalf("NotaryIDForTimestamp(1525132799): %v", err)
	}
	if !ok {
		t.Fatal("NotaryIDForTimestamp(1525132799): expected roster membership")
	}
	if reg.seasons[0].Notaries[id].Label != "artik_EU" {
		t.Errorf("id %d resolves to %s, want artik_EU", id, reg.seasons[0].Notaries[id].Label)
	}
}

func TestIsNotaryOutput(t *testing.T) {
	reg := newTestRegistry(t)
	pubKey := mustParsePubKey(t, artikEUPubKeyHex)

	script, err := txscript.PayToPubKeyScript(pubKey.SerializeCompressed())
	if err != nil {
		t.Fatalf("PayToPubKeyScript: %v", err)
	}

	ok, err := reg.IsNotaryOutput(813999, wire.NewTxOut(10000, script))
	if err != nil {
		t.Fatalf("IsNotaryOutput(813999): %v", err)
	}
	if !ok {
		t.Error("IsNotaryOutput(813999): expected a notary output")
	}

	// Same script against a season the key is not elected in.
	ok, err = reg.IsNotaryOutput(2000000, wire.NewTxOut(10000, script))
	if err != nil {
		t.Fatalf("IsNotaryOutput(2000000): %v", err)
	}
	if ok {
		t.Error("IsNotaryOutput(2000000): key is not elected in season 4")
	}

	// A script that is not pay-to-pubkey is never a notary output.
	ok, err = reg.IsNotaryOutput(813999, wire.NewTxOut(10000, []byte{0x6a}))
	if err != nil {
		t.Fatalf("IsNotaryOutput(non-P2PK): %v", err)
	}
	if ok {
		t.Error("IsNotaryOutput(non-P2PK): OP_RETURN script reported as notary output")
	}

	// A P2PK-shaped script whose key does not decode is not an error.
	badKeyScript := make([]byte, 35)
	badKeyScript[0] = txscript.OpData33
	badKeyScript[34] = txscript.OpCheckSig
	ok, err = reg.IsNotaryOutput(813999, wire.NewTxOut(10000, badKeyScript))
	if err != nil {
		t.Fatalf("IsNotaryOutput(bad key): %v", err)
	}
	if ok {
		t.Error("IsNotaryOutput(bad key): undecodable key reported as notary output")
	}

	// A height beyond the season table is a lookup error.
	_, err = reg.IsNotaryOutput(8000000, wire.NewTxOut(10000, script))
	if !errors.Is(err, ErrNoSeasonForHeight) {
		t.Errorf("IsNotaryOutput(8000000): got %v, want ErrNoSeasonForHeight", err)
	}
}

func TestHardforkHeights(t *testing.T) {
	reg := newTestRegistry(t)

	if got := reg.DecemberHardforkHeight(); got != 1670000 {
		t.Errorf("DecemberHardforkHeight = %d, want 1670000", got)
	}
	if got := reg.DecemberHardforkTimestamp(); got != 1576840000 {
		t.Errorf("DecemberHardforkTimestamp = %d, want 1576840000", got)
	}
	if got := reg.SeasonFourHardforkHeight(); got != 1922000 {
		t.Errorf("SeasonFourHardforkHeight = %d, want 1922000", got)
	}
	if got := reg.SeasonFiveHardforkHeight(); got != 2437300 {
		t.Errorf("SeasonFiveHardforkHeight = %d, want 2437300", got)
	}
	if got := reg.SeasonSixHardforkHeight(); got != 2963330 {
		t.Errorf("SeasonSixHardforkHeight = %d, want 2963330", got)
	}
	if got := reg.SeasonSixHardforkTimestamp(); got != 1656077853 {
		t.Errorf("SeasonSixHardforkTimestamp = %d, want 1656077853", got)
	}
}

func TestDefaultRegistryAccessors(t *testing.T) {
	pubKey := mustParsePubKey(t, artikEUPubKeyHex)

	season, err := SeasonForHeight(813999)
	if err != nil {
		t.Fatalf("SeasonForHeight: %v", err)
	}
	if season.Index != 0 {
		t.Errorf("SeasonForHeight(813999) = season %d, want 0", season.Index)
	}

	id, ok, err := NotaryIDForHeight(813999, pubKey)
	if err != nil {
		t.Fatalf("NotaryIDForHeight: %v", err)
	}
	if !ok || id != 4 {
		t.Errorf("NotaryIDForHeight(813999) = (%d, %t), want (4, true)", id, ok)
	}

	ok, err = IsNotaryPubKey(813999, pubKey)
	if err != nil {
		t.Fatalf("IsNotaryPubKey: %v", err)
	}
	if !ok {
		t.Error("IsNotaryPubKey(813999): expected roster membership")
	}
}

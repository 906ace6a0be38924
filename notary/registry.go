// Package notary resolves which season's elected notary roster is
// authoritative for a given block height or timestamp, and answers
// membership queries against that roster.
//
// The season table is compiled-in configuration. Heights partition the
// primary chain into seasons; timestamps partition the same season list
// independently for auxiliary chains. Within a season a notary's numeric id
// is its roster position; ids are not stable across seasons.
package notary

import (
	"encoding/hex"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/txscript"
	"github.com/KomodoPlatform/zebra/wire"
)

// Notary is a single elected notary identity: an operator label and the
// public key recognized for the season.
type Notary struct {
	Label  string
	PubKey *btcec.PublicKey
}

// Season is one election era: an ordinal index, the inclusive upper bounds
// of the era on the height and timestamp axes, and the fixed-size roster of
// elected notaries.
type Season struct {
	Index          int
	HeightBound    uint64
	TimestampBound uint32
	Notaries       []Notary
}

// NotaryID returns the roster position of the given public key within the
// season, or false when the key is not part of the roster.
func (s *Season) NotaryID(pubKey *btcec.PublicKey) (int, bool) {
	for id := range s.Notaries {
		if s.Notaries[id].PubKey.IsEqual(pubKey) {
			return id, true
		}
	}
	return 0, false
}

// Registry holds the decoded season table. It is immutable after New
// returns, so a single instance may be shared freely between goroutines
// without locking.
type Registry struct {
	seasons []Season
}

// New decodes the compiled-in season table into a Registry. It fails when
// any configured key is malformed or any roster has the wrong size; such a
// failure is a configuration error and must halt startup.
func New() (*Registry, error) {
	seasons := make([]Season, NumSeasons)
	for si := range notariesElected {
		roster := make([]Notary, 0, NumNotaries)
		for ni, source := range notariesElected[si] {
			keyBytes, err := hex.DecodeString(source.pubKeyHex)
			if err != nil {
				return nil, errors.Wrapf(err, "season %d notary %d (%s): invalid pubkey hex", si, ni, source.label)
			}
			pubKey, err := btcec.ParsePubKey(keyBytes)
			if err != nil {
				return nil, errors.Wrapf(err, "season %d notary %d (%s): invalid pubkey", si, ni, source.label)
			}
			roster = append(roster, Notary{Label: source.label, PubKey: pubKey})
		}
		if len(roster) != NumNotaries {
			return nil, errors.Errorf("season %d has %d notaries, want %d", si, len(roster), NumNotaries)
		}
		seasons[si] = Season{
			Index:          si,
			HeightBound:    seasonHeightBounds[si],
			TimestampBound: seasonTimestampBounds[si],
			Notaries:       roster,
		}
	}

	// The height and timestamp bounds must each be strictly increasing
	// for the per-axis interval lookups below to form a partition.
	for i := 1; i < NumSeasons; i++ {
		if seasonHeightBounds[i] <= seasonHeightBounds[i-1] {
			return nil, errors.Errorf("season height bounds not strictly increasing at season %d", i)
		}
		if seasonTimestampBounds[i] <= seasonTimestampBounds[i-1] {
			return nil, errors.Errorf("season timestamp bounds not strictly increasing at season %d", i)
		}
	}

	log.Debugf("Decoded %d notary seasons with %d keys each", NumSeasons, NumNotaries)
	return &Registry{seasons: seasons}, nil
}

// SeasonForHeight returns the season covering the given height on the
// primary chain. Season 0 covers every height at or below its bound; season
// i covers the interval (bound[i-1], bound[i]]. Heights beyond the last
// configured bound return ErrNoSeasonForHeight.
func (r *Registry) SeasonForHeight(height uint64) (*Season, error) {
	if height <= r.seasons[0].HeightBound {
		return &r.seasons[0], nil
	}
	for i := 1; i < len(r.seasons); i++ {
		if height <= r.seasons[i].HeightBound && height > r.seasons[i-1].HeightBound {
			return &r.seasons[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNoSeasonForHeight, "height %d", height)
}

// SeasonForTimestamp returns the season covering the given timestamp, used
// by auxiliary chains. The interval shape matches SeasonForHeight on the
// independent timestamp axis.
func (r *Registry) SeasonForTimestamp(timestamp uint32) (*Season, error) {
	if timestamp <= r.seasons[0].TimestampBound {
		return &r.seasons[0], nil
	}
	for i := 1; i < len(r.seasons); i++ {
		if timestamp <= r.seasons[i].TimestampBound && timestamp > r.seasons[i-1].TimestampBound {
			return &r.seasons[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNoSeasonForTimestamp, "timestamp %d", timestamp)
}

// NotaryIDForHeight resolves the season for the given height and returns
// the roster position of the public key within it. The boolean reports
// roster membership; the error reports a season lookup miss.
func (r *Registry) NotaryIDForHeight(height uint64, pubKey *btcec.PublicKey) (int, bool, error) {
	season, err := r.SeasonForHeight(height)
	if err != nil {
		return 0, false, err
	}
	id, ok := season.NotaryID(pubKey)
	return id, ok, nil
}

// NotaryIDForTimestamp resolves the season for the given timestamp and
// returns the roster position of the public key within it.
func (r *Registry) NotaryIDForTimestamp(timestamp uint32, pubKey *btcec.PublicKey) (int, bool, error) {
	season, err := r.SeasonForTimestamp(timestamp)
	if err != nil {
		return 0, false, err
	}
	id, ok := season.NotaryID(pubKey)
	return id, ok, nil
}

// IsNotaryPubKey reports whether the public key belongs to the notary
// roster of the season covering the given height.
func (r *Registry) IsNotaryPubKey(height uint64, pubKey *btcec.PublicKey) (bool, error) {
	_, ok, err := r.NotaryIDForHeight(height, pubKey)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// IsNotaryOutput reports whether the transaction output pays a notary of
// the season covering the given height. Only canonical pay-to-pubkey
// scripts qualify; a script of any other shape, an undecodable key, or a
// key absent from the roster all report false without an error. A season
// lookup miss is an error: every height handed to consensus validation is
// expected to resolve to exactly one season, so exhausting the table marks
// a configuration or programming failure rather than a runtime condition.
func (r *Registry) IsNotaryOutput(height uint64, txOut *wire.TxOut) (bool, error) {
	season, err := r.SeasonForHeight(height)
	if err != nil {
		return false, err
	}

	serialized, ok := txscript.ExtractPubKeyFromP2PK(txOut.ScriptPubKey)
	if !ok {
		return false, nil
	}
	pubKey, err := btcec.ParsePubKey(serialized)
	if err != nil {
		return false, nil
	}

	_, ok = season.NotaryID(pubKey)
	return ok, nil
}

// Hardfork activation accessors. Each fork activates at a season bound:
// the December 2019 fork at the season 3 bound, and the season 4 through 6
// election forks at their respective bounds. Validation code gates rule
// changes on these, on the height axis for the primary chain and on the
// timestamp axis for auxiliary chains.

// DecemberHardforkHeight returns the activation height of the December
// 2019 hardfork.
func (r *Registry) DecemberHardforkHeight() uint64 {
	return r.seasons[2].HeightBound
}

// DecemberHardforkTimestamp returns the activation timestamp of the
// December 2019 hardfork.
func (r *Registry) DecemberHardforkTimestamp() uint32 {
	return r.seasons[2].TimestampBound
}

// SeasonFourHardforkHeight returns the activation height of the season 4
// election hardfork.
func (r *Registry) SeasonFourHardforkHeight() uint64 {
	return r.seasons[3].HeightBound
}

// SeasonFourHardforkTimestamp returns the activation timestamp of the
// season 4 election hardfork.
func (r *Registry) SeasonFourHardforkTimestamp() uint32 {
	return r.seasons[3].TimestampBound
}

// SeasonFiveHardforkHeight returns the activation height of the season 5
// election hardfork.
func (r *Registry) SeasonFiveHardforkHeight() uint64 {
	return r.seasons[4].HeightBound
}

// SeasonFiveHardforkTimestamp returns the activation timestamp of the
// season 5 election hardfork.
func (r *Registry) SeasonFiveHardforkTimestamp() uint32 {
	return r.seasons[4].TimestampBound
}

// SeasonSixHardforkHeight returns the activation height of the season 6
// election hardfork.
func (r *Registry) SeasonSixHardforkHeight() uint64 {
	return r.seasons[5].HeightBound
}

// SeasonSixHardforkTimestamp returns the activation timestamp of the
// season 6 election hardfork.
func (r *Registry) SeasonSixHardforkTimestamp() uint32 {
	return r.seasons[5].TimestampBound
}

var (
	defaultRegistry *Registry
	defaultErr      error
	defaultOnce     sync.Once
)

// defaultInstance builds the process-wide Registry exactly once. A
// construction failure is remembered and surfaced as ErrNotInitialized on
// every subsequent use.
func defaultInstance() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = New()
		if defaultErr != nil {
			log.Errorf("Notary season table failed to decode: %+v", defaultErr)
		}
	})
	if defaultErr != nil {
		return nil, errors.Wrapf(ErrNotInitialized, "%s", defaultErr)
	}
	return defaultRegistry, nil
}

// SeasonForHeight resolves the season for a height against the process-wide
// registry.
func SeasonForHeight(height uint64) (*Season, error) {
	r, err := defaultInstance()
	if err != nil {
		return nil, err
	}
	return r.SeasonForHeight(height)
}

// SeasonForTimestamp resolves the season for a timestamp against the
// process-wide registry.
func SeasonForTimestamp(timestamp uint32) (*Season, error) {
	r, err := defaultInstance()
	if err != nil {
		return nil, err
	}
	return r.SeasonForTimestamp(timestamp)
}

// NotaryIDForHeight resolves a notary id for a height against the
// process-wide registry.
func NotaryIDForHeight(height uint64, pubKey *btcec.PublicKey) (int, bool, error) {
	r, err := defaultInstance()
	if err != nil {
		return 0, false, err
	}
	return r.NotaryIDForHeight(height, pubKey)
}

// NotaryIDForTimestamp resolves a notary id for a timestamp against the
// process-wide registry.
func NotaryIDForTimestamp(timestamp uint32, pubKey *btcec.PublicKey) (int, bool, error) {
	r, err := defaultInstance()
	if err != nil {
		return 0, false, err
	}
	return r.NotaryIDForTimestamp(timestamp, pubKey)
}

// IsNotaryOutput checks an output against the process-wide registry.
func IsNotaryOutput(height uint64, txOut *wire.TxOut) (bool, error) {
	r, err := defaultInstance()
	if err != nil {
		return false, err
	}
	return r.IsNotaryOutput(height, txOut)
}

// IsNotaryPubKey checks a public key against the process-wide registry.
func IsNotaryPubKey(height uint64, pubKey *btcec.PublicKey) (bool, error) {
	r, err := defaultInstance()
	if err != nil {
		return false, err
	}
	return r.IsNotaryPubKey(height, pubKey)
}

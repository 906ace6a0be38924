package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/logger"
	"github.com/KomodoPlatform/zebra/nota"
	"github.com/KomodoPlatform/zebra/notary"
	"github.com/KomodoPlatform/zebra/util/panics"
)

var log, _ = logger.Get(logger.SubsystemTags.NCTL)

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := parseConfig()
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error parsing command-line arguments: %s", err))
	}

	if cfg.Nota != "" {
		err := decodeNota(cfg.Nota)
		if err != nil {
			printErrorAndExit(fmt.Sprintf("error decoding notarization record: %s", err))
		}
		return
	}

	err = resolveSeason(cfg)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error resolving season: %s", err))
	}
}

func resolveSeason(cfg *configFlags) error {
	var season *notary.Season
	var err error
	switch {
	case cfg.Height != nil:
		season, err = notary.SeasonForHeight(*cfg.Height)
	case cfg.Timestamp != nil:
		season, err = notary.SeasonForTimestamp(*cfg.Timestamp)
	}
	if err != nil {
		return err
	}

	fmt.Printf("season: %d\n", season.Index)
	fmt.Printf("height bound: %d\n", season.HeightBound)
	fmt.Printf("timestamp bound: %d\n", season.TimestampBound)

	if cfg.PubKey == "" {
		return nil
	}

	keyBytes, err := hex.DecodeString(cfg.PubKey)
	if err != nil {
		return errors.Wrap(err, "invalid pubkey hex")
	}
	pubKey, err := btcec.ParsePubKey(keyBytes)
	if err != nil {
		return errors.Wrap(err, "invalid pubkey")
	}

	id, ok := season.NotaryID(pubKey)
	if !ok {
		fmt.Println("notary: not a member of this season's roster")
		return nil
	}
	fmt.Printf("notary id: %d\n", id)
	fmt.Printf("notary label: %s\n", season.Notaries[id].Label)
	return nil
}

func decodeNota(notaHex string) error {
	raw, err := hex.DecodeString(notaHex)
	if err != nil {
		return errors.Wrap(err, "invalid record hex")
	}
	record, err := nota.Deserialize(raw)
	if err != nil {
		return err
	}

	fmt.Printf("notarized height: %d\n", record.NotarizedHeight)
	fmt.Printf("notarized block hash: %s\n", record.NotarizedBlockHash)
	fmt.Printf("tail: %x\n", record.Tail)
	return nil
}

func printErrorAndExit(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(1)
}

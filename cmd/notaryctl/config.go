package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/KomodoPlatform/zebra/logger"
	"github.com/KomodoPlatform/zebra/version"
)

const defaultLogLevel = "info"

type configFlags struct {
	ShowVersion bool    `short:"V" long:"version" description:"Display version information and exit"`
	Height      *uint64 `long:"height" description:"Resolve the notary season for this block height"`
	Timestamp   *uint32 `long:"timestamp" description:"Resolve the notary season for this block timestamp"`
	PubKey      string  `long:"pubkey" description:"Hex-encoded public key to look up in the resolved season's roster"`
	Nota        string  `long:"nota" description:"Hex-encoded back-notarization record to decode"`
	LogFile     string  `long:"logfile" description:"Write log output to this file"`
	LogLevel    string  `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		LogLevel: defaultLogLevel,
	}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "notaryctl [OPTIONS]\n\nResolves notary seasons and identities, and decodes back-notarization records."
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		fmt.Println("notaryctl version", version.Version())
		os.Exit(0)
	}

	if cfg.Height == nil && cfg.Timestamp == nil && cfg.Nota == "" {
		return nil, errors.New("one of --height, --timestamp or --nota must be specified")
	}
	if cfg.PubKey != "" && cfg.Height == nil && cfg.Timestamp == nil {
		return nil, errors.New("--pubkey requires --height or --timestamp")
	}

	err = logger.InitLog(cfg.LogFile, logger.LevelInfo)
	if err != nil {
		return nil, err
	}
	err = logger.ParseAndSetLogLevels(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

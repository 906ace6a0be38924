package logger

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used by all subsystem loggers. By
// default nothing is written until a writer is added, e.g. via InitLog or
// AddLogWriter.
var BackendLog = NewBackend()

// subsystemTags is an enum-like struct of all the subsystem logger tags.
var subsystemTags = struct {
	NTRY,
	NOTA,
	CHAN,
	WIRE,
	NCTL,
	UTIL string
}{
	NTRY: "NTRY", // notary season registry
	NOTA: "NOTA", // notarization codec
	CHAN: "CHAN", // chain replay engine
	WIRE: "WIRE", // wire (de)serialization
	NCTL: "NCTL", // notaryctl command
	UTIL: "UTIL", // utilities
}

// SubsystemTags is the set of tags accepted by Get.
var SubsystemTags = subsystemTags

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]*Logger{}

// Get returns a logger of a specific sub system. A subsystem's logger is
// created on first use and shared afterwards.
func Get(tag string) (*Logger, error) {
	if logger, ok := subsystemLoggers[tag]; ok {
		return logger, nil
	}
	logger := BackendLog.Logger(tag)
	subsystemLoggers[tag] = logger
	return logger, nil
}

// InitLog attaches stdout and, when logFile is not empty, a rotated log file
// to the backend, and sets every subsystem logger to the given level.
// Filtering happens at the loggers, so per-subsystem levels set afterwards
// (e.g. via ParseAndSetLogLevels) take effect on both sinks.
func InitLog(logFile string, level Level) error {
	BackendLog.AddLogWriter(NopCloserWriter(os.Stdout), LevelTrace)
	if logFile != "" {
		err := BackendLog.AddLogFile(logFile, LevelTrace)
		if err != nil {
			return errors.Wrapf(err, "error adding log file %s as log rotator", logFile)
		}
	}
	SetLogLevels(level)
	return nil
}

// SetLogLevels sets the log level for all subsystem loggers.
func SetLogLevels(logLevel Level) {
	for _, logger := range subsystemLoggers {
		logger.SetLevel(logLevel)
	}
}

// SetLogLevel sets the logging level for the provided subsystem. An error is
// returned when the subsystem is unknown.
func SetLogLevel(subsystemID string, logLevel string) error {
	level, ok := LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("invalid log level %s", logLevel)
	}
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return errors.Errorf("unknown subsystem %s", subsystemID)
	}
	logger.SetLevel(level)
	return nil
}

// ParseAndSetLogLevels attempts to parse the specified debug level and set
// the levels accordingly. An appropriate error is returned if anything is
// invalid. The format is either a bare level ("debug") applied to every
// subsystem, or a comma-separated list of subsystem=level pairs.
func ParseAndSetLogLevels(logLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(logLevel, ",") && !strings.Contains(logLevel, "=") {
		level, ok := LevelFromString(logLevel)
		if !ok {
			return errors.Errorf("the specified debug level [%s] is invalid", logLevel)
		}
		SetLogLevels(level)
		return nil
	}

	for _, logLevelPair := range strings.Split(logLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified debug level contains an invalid subsystem/level pair [%s]", logLevelPair)
		}
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return errors.Errorf("the specified debug level has an invalid format [%s]", logLevelPair)
		}
		err := SetLogLevel(fields[0], fields[1])
		if err != nil {
			return err
		}
	}
	return nil
}

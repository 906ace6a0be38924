package notary

import "github.com/KomodoPlatform/zebra/logger"

var log, _ = logger.Get(logger.SubsystemTags.NTRY)

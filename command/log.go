package command

import (
	"github.com/go-i2p/logger"
)

// log provides the default logger instance for the command package.
var log = logger.GetGoI2PLogger()

package session

import (
	"github.com/go-i2p/logger"
)

// log provides the default logger instance for the session package.
var log = logger.GetGoI2PLogger()

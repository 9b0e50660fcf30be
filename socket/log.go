package socket

import (
	"github.com/go-i2p/logger"
)

// log provides the default logger instance for the socket package.
var log = logger.GetGoI2PLogger()

package logger

import (
	"os"

	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// L is the process-wide logger. Trees.PlayerBST reports mutations to it at
// debug level; the command raises the level with --debug.
var L = &logger.Logger{
	Out:   os.Stderr,
	Level: logger.InfoLevel,
	Hooks: make(logger.LevelHooks),
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
}

// SetDebug switches L between debug and info level.
func SetDebug(on bool) {
	if on {
		L.SetLevel(logger.DebugLevel)
	} else {
		L.SetLevel(logger.InfoLevel)
	}
}

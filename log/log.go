package log

import (
	"github.com/sirupsen/logrus"
)

// All Logs share one logger so SetDebug reaches every package's Log, even
// those created in package-level vars long before configuration runs.
var logger = func() *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true,
		DisableTimestamp:       true,
		DisableLevelTruncation: true}
	return log
}()

// SetDebug toggles debug level logging for all Logs returned by New,
// including Logs constructed before the call.
func SetDebug(on bool) {
	if on {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}

type Log struct {
	*logrus.Entry
}

func New(pkg string) Log {
	return Log{Entry: logger.WithField("pkg", pkg)}
}

package bst

import "github.com/sirupsen/logrus"

// Log is the default logger for trees created without WithLogger.
var Log = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()

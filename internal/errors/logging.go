package errors

import (
	"github.com/sirupsen/logrus"
)

// LogError logs an error with structured context from AppError, if present.
func LogError(logger *logrus.Logger, err error, message string, fields ...logrus.Fields) {
	entryFor(logger, err, fields...).Error(message)
}

// LogWarn logs a warning with structured context from AppError, if present.
func LogWarn(logger *logrus.Logger, err error, message string, fields ...logrus.Fields) {
	entryFor(logger, err, fields...).Warn(message)
}

func entryFor(logger *logrus.Logger, err error, fields ...logrus.Fields) *logrus.Entry {
	entry := logger.WithError(err)

	if appErr, ok := err.(*AppError); ok {
		entry = entry.WithField("error_code", appErr.Code)
		for k, v := range appErr.Context {
			entry = entry.WithField(k, v)
		}
	}

	for _, field := range fields {
		entry = entry.WithFields(field)
	}
	return entry
}

// Package log is the logging abstraction used by curtail components.
//
// The core writer only depends on the Logger interface so it can be
// embedded without pulling a logging backend along. A zerolog adapter is
// provided for the command line tool and a no-op logger for tests and
// library users that do not care about output:
//
//	logger := log.NewZerologAdapter(zerolog.New(os.Stderr))
//	w, err := curtail.Open(path, 16*size.KiB, curtail.WithLogger(logger))
package log

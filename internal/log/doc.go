// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// URL corpora collected by crawlers and proxy history are full of live
// session identifiers and tokens in query strings. Logging a URL must not
// copy those secrets into terminal scrollback or CI logs.
//
// # Security Features
//
// The SecureHandler automatically sanitizes sensitive information in log output:
//   - Attributes whose key names a secret (cookie, token, password, session)
//   - Secret values detected by pattern matching (JWT, bearer, AWS keys)
//   - Values of sensitive query parameters inside URL attributes, so
//     "http://a.com/?token=abc&id=1" is logged as
//     "http://a.com/?token=***REDACTED***&id=1"
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, log.LevelFor(verbose, silent))
//	logger.Debug("no usable host", "url", raw)
package log

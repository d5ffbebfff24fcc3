// Package problemfile implements the two on-disk encodings of a Problem: the
// canonical plain-text format used for interchange, and a structured YAML
// form used for debugging and alternate storage. The reader of the canonical
// format is strict: every section is mandatory and malformed lines fail
// instead of being defaulted.
package problemfile

import "errors"

// ErrMissingLine reports that a mandatory line of the canonical format was
// absent.
var ErrMissingLine = errors.New("missing line in problem file")

// ErrFormat reports a malformed token, count or length inside a line that
// was present.
var ErrFormat = errors.New("malformed problem file")

// ErrStructured is the single failure category of the structured codec.
var ErrStructured = errors.New("structured problem codec failure")

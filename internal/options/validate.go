// Package options holds validation shared by the functional options of the
// public packages.
package options

import "github.com/erraggy/oasdoc/oaserrors"

// ValidateSingleInputSource fails unless exactly one of sources is true.
// The messages name the options callers should use.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return &oaserrors.ConfigError{Option: "input", Message: noSourceMsg}
	case n > 1:
		return &oaserrors.ConfigError{Option: "input", Value: n, Message: multiSourceMsg}
	}
	return nil
}

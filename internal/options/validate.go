// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"

	"github.com/erraggy/swaggerdoc/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources maps each option name to whether it was set. The returned error is a
// *oaserrors.ConfigError naming every option that was set when more than one was.
func ValidateSingleInputSource(names []string, sources ...bool) error {
	var set []string
	for i, hasSource := range sources {
		if hasSource && i < len(names) {
			set = append(set, names[i])
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &oaserrors.ConfigError{
			Option:  "source",
			Message: fmt.Sprintf("must specify an input source (one of %v)", names),
		}
	default:
		return &oaserrors.ConfigError{
			Option:  "source",
			Value:   set,
			Message: "must specify exactly one input source",
		}
	}
}

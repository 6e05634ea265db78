/*
Package vercmp provides library-level wiring for consumers embedding the
version comparison packages.
*/
package vercmp

import (
	"github.com/verbound/vercmp/internal/log"
)

// SetLogger installs the logger implementation used internally by the
// library. The default is a no-op logger, so embedded use stays silent unless
// a consumer opts in.
func SetLogger(logger log.Logger) {
	log.Log = logger
}

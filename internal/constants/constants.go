// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Release is replaced at build time with
// -ldflags "-X github.com/chrissnell/uplook/internal/constants.Release=1.2.0"
var Release = "dev"

// Version holds the application version information
func Version() string {
	return Release + "-" + runtime.GOOS + "/" + runtime.GOARCH
}

// internal/version/version.go
package version

// Version is stamped by the release workflow; dev builds keep the default.
var Version = "0.3.0-dev"

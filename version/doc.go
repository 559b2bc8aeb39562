// Package version reports the knife build version.
//
// The version is used as the telemetry service version. It can be set at
// compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/knife/version.Version=1.0.0"
//
// When knife is consumed as a library and no version was injected, the
// module version recorded in the binary's build info is used instead.
package version

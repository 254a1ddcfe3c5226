// Package example shows the marker-based gating policy: the record's own
// extra_size field decides how much of its tail is present, independent of
// the physical buffer length.
package example

//go:generate go run github.com/alexhholmes/rawgen/cmd/rawgen --config targets.toml --out tail.go

// Package schema holds the build-time parameter tables.
//
// A table is produced from a schema source file by cmd/schemagen and is
// never extended at runtime. Defaults are scaled integers: round(value*100).
package schema

//go:generate go run ../../cmd/schemagen --in drive.conf --out drive_gen.go --package schema --var Drive

package migrations

import "embed"

// Files holds the golang-migrate up/down scripts compiled into the binary.
//
//go:embed *.sql
var Files embed.FS

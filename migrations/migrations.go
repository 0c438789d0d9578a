// Package migrations embeds the SQL schema migrations so both the server
// binary and the standalone migrate tool apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

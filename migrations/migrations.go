// Package migrations embeds the SQL schema migrations so the migration runner
// works regardless of the embedding application's working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

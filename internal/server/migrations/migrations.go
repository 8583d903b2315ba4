// Package migrations embeds the goose SQL migrations that create the
// labmaint schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

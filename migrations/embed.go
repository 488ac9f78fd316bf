// Package migrations embeds the account schema so goose can apply it on start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

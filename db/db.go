// Package db embeds the SQL migrations so that production builds of
// drugbankctl need no migrations directory on disk.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

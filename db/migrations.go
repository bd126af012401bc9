// Package db carries the SQL schema migrations compiled into the binary.
package db

import "embed"

// Migrations holds the ordered *.up.sql / *.down.sql files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

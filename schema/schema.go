// Package schema contains the Postgres migrations for the rights index.
package schema

import "embed"

//go:embed *.sql
var Migrations embed.FS

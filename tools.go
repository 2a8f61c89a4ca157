//go:build tools

package tools

import (
	_ "github.com/kyleconroy/sqlc/cmd/sqlc"
)

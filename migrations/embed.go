// Package migrations хранит SQL миграции схемы, встроенные в бинарник
package migrations

import "embed"

// FS встроенные файлы миграций goose
//
//go:embed *.sql
var FS embed.FS

// Package migrations - goose-миграции базы учёта оплат и бронирований.
package migrations

import "embed"

// FS - встроенные SQL-файлы; используется cmd/migrate и интеграционными тестами.
//
//go:embed *.sql
var FS embed.FS

// Package migrations содержит схему БД для каждого поддерживаемого диалекта.
package migrations

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed sqlite/*.sql postgres/*.sql mysql/*.sql
var files embed.FS

// Scripts возвращает up-миграции диалекта в порядке применения
func Scripts(dialect string) ([]string, error) {
	names, err := fs.Glob(files, dialect+"/*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		b, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, string(b))
	}
	return scripts, nil
}

package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Beginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migrate applies every *.up.sql file of fsys in lexical order inside one
// transaction. The statements are idempotent, so running it twice is harmless.
func Migrate(ctx context.Context, db Beginner, fsys fs.FS) ([]string, error) {
	files, err := upFiles(fsys)
	if err != nil {
		return nil, err
	}

	err = pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for _, file := range files {
			content, err := fs.ReadFile(fsys, file)
			if err != nil {
				return fmt.Errorf("read migration %s: %w", file, err)
			}
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("execute migration %s: %w", file, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func upFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

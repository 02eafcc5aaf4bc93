package database

import (
	"context"
	"fmt"
)

// moviesTable mirrors the field rules enforced by the request DTOs so rows
// written outside the API still hold the same invariants.
const moviesTable = `
	CREATE TABLE IF NOT EXISTS filmes (
		id      BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		titulo  TEXT        NOT NULL CHECK (length(btrim(titulo)) > 0),
		genero  VARCHAR(50) NOT NULL CHECK (length(btrim(genero)) > 0),
		duracao INTEGER     NOT NULL CHECK (duracao BETWEEN 70 AND 600)
	)
`

// EnsureSchema creates the filmes table when it does not exist yet.
func EnsureSchema(ctx context.Context, db PgxIface) error {
	if _, err := db.Exec(ctx, moviesTable); err != nil {
		return fmt.Errorf("ensure filmes table: %w", err)
	}
	return nil
}

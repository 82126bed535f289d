package infra

import (
	"context"

	"sponsorship/internal/sqlinline"
)

// StoreProbe answers the deep health check by listing the tables present in
// the public schema.
type StoreProbe struct {
	SQL SQLExecutor
}

func NewStoreProbe(sql SQLExecutor) *StoreProbe {
	return &StoreProbe{SQL: sql}
}

func (p *StoreProbe) Tables(ctx context.Context) ([]string, error) {
	rows, err := p.SQL.Query(ctx, sqlinline.QListPublicTables)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordFill(f Fill) error {
	_, err := j.db.Exec(`
		INSERT INTO fills
		(fill_id, symbol, side, units, price, executed_at, cash_after)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Symbol, f.Side.String(), f.Units, f.Price, f.Time, f.CashAfter,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

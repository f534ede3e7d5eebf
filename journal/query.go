package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rustyeddy/paperdesk/market"
)

// GetFill returns a single fill by ID.
func (j *SQLite) GetFill(fillID string) (Fill, error) {
	row := j.db.QueryRow(`
		SELECT fill_id, symbol, side, units, price, executed_at, cash_after
		FROM fills
		WHERE fill_id = ?`, fillID)

	f, err := scanFill(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Fill{}, fmt.Errorf("fill %q not found", fillID)
		}
		return Fill{}, err
	}
	return f, nil
}

// ListFills returns fills in execution order, optionally filtered by symbol.
// A limit of 0 means no limit.
func (j *SQLite) ListFills(symbol string, limit int) ([]Fill, error) {
	query := `
		SELECT fill_id, symbol, side, units, price, executed_at, cash_after
		FROM fills`
	args := []any{}
	if symbol != "" {
		query += ` WHERE symbol = ?`
		args = append(args, symbol)
	}
	query += ` ORDER BY executed_at ASC, fill_id ASC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Fill
	for rows.Next() {
		f, err := scanFill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFillsBetween returns fills executed within [start, end).
func (j *SQLite) ListFillsBetween(start, end time.Time) ([]Fill, error) {
	rows, err := j.db.Query(`
		SELECT fill_id, symbol, side, units, price, executed_at, cash_after
		FROM fills
		WHERE executed_at >= ? AND executed_at < ?
		ORDER BY executed_at ASC, fill_id ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Fill
	for rows.Next() {
		f, err := scanFill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFill(s scanner) (Fill, error) {
	var f Fill
	var side string
	if err := s.Scan(&f.ID, &f.Symbol, &side, &f.Units, &f.Price, &f.Time, &f.CashAfter); err != nil {
		return Fill{}, err
	}
	parsed, err := market.ParseSide(side)
	if err != nil {
		return Fill{}, err
	}
	f.Side = parsed
	return f, nil
}

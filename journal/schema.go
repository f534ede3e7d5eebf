package journal

const Schema = `
CREATE TABLE IF NOT EXISTS fills (
	fill_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	units REAL NOT NULL,
	price REAL NOT NULL,
	executed_at DATETIME NOT NULL,
	cash_after REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fills_executed_at ON fills(executed_at);
CREATE INDEX IF NOT EXISTS idx_fills_symbol ON fills(symbol);
`

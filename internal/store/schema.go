package store

// schemaVersionV1 is the current runs schema.
const schemaVersionV1 = 1

const schemaV1 = `
CREATE TABLE schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	label       TEXT NOT NULL DEFAULT '',
	corpus      TEXT NOT NULL DEFAULT '',
	ciphertext  TEXT NOT NULL,
	result_key  TEXT NOT NULL,
	plaintext   TEXT NOT NULL,
	score       REAL NOT NULL,
	iterations  INTEGER NOT NULL,
	seed        INTEGER NOT NULL DEFAULT 0,
	trajectory  TEXT NOT NULL DEFAULT '[]',
	created_at  TEXT NOT NULL
);

CREATE INDEX idx_runs_created_at ON runs(created_at);
`

package sqlite

var schema = []string{
	`
CREATE TABLE IF NOT EXISTS users (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    email    VARCHAR(100)  NOT NULL UNIQUE,
    password TEXT          NOT NULL,
    name     VARCHAR(1000) NOT NULL UNIQUE
)
`,
	`
CREATE TABLE IF NOT EXISTS tasks (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    INTEGER      NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    task       VARCHAR(250) NOT NULL,
    date       VARCHAR(200) NOT NULL,
    start_time VARCHAR(200),
    end_time   VARCHAR(200),
    completed  BOOLEAN      NOT NULL DEFAULT 0,
    details    TEXT,
    everyday   BOOLEAN      NOT NULL DEFAULT 0,
    all_day    BOOLEAN      NOT NULL DEFAULT 0
)
`,
	`
CREATE INDEX IF NOT EXISTS tasks_user_id_idx ON tasks (user_id)
`,
	`
CREATE TABLE IF NOT EXISTS sessions (
    id         TEXT PRIMARY KEY,
    user_id    INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    remember   BOOLEAN NOT NULL DEFAULT 0,
    expires_at INTEGER NOT NULL,
    created_at INTEGER NOT NULL
)
`,
}

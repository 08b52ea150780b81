package postgres

const (
	usersNameConstraint  = "users_name_key"
	usersEmailConstraint = "users_email_key"
)

var schema = []string{
	`
CREATE TABLE IF NOT EXISTS users (
    id       BIGSERIAL PRIMARY KEY,
    email    VARCHAR(100)  NOT NULL,
    password TEXT          NOT NULL,
    name     VARCHAR(1000) NOT NULL,
    CONSTRAINT users_email_key UNIQUE (email),
    CONSTRAINT users_name_key UNIQUE (name)
)
`,
	`
CREATE TABLE IF NOT EXISTS tasks (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT       NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    task       VARCHAR(250) NOT NULL,
    date       VARCHAR(200) NOT NULL,
    start_time VARCHAR(200),
    end_time   VARCHAR(200),
    completed  BOOLEAN      NOT NULL DEFAULT FALSE,
    details    TEXT,
    everyday   BOOLEAN      NOT NULL DEFAULT FALSE,
    all_day    BOOLEAN      NOT NULL DEFAULT FALSE
)
`,
	`
CREATE INDEX IF NOT EXISTS tasks_user_id_idx ON tasks (user_id)
`,
	`
CREATE TABLE IF NOT EXISTS sessions (
    id         UUID PRIMARY KEY,
    user_id    BIGINT      NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    remember   BOOLEAN     NOT NULL DEFAULT FALSE,
    expires_at TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
)
`,
}

package services_test

import (
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/services"
	"github.com/adanyl0v/go-tasks/internal/storage"
	"github.com/adanyl0v/go-tasks/internal/testutil"
)

// testHashParams keeps password hashing fast in tests.
var testHashParams = &argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

var testSigningKey = []byte("test-secret-key")

type fixture struct {
	storage storage.Storage
	auth    services.AuthService
	tasks   services.TaskService
}

func newFixture(t *testing.T, now func() time.Time) *fixture {
	t.Helper()

	logger := zerolog.Nop()
	st := testutil.NewTestStorage(t)
	sessions := services.NewSessionService(logger, st)
	return &fixture{
		storage: st,
		auth: services.NewAuthService(
			logger,
			st,
			sessions,
			testHashParams,
			"go-tasks-test",
			testSigningKey,
			time.Hour,
		),
		tasks: services.NewTaskService(logger, st, now),
	}
}

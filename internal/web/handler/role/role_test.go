package role

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/assignment"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/role"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/web/handler/handlertest"
)

func newTestApp(t *testing.T) (*fiber.App, *role.Registry) {
	t.Helper()

	registry, err := role.NewRegistry(assignment.NewMemory())
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})

	svc := &Service{}
	require.NoError(t, svc.Init(app, &config.Config{}, nil, registry))

	return app, registry
}

func TestListEmpty(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := handlertest.Do(t, app, http.MethodGet, Path, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestCreateAndList(t *testing.T) {
	app, registry := newTestApp(t)

	status, raw := handlertest.Do(t, app, http.MethodPost, Path,
		`{"roleName":"reporter","privileges":["select","Show View","select","bogus"],"description":"reads"}`)
	require.Equal(t, http.StatusOK, status, string(raw))

	created := handlertest.Decode[CreateResponse](t, raw)
	assert.True(t, created.Success)
	assert.Equal(t, Item{
		Name:        "reporter",
		Privileges:  []string{"SELECT", "SHOW VIEW"},
		Description: "reads",
	}, created.Role)

	assert.True(t, registry.Exists("reporter"))

	status, raw = handlertest.Do(t, app, http.MethodPost, Path,
		`{"roleName":"auditor","privileges":["event"]}`)
	require.Equal(t, http.StatusOK, status, string(raw))

	_, raw = handlertest.Do(t, app, http.MethodGet, Path, "")
	items := handlertest.Decode[[]Item](t, raw)

	require.Len(t, items, 2)
	assert.Equal(t, "auditor", items[0].Name)
	assert.Equal(t, "reporter", items[1].Name)
}

func TestCreateOverwrites(t *testing.T) {
	app, registry := newTestApp(t)

	handlertest.Do(t, app, http.MethodPost, Path, `{"roleName":"ops","privileges":["select"]}`)
	status, _ := handlertest.Do(t, app, http.MethodPost, Path, `{"roleName":"ops","privileges":["event","trigger"]}`)
	require.Equal(t, http.StatusOK, status)

	r, ok := registry.Get("ops")
	require.True(t, ok)
	assert.Equal(t, []string{"EVENT", "TRIGGER"}, []string{string(r.Privileges[0]), string(r.Privileges[1])})
	assert.Len(t, registry.ListCustom(), 1)
}

func TestCreateRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"privileges":["select"]}`},
		{name: "missing privileges", body: `{"roleName":"x"}`},
		{name: "empty privileges", body: `{"roleName":"x","privileges":[]}`},
		{name: "nothing valid", body: `{"roleName":"x","privileges":["bogus","GRANT OPTION"]}`},
		{name: "built-in name", body: `{"roleName":"developer","privileges":["select"]}`},
		{name: "inference label", body: `{"roleName":"unknown","privileges":["select"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, registry := newTestApp(t)

			status, raw := handlertest.Do(t, app, http.MethodPost, Path, tt.body)
			assert.Equal(t, http.StatusBadRequest, status, string(raw))
			assert.False(t, handlertest.Decode[handler.Response](t, raw).Success)
			assert.Empty(t, registry.ListCustom())
		})
	}
}

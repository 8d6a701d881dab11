// Package handlertest provides an in-memory account backend and helpers for
// handler tests.
package handlertest

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/apierror"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/mysql"
	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

// GrantCall records one call to Grant.
type GrantCall struct {
	Account    mysql.Account
	Privileges []privilege.Privilege
	Database   string
}

// Accounts is a fake MySQL account backend. Grants are kept as the text
// SHOW GRANTS would print.
type Accounts struct {
	mu       sync.Mutex
	hosts    map[string][]string
	grants   map[string][]string
	order    []string
	Granted  []GrantCall
	Password map[string]string

	// Err, when set, is returned as a database error by every call.
	Err error
}

// NewAccounts returns an empty fake backend.
func NewAccounts() *Accounts {
	return &Accounts{
		hosts:    make(map[string][]string),
		grants:   make(map[string][]string),
		Password: make(map[string]string),
	}
}

// Seed adds an account with the given raw grant lines.
func (a *Accounts) Seed(username, host string, grants ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.add(username, host)
	a.grants[mysql.Account{Username: username, Host: host}.String()] = append([]string(nil), grants...)
}

func (a *Accounts) add(username, host string) {
	if _, ok := a.hosts[username]; !ok {
		a.order = append(a.order, username)
	}

	a.hosts[username] = append(a.hosts[username], host)
}

func (a *Accounts) fail() error {
	if a.Err != nil {
		return apierror.Database(a.Err)
	}

	return nil
}

// List implements handler.Accounts.
func (a *Accounts) List(_ context.Context) ([]mysql.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.fail(); err != nil {
		return nil, err
	}

	out := []mysql.Account{}
	for _, u := range a.order {
		for _, h := range a.hosts[u] {
			out = append(out, mysql.Account{Username: u, Host: h})
		}
	}

	return out, nil
}

// Exists implements handler.Accounts.
func (a *Accounts) Exists(_ context.Context, username string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.fail(); err != nil {
		return false, err
	}

	return len(a.hosts[username]) > 0, nil
}

// Grants implements handler.Accounts.
func (a *Accounts) Grants(_ context.Context, acc mysql.Account) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.fail(); err != nil {
		return nil, err
	}

	return append([]string(nil), a.grants[acc.String()]...), nil
}

// Create implements handler.Accounts.
func (a *Accounts) Create(_ context.Context, username, password string, privs []privilege.Privilege) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.fail(); err != nil {
		return err
	}

	acc := mysql.Account{Username: username, Host: mysql.DefaultHost}
	a.add(username, mysql.DefaultHost)
	a.Password[username] = password
	a.grants[acc.String()] = []string{
		"GRANT " + privilege.Join(privs) + " ON *.* TO " + acc.String(),
	}

	return nil
}

// Grant implements handler.Accounts.
func (a *Accounts) Grant(_ context.Context, acc mysql.Account, privs []privilege.Privilege, database string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.fail(); err != nil {
		return err
	}

	if acc.Host == "" {
		acc.Host = mysql.DefaultHost
	}

	a.Granted = append(a.Granted, GrantCall{Account: acc, Privileges: privs, Database: database})
	a.grants[acc.String()] = append(a.grants[acc.String()],
		"GRANT "+privilege.Join(privs)+" ON "+mysql.Target(database)+" TO "+acc.String())

	return nil
}

// Drop implements handler.Accounts.
func (a *Accounts) Drop(_ context.Context, username string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.fail(); err != nil {
		return 0, err
	}

	hosts, ok := a.hosts[username]
	if !ok {
		return 0, apierror.NotFound("user %q not found", username)
	}

	for _, h := range hosts {
		delete(a.grants, mysql.Account{Username: username, Host: h}.String())
	}

	delete(a.hosts, username)

	for i, u := range a.order {
		if u == username {
			a.order = append(a.order[:i], a.order[i+1:]...)

			break
		}
	}

	return len(hosts), nil
}

// Do sends a request with an optional JSON body to the app and returns the
// status and raw body.
func Do(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, raw
}

// Decode unmarshals raw into a value of type T.
func Decode[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))

	return v
}

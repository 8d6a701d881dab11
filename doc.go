// Package main provides the entry point for GoMySQL-Admin.
// It runs a fiber web server exposing a JSON API and a small web UI to list,
// create and drop MySQL accounts, grant privileges, define custom roles and
// pin a role to an account. The role of every account is inferred from the
// privileges MySQL reports for it.
package main

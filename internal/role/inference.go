package role

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

// Sources of an inferred role, used as metric label.
const (
	SourceOverride  = "override"
	SourceCustom    = "custom"
	SourceHeuristic = "heuristic"
)

// Infer returns the best fitting role label for username given the grant
// lines reported by SHOW GRANTS.
//
// An explicit override always wins. Otherwise the parsed privilege set is
// compared for exact equality against the custom roles in name order; a match
// is remembered as override. Failing that, the built-in heuristic runs on the
// raw grant text.
func (r *Registry) Infer(ctx context.Context, username string, grants []string) (string, error) {
	assigned, found, err := r.Assignment(ctx, username)
	if err != nil {
		return "", err
	}

	if found {
		observeInference(SourceOverride, assigned)
		return assigned, nil
	}

	if name, ok := r.matchCustom(privilege.ParseGrants(grants)); ok {
		if err := r.store.Set(ctx, username, name); err != nil {
			log.Warn().Err(err).Str("user", username).Str("role", name).Msg("can't remember inferred role")
		}

		observeInference(SourceCustom, name)

		return name, nil
	}

	label := Heuristic(grants)
	observeInference(SourceHeuristic, label)

	return label, nil
}

// matchCustom returns the first custom role, in name order, whose privilege
// set equals granted.
func (r *Registry) matchCustom(granted privilege.Set) (string, bool) {
	if len(granted) == 0 {
		return "", false
	}

	for _, role := range r.ListCustom() {
		if role.PrivilegeSet().Equal(granted) {
			return role.Name, true
		}
	}

	return "", false
}

// Heuristic classifies grant lines by substring tests on their lowercased,
// joined text. The rules are a priority list: the first match wins.
func Heuristic(grants []string) string {
	text := strings.ToLower(strings.Join(grants, ", "))

	has := func(subs ...string) bool {
		for _, s := range subs {
			if !strings.Contains(text, s) {
				return false
			}
		}

		return true
	}

	hasAny := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(text, s) {
				return true
			}
		}

		return false
	}

	switch {
	case has("all privileges"):
		return DatabaseAdmin
	case has("lock tables", "trigger", "event"):
		return Backup
	case has("insert", "update", "create"):
		return Developer
	case has("select", "show view") && !hasAny("insert", "update", "create"):
		return Analyst
	case has("select") && !hasAny("insert", "update", "create", "drop"):
		return ReadOnly
	default:
		return Unknown
	}
}

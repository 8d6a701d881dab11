package role

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/privilege"
)

func grantsFor(privs string) []string {
	return []string{
		"GRANT USAGE ON *.* TO `user1`@`%`",
		"GRANT " + privs + " ON `shop`.* TO `user1`@`%`",
	}
}

func TestInferHeuristic(t *testing.T) {
	testCases := []struct {
		name   string
		grants []string
		want   string
	}{
		{"analyst", grantsFor("SELECT, SHOW VIEW"), Analyst},
		{"database admin", []string{"GRANT ALL PRIVILEGES ON *.* TO `user1`@`%`"}, DatabaseAdmin},
		{"backup", grantsFor("SELECT, LOCK TABLES, SHOW VIEW, EVENT, TRIGGER"), Backup},
		{"read only", grantsFor("SELECT"), ReadOnly},
		{"drop alone", grantsFor("DROP"), Unknown},
		{"developer", grantsFor("SELECT, INSERT, UPDATE, DELETE, CREATE, DROP, INDEX, ALTER"), Developer},
		{"select with drop is not read only", grantsFor("SELECT, DROP"), Unknown},
		{"usage only", []string{"GRANT USAGE ON *.* TO `user1`@`%`"}, Unknown},
		{"no grants", nil, Unknown},
		{
			"backup beats developer",
			grantsFor("SELECT, INSERT, UPDATE, CREATE, LOCK TABLES, TRIGGER, EVENT"),
			Backup,
		},
		{"extra text tolerated", grantsFor("SELECT, SHOW VIEW, BACKUP_ADMIN"), Analyst},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg, store := newTestRegistry(t)

			got, err := reg.Infer(context.Background(), "user1", tc.grants)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Empty(t, store.data, "heuristic results are not remembered")
		})
	}
}

func TestInferOverrideWins(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(t)

	require.NoError(t, reg.Assign(ctx, "user1", Analyst))

	got, err := reg.Infer(ctx, "user1", []string{"GRANT ALL PRIVILEGES ON *.* TO `user1`@`%`"})
	require.NoError(t, err)
	assert.Equal(t, Analyst, got)
}

func TestInferCustomExactMatch(t *testing.T) {
	ctx := context.Background()
	reg, store := newTestRegistry(t)

	_, err := reg.Define("writer", []privilege.Privilege{privilege.Insert, privilege.Update}, "")
	require.NoError(t, err)

	got, err := reg.Infer(ctx, "user1", grantsFor("UPDATE, INSERT"))
	require.NoError(t, err)
	assert.Equal(t, "writer", got)
	assert.Equal(t, "writer", store.data["user1"], "custom match is remembered")

	// one extra privilege defeats the exact match
	got, err = reg.Infer(ctx, "user2", grantsFor("UPDATE, INSERT, DELETE"))
	require.NoError(t, err)
	assert.Equal(t, Unknown, got)
}

func TestInferCustomBeforeHeuristic(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Define("viewer", []privilege.Privilege{privilege.Select, privilege.ShowView}, "")
	require.NoError(t, err)

	got, err := reg.Infer(context.Background(), "user1", grantsFor("SELECT, SHOW VIEW"))
	require.NoError(t, err)
	assert.Equal(t, "viewer", got)
}

func TestInferCustomTieBreakIsLexicographic(t *testing.T) {
	for range 20 {
		reg, _ := newTestRegistry(t)

		for _, name := range []string{"zz_reader", "aa_reader", "mm_reader"} {
			_, err := reg.Define(name, []privilege.Privilege{privilege.Select}, "")
			require.NoError(t, err)
		}

		got, err := reg.Infer(context.Background(), "user1", grantsFor("SELECT"))
		require.NoError(t, err)
		assert.Equal(t, "aa_reader", got)
	}
}

func TestInferAfterClearDoesNotInheritOverride(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(t)

	require.NoError(t, reg.Assign(ctx, "user1", DatabaseAdmin))
	require.NoError(t, reg.ClearAssignment(ctx, "user1"))

	got, err := reg.Infer(ctx, "user1", grantsFor("SELECT"))
	require.NoError(t, err)
	assert.Equal(t, ReadOnly, got)
}

func TestInferConcurrent(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry(t)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			_, _ = reg.Define("custom", []privilege.Privilege{privilege.Select, privilege.Index}, "")
		}()

		go func() {
			defer wg.Done()

			_, err := reg.Infer(ctx, "user", grantsFor("SELECT"))
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
}

func TestHeuristic(t *testing.T) {
	assert.Equal(t, DatabaseAdmin, Heuristic([]string{"grant all privileges on *.* to x"}))
	assert.Equal(t, Unknown, Heuristic([]string{""}))
}

package privilege

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGrant(t *testing.T) {
	testCases := []struct {
		name  string
		grant string
		want  []Privilege
	}{
		{
			name:  "database level grant",
			grant: "GRANT SELECT, SHOW VIEW ON `shop`.* TO `bob`@`%`",
			want:  []Privilege{Select, ShowView},
		},
		{
			name:  "all privileges with grant option",
			grant: "GRANT ALL PRIVILEGES ON *.* TO `root`@`localhost` WITH GRANT OPTION",
			want:  []Privilege{AllPrivileges},
		},
		{
			name:  "usage only",
			grant: "GRANT USAGE ON *.* TO `bob`@`%`",
			want:  []Privilege{},
		},
		{
			name:  "lower case input",
			grant: "grant select, lock tables on *.* to 'bak'@'%'",
			want:  []Privilege{Select, LockTables},
		},
		{
			name:  "role grant has no ON clause",
			grant: "GRANT `app_read`@`%` TO `bob`@`%`",
			want:  nil,
		},
		{
			name:  "not a grant",
			grant: "garbage",
			want:  nil,
		},
		{
			name:  "dynamic privileges dropped",
			grant: "GRANT BACKUP_ADMIN, SELECT ON *.* TO `bak`@`%`",
			want:  []Privilege{Select},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseGrant(tc.grant))
		})
	}
}

func TestParseGrants(t *testing.T) {
	set := ParseGrants([]string{
		"GRANT USAGE ON *.* TO `bob`@`%`",
		"GRANT SELECT ON `a`.* TO `bob`@`%`",
		"GRANT SELECT, INSERT ON `b`.* TO `bob`@`%`",
	})

	assert.True(t, set.Equal(NewSet(Select, Insert)))
	assert.Len(t, set, 2)
}

func TestSetEqual(t *testing.T) {
	assert.True(t, NewSet(Select, ShowView).Equal(NewSet(ShowView, Select)))
	assert.False(t, NewSet(Select).Equal(NewSet(Select, ShowView)))
	assert.False(t, NewSet(Select, Insert).Equal(NewSet(Select, ShowView)))
	assert.True(t, NewSet().Equal(Set{}))
}

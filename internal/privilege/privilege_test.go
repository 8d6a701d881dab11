package privilege

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Privilege
	}{
		{
			name:  "known tokens are upper-cased",
			input: "select,insert",
			want:  []Privilege{Select, Insert},
		},
		{
			name:  "duplicates removed keeping first position",
			input: "SELECT, update, Select, UPDATE",
			want:  []Privilege{Select, Update},
		},
		{
			name:  "multi word tokens with extra whitespace",
			input: " lock   tables , show view",
			want:  []Privilege{LockTables, ShowView},
		},
		{
			name:  "unknown tokens dropped",
			input: "SELECT, SUPER, FILE; DROP TABLE users, DELETE",
			want:  []Privilege{Select, Delete},
		},
		{
			name:  "all unknown yields empty",
			input: "SUPER, PROCESS, GRANT OPTION",
			want:  []Privilege{},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Privilege{},
		},
		{
			name:  "all privileges",
			input: "all privileges",
			want:  []Privilege{AllPrivileges},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.input))
		})
	}
}

func TestSanitizeList(t *testing.T) {
	got := SanitizeList([]string{"trigger", "EVENT", "bogus", "Trigger"})
	assert.Equal(t, []Privilege{Trigger, Event}, got)
}

func TestSanitizeWholeVocabulary(t *testing.T) {
	in := make([]string, 0, len(vocabulary)*2)
	for _, p := range All() {
		in = append(in, string(p), string(p))
	}

	assert.Equal(t, All(), SanitizeList(in))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(ShowView))
	assert.False(t, IsValid("show view"))
	assert.False(t, IsValid("USAGE"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "SELECT, SHOW VIEW", Join([]Privilege{Select, ShowView}))
	assert.Empty(t, Join(nil))
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0] = "MUTATED"

	assert.Equal(t, Select, All()[0])
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostgreSQLOptions_convertToConnectionURL(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		options  PostgreSQLOptions
		expected string
	}{
		{
			desc: "default port is used when port is empty",
			options: PostgreSQLOptions{
				User: "busbooker", Password: "secret", Database: "busbooker", Host: "localhost", SSLMode: "disable",
			},
			expected: "user=busbooker password=secret dbname=busbooker host=localhost port=5432 sslmode=disable",
		},
		{
			desc: "custom port is kept",
			options: PostgreSQLOptions{
				User: "u", Password: "p", Database: "d", Host: "db", Port: "55432", SSLMode: "require",
			},
			expected: "user=u password=p dbname=d host=db port=55432 sslmode=require",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.options.convertToConnectionURL())
		})
	}
}

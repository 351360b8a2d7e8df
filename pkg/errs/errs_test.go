package errs_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/VladPetriv/busbooker/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func Test_IsExpected(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected bool
	}{
		{
			name:     "should return true, since the error was custom",
			args:     errs.New("custom error"),
			expected: true,
		},
		{
			name:     "should return true, since the custom error was wrapped",
			args:     fmt.Errorf("select seat: %w", errs.New("custom error")),
			expected: true,
		},
		{
			name:     "should return false, since the error wasn't custom",
			args:     fmt.Errorf("not custom error"),
			expected: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			actual := errs.IsExpected(tc.args)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func Test_StatusCode(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected int
	}{
		{
			name:     "default status of custom error is bad request",
			args:     errs.New("bad"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "custom status is kept through wrapping",
			args:     fmt.Errorf("wrap: %w", errs.NewWithStatus("missing", http.StatusNotFound)),
			expected: http.StatusNotFound,
		},
		{
			name:     "unexpected error maps to internal server error",
			args:     fmt.Errorf("boom"),
			expected: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, errs.StatusCode(tc.args))
		})
	}
}

func Test_Message(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected string
	}{
		{
			name:     "message of custom error",
			args:     errs.New("seat not found"),
			expected: "seat not found",
		},
		{
			name:     "wrapping text is not included",
			args:     fmt.Errorf("select seat: %w", fmt.Errorf("get seat: %w", errs.New("seat not found"))),
			expected: "seat not found",
		},
		{
			name:     "unexpected error has no message",
			args:     fmt.Errorf("boom"),
			expected: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, errs.Message(tc.args))
		})
	}
}

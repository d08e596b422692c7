package errs_test

import (
	"errors"
	"fmt"
	"moviecatalog/errs"
	"moviecatalog/movie"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovieSentinels(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		message string
	}{
		{name: "not found", err: movie.ErrNotFound, code: errs.ENOTFOUND, message: "movie not found"},
		{name: "malformed body", err: movie.ErrMalformedBody, code: errs.EINVALID, message: "malformed movie body"},
		{
			name:    "not found wrapped by an adapter",
			err:     fmt.Errorf("mongo: find movie: %w", movie.ErrNotFound),
			code:    errs.ENOTFOUND,
			message: "movie not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, errs.ErrorCode(tt.err))
			assert.Equal(t, tt.message, errs.ErrorMessage(tt.err))
		})
	}
}

func TestError_Error(t *testing.T) {
	err := errs.Errorf(errs.ENOTFOUND, "movie %s not found", "65f1c0ffee")

	assert.Equal(t, errs.ENOTFOUND, err.Code)
	assert.Equal(t, "movie 65f1c0ffee not found", err.Message)
	assert.Equal(t, "application error: code=not_found message=movie 65f1c0ffee not found", err.Error())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "invalid", err: errs.Errorf(errs.EINVALID, "bad title"), expected: errs.EINVALID},
		{name: "internal", err: errs.Errorf(errs.EINTERNAL, "store unavailable"), expected: errs.EINTERNAL},
		{name: "driver error is internal", err: errors.New("connection reset"), expected: errs.EINTERNAL},
		{
			name:     "joined application error",
			err:      errors.Join(errors.New("scan"), errs.Errorf(errs.EINVALID, "bad rating")),
			expected: errs.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "application error", err: errs.Errorf(errs.EINVALID, "bad title"), expected: "bad title"},
		{name: "driver error is hidden", err: errors.New("dial tcp 10.0.0.3:27017"), expected: "Internal error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorMessage(tt.err))
		})
	}
}

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityFromCode(t *testing.T) {
	tests := []struct {
		code int
		want Severity
	}{
		{code: 0, want: SeverityError},
		{code: 1, want: SeverityError},
		{code: 3, want: SeverityError},
		{code: 4, want: SeverityWarning},
		{code: 5, want: SeverityInfo},
		{code: 6, want: SeverityDebug},
		{code: 7, want: SeverityDebug},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityFromCode(tt.code), "code %d", tt.code)
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "STATE", CategoryState.String())
	assert.Equal(t, "CHANGE", CategoryChange.String())
	assert.Equal(t, "BACKEND", CategoryBackend.String())
	assert.Equal(t, "ERROR", CategoryError.String())
	assert.Equal(t, "UNKNOWN", Category(99).String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "ERROR", SeverityError.String())
	assert.Equal(t, "WARNING", SeverityWarning.String())
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "DEBUG", SeverityDebug.String())
	assert.Equal(t, "UNKNOWN", Severity(99).String())
}

package search

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistance(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		numeric bool
	}{
		{"", "10", true},
		{"   ", "10", true},
		{"25", "25", true},
		{" 7.5 ", "7.5", true},
		{"1e2", "100", true},
		{"far", "far", false},
		{"Inf", "Inf", false},
		{"NaN", "NaN", false},
	}
	for _, tt := range tests {
		d := ParseDistance(tt.raw, 10)
		assert.Equal(t, tt.want, d.String(), tt.raw)
		assert.Equal(t, tt.numeric, d.Numeric, tt.raw)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Criteria{Keyword: "jazz"}))
	require.NoError(t, Validate(Criteria{Keyword: " "}), "whitespace satisfies required")

	err := Validate(Criteria{Keyword: "", RawLocation: "Austin"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "keyword", verr.Field)
	assert.Equal(t, "Please fill out this field.", verr.Message)

	err = Validate(Criteria{Keyword: "jazz", RawLocation: strings.Repeat("x", 201)})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "location", verr.Field)
	assert.Contains(t, verr.Message, "200")
}

func TestLocationRequest(t *testing.T) {
	req := Criteria{RawLocation: "Austin", AutoDetect: true}.LocationRequest()
	assert.Equal(t, "Austin", req.RawLocation)
	assert.True(t, req.AutoDetect)
}

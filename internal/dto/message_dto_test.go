package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriState(t *testing.T) {
	tests := []struct {
		value       TriState
		valid       bool
		wantValue   bool
		wantPresent bool
	}{
		{TriStateEither, true, false, false},
		{TriStateTrue, true, true, true},
		{TriStateFalse, true, false, true},
		{TriState("yes"), false, false, false},
		{TriState(""), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.value.Valid())
			value, present := tt.value.Bool()
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantPresent, present)
		})
	}
}

func TestNewFindMessagesRequestDefaults(t *testing.T) {
	req := NewFindMessagesRequest()
	assert.Equal(t, TriStateEither, req.IsHuman)
	assert.Equal(t, TriStateTrue, req.IsValid)
	assert.Equal(t, 0, req.Offset)
	assert.Equal(t, 50, req.Limit)
	assert.Nil(t, req.OrderBy)
}

package store_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/donation_tracker/internal/core/store"
	"github.com/stretchr/testify/assert"
)

func TestLoadingStateJSON(t *testing.T) {
	tests := []struct {
		state store.LoadingState
		want  string
	}{
		{store.NotLoaded(), `{"status":"not_loaded"}`},
		{store.Loading(), `{"status":"loading"}`},
		{store.Loaded(), `{"status":"loaded"}`},
		{store.Failed("disk full"), `{"status":"error","message":"disk full"}`},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			got, err := json.Marshal(tt.state)
			assert.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMode(t *testing.T) {
	assert.False(t, store.AddMode.IsEdit())
	assert.Equal(t, "add", store.AddMode.String())

	m := store.EditMode(12)
	assert.True(t, m.IsEdit())
	assert.Equal(t, int64(12), m.ID())
	assert.Equal(t, "edit(12)", m.String())
}

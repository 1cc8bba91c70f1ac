package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	token := EncodeCursor(Cursor{Version: 7, Offset: 50})
	assert.NotEmpty(t, token, "Token should not be empty")

	c, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, Cursor{Version: 7, Offset: 50}, c)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%"},
		{"one field", EncodeMultiFieldToken("7")},
		{"bad version", EncodeMultiFieldToken("x", "1")},
		{"negative offset", EncodeMultiFieldToken("1", "-4")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestPage_WalksAllItems(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	first, next, err := Page(items, 3, "", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, first)
	require.NotEmpty(t, next)

	second, next, err := Page(items, 3, next, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, second)

	last, next, err := Page(items, 3, next, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, last)
	assert.Empty(t, next, "Last page should not carry a token")
}

func TestPage_NoLimitReturnsEverything(t *testing.T) {
	all, next, err := Page([]string{"a", "b"}, 1, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, all)
	assert.Empty(t, next)
}

func TestPage_RejectsTokenFromOlderSnapshot(t *testing.T) {
	token := EncodeCursor(Cursor{Version: 2, Offset: 1})

	_, _, err := Page([]int{1, 2, 3}, 3, token, 1)

	assert.ErrorIs(t, err, ErrStaleToken)
}

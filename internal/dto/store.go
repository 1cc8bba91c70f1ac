package dto

import "github.com/SscSPs/donation_tracker/internal/core/store"

// SearchRequest filters a store by text. Empty text restores the full list.
type SearchRequest struct {
	Text string `json:"text" binding:"max=255"`
}

// SnapshotPage is one page of a store snapshot. NextPageToken is empty on the last page.
type SnapshotPage[E any] struct {
	Entities      []E                `json:"entities"`
	LoadingState  store.LoadingState `json:"loadingState"`
	SearchText    string             `json:"searchText"`
	Version       uint64             `json:"version"`
	NextPageToken string             `json:"nextPageToken,omitempty"`
}

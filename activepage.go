package devhub

import (
	"context"
	"time"
)

// ActivePage is an externally-sourced page tracked by the registry.
// Records that drop out of a full sync are marked inactive, never deleted.
type ActivePage struct {
	ID         string     `json:"-"`
	ExternalID string     `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug,omitempty"`
	Category   string     `json:"category,omitempty"`
	SourceURL  string     `json:"sourceUrl,omitempty"`
	SelectedAt time.Time  `json:"selectedAt"`
	LastSynced *time.Time `json:"lastSynced,omitempty"`
	Active     bool       `json:"active"`
	UpdatedAt  time.Time  `json:"-"`
}

// ActivePageInput is one element of a whole-set sync submission.
type ActivePageInput struct {
	ExternalID string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug,omitempty"`
	Category   string `json:"category,omitempty"`
	SourceURL  string `json:"sourceUrl,omitempty"`

	// Active defaults to true when absent.
	Active *bool `json:"active,omitempty"`
}

// Validate returns an error if the input contains invalid fields.
func (in *ActivePageInput) Validate() error {
	if in.ExternalID == "" {
		return Errorf(EINVALID, "page id required")
	}
	if in.Title == "" {
		return Errorf(EINVALID, "page %q title required", in.ExternalID)
	}
	return nil
}

// IsActive returns the requested active flag, defaulting to true.
func (in *ActivePageInput) IsActive() bool {
	return in.Active == nil || *in.Active
}

// ActivePageService represents a service for managing the active-page registry.
type ActivePageService interface {
	// FindActivePages returns every stored page, newest selection first.
	FindActivePages(ctx context.Context) ([]*ActivePage, error)

	// LastUpdated returns the most recent modification time of the registry,
	// or the current time when the registry is empty.
	LastUpdated(ctx context.Context) (time.Time, error)

	// SyncActivePages upserts every input by external ID and marks all stored
	// pages absent from inputs as inactive, atomically. Returns the refreshed set.
	SyncActivePages(ctx context.Context, inputs []ActivePageInput) ([]*ActivePage, error)

	// DeleteActivePages permanently removes the pages with the given external
	// IDs and returns the remaining set.
	// Returns EINVALID if ids is empty.
	DeleteActivePages(ctx context.Context, ids []string) ([]*ActivePage, error)
}

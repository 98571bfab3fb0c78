package devhub_test

import (
	"testing"

	"github.com/fwojciec/devhub"
	"github.com/stretchr/testify/assert"
)

func TestImportedPage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    devhub.ImportedPage
		wantErr string
	}{
		{"valid", devhub.ImportedPage{Slug: "deploy", SourceURL: "https://notion.example.com/deploy"}, ""},
		{"missing slug", devhub.ImportedPage{SourceURL: "https://notion.example.com/deploy"}, "imported page slug required"},
		{"missing source", devhub.ImportedPage{Slug: "deploy"}, "imported page source URL required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(err))
			assert.Equal(t, tt.wantErr, devhub.ErrorMessage(err))
		})
	}
}

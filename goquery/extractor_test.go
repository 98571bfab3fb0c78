package goquery_test

import (
	"testing"

	"github.com/fwojciec/devhub"
	"github.com/fwojciec/devhub/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notionLike = `<!DOCTYPE html>
<html>
<head>
<title>Branching Strategy | Notion</title>
<meta property="og:title" content="Branching Strategy">
</head>
<body>
<div class="notion-topbar">Share</div>
<div class="notion-page-content">
<h2>Trunk based</h2>
<p>Short-lived feature branches merge into main daily.</p>
<script>track()</script>
</div>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns the selected element", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor(".notion-page-content").Extract(notionLike)

		require.NoError(t, err)
		assert.Equal(t, "Branching Strategy", result.Title)
		assert.Contains(t, result.ContentHTML, `<div class="notion-page-content">`)
		assert.Contains(t, result.ContentHTML, "Short-lived feature branches")
		assert.NotContains(t, result.ContentHTML, "notion-topbar")
		assert.NotContains(t, result.ContentHTML, "track()")
	})

	t.Run("falls back to the document title", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor("main").Extract(`<html><head><title> Docs </title></head><body><main>x</main></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Docs", result.Title)
	})

	t.Run("no match is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor("#missing").Extract(notionLike)

		assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(err))
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor("main").Extract("")

		assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(err))
	})
}

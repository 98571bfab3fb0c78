package fuzzy_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/devhub"
	"github.com/fwojciec/devhub/catalog"
	"github.com/fwojciec/devhub/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(items []devhub.SearchItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Path
	}
	return out
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	t.Run("short queries return nothing", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex(catalog.Items())

		for _, q := range []string{"", "j", " j ", "é"} {
			results := ix.Search(q, 10)
			assert.NotNil(t, results)
			assert.Empty(t, results, "query %q", q)
		}
	})

	t.Run("exact title ranks its entry first", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex(catalog.Items())

		for _, item := range catalog.Items() {
			results := ix.Search(item.Title, 1)
			require.Len(t, results, 1, "title %q", item.Title)
			assert.Equal(t, item.Path, results[0].Path, "title %q", item.Title)
		}
	})

	t.Run("title match outranks path match", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex([]devhub.SearchItem{
			{Title: "Runbook", Path: "/kubernetes/runbook", Content: "Incident steps", Category: "Ops"},
			{Title: "Kubernetes Guide", Path: "/ops/guide", Content: "Cluster setup", Category: "Ops"},
		})

		results := ix.Search("kubernetes", 10)

		assert.Equal(t, []string{"/ops/guide", "/kubernetes/runbook"}, paths(results))
	})

	t.Run("tolerates typos", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex(catalog.Items())

		results := ix.Search("Pricniples", 5)

		require.NotEmpty(t, results)
		assert.Equal(t, "/00-principles", results[0].Path)
	})

	t.Run("threshold zero requires exact substrings", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex(catalog.Items(), fuzzy.WithThreshold(0))

		assert.Empty(t, ix.Search("Pricniples", 5))
		assert.NotEmpty(t, ix.Search("Principles", 5))
	})

	t.Run("matches words in any order", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex(catalog.Items())

		results := ix.Search("java testing", 3)

		require.NotEmpty(t, results)
		assert.Equal(t, "/domains/api-integration/backend/java/testing", results[0].Path)
	})

	t.Run("ignores case and diacritics", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex([]devhub.SearchItem{
			{Title: "Café Setup", Path: "/cafe"},
			{Title: "Other", Path: "/other"},
		})

		assert.Equal(t, []string{"/cafe"}, paths(ix.Search("CAFE", 10)))
	})

	t.Run("equal scores keep catalog order", func(t *testing.T) {
		t.Parallel()

		items := []devhub.SearchItem{
			{Title: "Release Flow", Path: "/a"},
			{Title: "Release Flow", Path: "/b"},
			{Title: "Release Flow", Path: "/c"},
		}

		ix := fuzzy.NewIndex(items)
		assert.Equal(t, []string{"/a", "/b", "/c"}, paths(ix.Search("release", 10)))

		reversed := fuzzy.NewIndex([]devhub.SearchItem{items[2], items[1], items[0]})
		assert.Equal(t, []string{"/c", "/b", "/a"}, paths(reversed.Search("release", 10)))
	})

	t.Run("caps results at limit", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex(catalog.Items())

		assert.Len(t, ix.Search("java", 3), 3)
		assert.Len(t, ix.Search("java", 0), devhub.DefaultSearchLimit)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex(catalog.Items())

		assert.Empty(t, ix.Search("zzqqxxvv", 10))
	})

	t.Run("weights can silence a field", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndex([]devhub.SearchItem{
			{Title: "Runbook", Path: "/kubernetes/runbook"},
		}, fuzzy.WithWeights(fuzzy.Weights{Title: 1}))

		assert.Empty(t, ix.Search("kubernetes", 10))
	})
}

func TestIndex_ConcurrentSearch(t *testing.T) {
	t.Parallel()

	ix := fuzzy.NewIndex(catalog.Items())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results := ix.Search("security", 5)
			assert.NotEmpty(t, results)
		}()
	}
	wg.Wait()
}

func TestNewIndex_CopiesItems(t *testing.T) {
	t.Parallel()

	items := []devhub.SearchItem{{Title: "Release Flow", Path: "/a"}}
	ix := fuzzy.NewIndex(items)
	items[0].Title = "Changed"

	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, []string{"/a"}, paths(ix.Search("release", 10)))
}

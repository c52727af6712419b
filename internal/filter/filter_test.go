package filter

import (
	"testing"

	"github.com/MayuriC-eng/CampusConnect/internal/catalog"
	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) []models.Event {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c.List()
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestFilter_AllEmptyReturnsCatalog(t *testing.T) {
	events := seed(t)
	assert.Equal(t, events, Filter(events, models.CategoryAll, ""))
	assert.Equal(t, events, Filter(events, "", ""))
}

func TestFilter_Category(t *testing.T) {
	events := seed(t)
	got := Filter(events, models.CategoryTechnical, "")
	assert.Equal(t, []string{"1", "2", "6"}, ids(got))
}

func TestFilter_CaseInsensitive(t *testing.T) {
	events := seed(t)
	upper := Filter(events, models.CategoryAll, "AI")
	lower := Filter(events, models.CategoryAll, "ai")
	assert.Equal(t, upper, lower)
	assert.NotEmpty(t, upper)
}

func TestFilter_MatchesDescription(t *testing.T) {
	events := seed(t)
	got := Filter(events, models.CategoryAll, "hackathon")
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_CategoryAndQuery(t *testing.T) {
	events := seed(t)
	assert.Equal(t, []string{"5"}, ids(Filter(events, models.CategoryWorkshop, "react")))
	assert.Empty(t, Filter(events, models.CategorySports, "react"))
}

func TestFilter_UnknownCategory(t *testing.T) {
	events := seed(t)
	assert.Empty(t, Filter(events, "Music", ""))
}

func TestFilter_NilInput(t *testing.T) {
	got := Filter(nil, models.CategoryAll, "x")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

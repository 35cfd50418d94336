package add

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/store"
)

func TestAddStoresAndPrintsDay(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	p, err := store.Load(store.StaticConfig(t.TempDir()))
	require.NoError(t, err)

	other := item.Item{ID: "old", Created: item.Timestamp{Time: time.Date(2018, 1, 1, 8, 0, 0, 0, time.UTC)}, Category: glyph.Audio, Title: "earlier"}
	elsewhere := item.Item{ID: "far", Created: item.Timestamp{Time: time.Date(2017, 6, 1, 8, 0, 0, 0, time.UTC)}, Category: glyph.Audio, Title: "another day"}
	require.NoError(t, p.Store(ctx, other))
	require.NoError(t, p.Store(ctx, elsewhere))

	at := time.Date(2018, 1, 1, 10, 30, 0, 0, time.UTC)
	var buf bytes.Buffer
	a := &Add{
		Category:    glyph.Video,
		Title:       "a clip",
		At:          &at,
		Location:    time.UTC,
		Persistence: p,
		Out:         &buf,
	}
	require.NoError(t, a.Do(ctx))

	got, err := p.Get(ctx, a.Added.ID)
	require.NoError(t, err)
	assert.Equal(t, "a clip", got.Title)
	assert.Equal(t, glyph.Video, got.Category)
	assert.True(t, got.Created.Equal(at))

	out := buf.String()
	assert.Contains(t, out, "Monday, January 1, 2018 - 2 items")
	assert.Contains(t, out, "10:30  a clip")
	assert.Contains(t, out, "08:00  earlier")
	assert.NotContains(t, out, "another day")
}

func TestAddRejectsUnknownCategory(t *testing.T) {
	p, err := store.Load(store.StaticConfig(t.TempDir()))
	require.NoError(t, err)

	a := &Add{Title: "nothing", Persistence: p, Out: &bytes.Buffer{}}
	assert.ErrorIs(t, a.Do(context.Background()), item.ErrMissingCategory)
	assert.Empty(t, p.ListAll(context.Background()))
}

func TestAddWithoutPersistence(t *testing.T) {
	a := &Add{Category: glyph.Video, Title: "x"}
	assert.Error(t, a.Do(context.Background()))
}

package set

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

func TestSet(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	p, err := store.Load(store.StaticConfig(t.TempDir()))
	require.NoError(t, err)
	created := time.Date(2018, 1, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, p.Store(ctx, item.Item{ID: "a", Created: item.Timestamp{Time: created}, Category: glyph.Video, Title: "old"}))

	title := "new title"
	var buf bytes.Buffer
	s := &Set{ID: "a", Category: glyph.Audio, Title: &title, Location: time.UTC, Persistence: p, Out: &buf}
	require.NoError(t, s.Do(ctx))

	got, err := p.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, glyph.Audio, got.Category)
	assert.Equal(t, "new title", got.Title)
	assert.True(t, got.Created.Equal(created))
	assert.Len(t, p.ListAll(ctx), 1)
	assert.Contains(t, buf.String(), "♪ audio (1)")

	moved := time.Date(2018, 2, 3, 12, 0, 0, 0, time.UTC)
	s = &Set{ID: "a", At: &moved, Location: time.UTC, Persistence: p, Out: &bytes.Buffer{}}
	require.NoError(t, s.Do(ctx))
	assert.True(t, s.Updated.Created.Equal(moved))
	assert.Equal(t, "new title", s.Updated.Title)
}

func TestSetErrors(t *testing.T) {
	ctx := context.Background()
	p, err := store.Load(store.StaticConfig(t.TempDir()))
	require.NoError(t, err)

	title := "x"
	assert.ErrorIs(t, (&Set{ID: "a", Persistence: p}).Do(ctx), ErrNothingToSet)
	assert.ErrorIs(t, (&Set{ID: "a", Title: &title, Persistence: p}).Do(ctx), store.ErrNotFound)
}

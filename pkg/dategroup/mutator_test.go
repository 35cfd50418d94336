package dategroup

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/listmodel"
)

type harness struct {
	src   *fakeSource
	model *listmodel.Model[Row]
	mut   *Mutator
	rec   *listmodel.Recorder
}

func newHarness(t *testing.T, items ...item.Item) *harness {
	t.Helper()
	h := &harness{
		src:   newFakeSource(items...),
		model: listmodel.New[Row](),
		rec:   &listmodel.Recorder{},
	}
	h.mut = New(h.src, h.model, WithLocation(time.UTC), WithStrict(true))
	h.model.AddObserver(h.rec)
	return h
}

func (h *harness) assertCanonical(t *testing.T) {
	t.Helper()
	require.Equal(t, Project(h.src.Items(), time.UTC), h.model.Items())
}

func TestAttachMaterializesSnapshot(t *testing.T) {
	h := newHarness(t,
		rec("1", on(2, 0, 0), glyph.Video),
		rec("2", on(1, 0, 0), glyph.Audio),
	)
	assert.Equal(t, 7, h.model.Len())
	assert.Equal(t, 2, h.mut.Len())
	h.assertCanonical(t)
}

func TestAddFirstItem(t *testing.T) {
	h := newHarness(t)
	h.src.add(rec("1", on(1, 1, 0), glyph.Video))

	assert.Equal(t, []string{
		"DateHeader(2018-01-01)",
		"SectionHeader(2018-01-01,video)",
		"Content(1)",
	}, describe(h.model.Items()))
	assert.Equal(t, []listmodel.Change{{Op: listmodel.OpInsert, Index: 0, Count: 3}}, h.rec.Changes)
}

func TestAddBatchToEmptyModel(t *testing.T) {
	h := newHarness(t)
	h.src.add(
		rec("2", on(2, 10, 0), glyph.Video),
		rec("3", on(2, 12, 0), glyph.Video),
	)
	assert.Equal(t, []string{
		"DateHeader(2018-01-02)",
		"SectionHeader(2018-01-02,video)",
		"Content(3)",
		"Content(2)",
	}, describe(h.model.Items()))
	assert.Equal(t, []listmodel.Change{{Op: listmodel.OpInsert, Index: 0, Count: 4}}, h.rec.Changes)
}

func TestRemoveLastItem(t *testing.T) {
	h := newHarness(t, rec("1", on(1, 1, 0), glyph.Video))
	h.src.remove("1")

	assert.Equal(t, 0, h.model.Len())
	assert.Equal(t, []listmodel.Change{{Op: listmodel.OpRemove, Index: 0, Count: 3}}, h.rec.Changes)
}

func TestUpdateToAnotherDay(t *testing.T) {
	h := newHarness(t, rec("1", on(1, 1, 0), glyph.Video))
	before := h.model.Get(2).StableID()

	h.src.update(rec("1", on(3, 1, 0), glyph.Video))

	assert.Equal(t, []string{
		"DateHeader(2018-01-03)",
		"SectionHeader(2018-01-03,video)",
		"Content(1)",
	}, describe(h.model.Items()))
	assert.Equal(t, before, h.model.Get(2).StableID())
	assert.Equal(t, []listmodel.Change{
		{Op: listmodel.OpRemove, Index: 0, Count: 3},
		{Op: listmodel.OpInsert, Index: 0, Count: 3},
	}, h.rec.Changes)
}

func TestUpdateInPlace(t *testing.T) {
	h := newHarness(t,
		rec("1", on(1, 3, 0), glyph.Video),
		rec("2", on(1, 2, 0), glyph.Video),
		rec("3", on(1, 1, 0), glyph.Video),
	)
	before := h.model.Items()

	renamed := rec("2", on(1, 2, 30), glyph.Video)
	renamed.Title = "renamed"
	h.src.update(renamed)

	assert.Equal(t, []listmodel.Change{{Op: listmodel.OpChange, Index: 3, Count: 1}}, h.rec.Changes)
	assert.Equal(t, "renamed", h.model.Get(3).Item.Title)
	assert.Equal(t, before[3].StableID(), h.model.Get(3).StableID())
	h.assertCanonical(t)
}

func TestUpdateIdenticalIsNoop(t *testing.T) {
	it := rec("1", on(1, 3, 0), glyph.Video)
	h := newHarness(t, it)
	h.src.update(it)
	assert.Empty(t, h.rec.Changes)
}

func TestUpdateReordersWithinRun(t *testing.T) {
	h := newHarness(t,
		rec("1", on(1, 3, 0), glyph.Video),
		rec("2", on(1, 2, 0), glyph.Video),
	)
	h.src.update(rec("2", on(1, 4, 0), glyph.Video))

	assert.Equal(t, []string{"Content(2)", "Content(1)"}, describe(h.model.Items()[2:]))
	h.assertCanonical(t)
}

func TestUpdateCategorySplitsRun(t *testing.T) {
	h := newHarness(t,
		rec("1", on(1, 3, 0), glyph.Video),
		rec("2", on(1, 2, 0), glyph.Video),
		rec("3", on(1, 1, 0), glyph.Video),
	)
	h.src.update(rec("2", on(1, 2, 0), glyph.Audio))

	assert.Equal(t, []string{
		"DateHeader(2018-01-01)",
		"SectionHeader(2018-01-01,video)",
		"Content(1)",
		"Separator(2018-01-01,date=false)",
		"SectionHeader(2018-01-01,audio)",
		"Content(2)",
		"Separator(2018-01-01,date=false)",
		"SectionHeader(2018-01-01,video)",
		"Content(3)",
	}, describe(h.model.Items()))
	h.assertCanonical(t)
}

func TestRemoveSectionDropsHeaderAndSeparator(t *testing.T) {
	h := newHarness(t,
		rec("1", on(1, 2, 0), glyph.Video),
		rec("2", on(1, 1, 0), glyph.Audio),
	)
	h.src.remove("2")

	assert.Equal(t, []string{
		"DateHeader(2018-01-01)",
		"SectionHeader(2018-01-01,video)",
		"Content(1)",
	}, describe(h.model.Items()))
	assert.Equal(t, []listmodel.Change{{Op: listmodel.OpRemove, Index: 3, Count: 3}}, h.rec.Changes)
}

func TestRemoveDayDropsDateHeaderAndBoundary(t *testing.T) {
	h := newHarness(t,
		rec("1", on(2, 0, 0), glyph.Video),
		rec("2", on(1, 0, 0), glyph.Audio),
	)
	h.src.remove("1")

	assert.Equal(t, []string{
		"DateHeader(2018-01-01)",
		"SectionHeader(2018-01-01,audio)",
		"Content(2)",
	}, describe(h.model.Items()))
	h.assertCanonical(t)
}

func TestNewFirstItemOfDayKeepsHeaders(t *testing.T) {
	h := newHarness(t, rec("a", on(1, 8, 0), glyph.Video))
	h.src.add(rec("b", on(1, 9, 0), glyph.Video))

	assert.Equal(t, []string{
		"DateHeader(2018-01-01)",
		"SectionHeader(2018-01-01,video)",
		"Content(b)",
		"Content(a)",
	}, describe(h.model.Items()))
	assert.Equal(t, []listmodel.Change{{Op: listmodel.OpInsert, Index: 2, Count: 1}}, h.rec.Changes)
}

func TestNewerDayIsInsertedOnTop(t *testing.T) {
	h := newHarness(t, rec("a", on(1, 8, 0), glyph.Video))
	h.src.add(rec("b", on(2, 9, 0), glyph.Video))

	assert.Equal(t, []string{
		"DateHeader(2018-01-02)",
		"SectionHeader(2018-01-02,video)",
		"Content(b)",
		"Separator(2018-01-01,date=true)",
		"DateHeader(2018-01-01)",
		"SectionHeader(2018-01-01,video)",
		"Content(a)",
	}, describe(h.model.Items()))
	assert.Equal(t, []listmodel.Change{{Op: listmodel.OpInsert, Index: 0, Count: 4}}, h.rec.Changes)
}

func TestNewFirstSectionOfDayMovesSeparator(t *testing.T) {
	h := newHarness(t,
		rec("a", on(2, 8, 0), glyph.Video),
		rec("z", on(1, 8, 0), glyph.Video),
	)
	h.src.add(rec("b", on(2, 9, 0), glyph.Audio))

	assert.Equal(t, []string{
		"DateHeader(2018-01-02)",
		"SectionHeader(2018-01-02,audio)",
		"Content(b)",
		"Separator(2018-01-02,date=false)",
		"SectionHeader(2018-01-02,video)",
		"Content(a)",
		"Separator(2018-01-01,date=true)",
		"DateHeader(2018-01-01)",
		"SectionHeader(2018-01-01,video)",
		"Content(z)",
	}, describe(h.model.Items()))
	h.assertCanonical(t)
	for _, c := range h.rec.Changes {
		assert.NotEqual(t, listmodel.OpRemove, c.Op, "existing rows keep their identity: %v", h.rec.Changes)
	}
}

func TestStrictModePanicsOnMalformedInput(t *testing.T) {
	h := newHarness(t, rec("1", on(1, 0, 0), glyph.Video))

	tests := map[string]func(){
		"duplicate add": func() { h.mut.OnItemsAdded([]item.Item{rec("1", on(2, 0, 0), glyph.Video)}) },
		"no category":   func() { h.mut.OnItemsAdded([]item.Item{{ID: "2", Created: on(1, 0, 0)}}) },
		"unknown remove": func() {
			h.mut.OnItemsRemoved([]item.Item{rec("9", on(1, 0, 0), glyph.Video)})
		},
		"unknown update": func() {
			h.mut.OnItemUpdated(rec("9", on(1, 0, 0), glyph.Video), rec("9", on(2, 0, 0), glyph.Video))
		},
		"id mismatch": func() {
			h.mut.OnItemUpdated(rec("1", on(1, 0, 0), glyph.Video), rec("2", on(1, 0, 0), glyph.Video))
		},
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				var ie *InvariantError
				require.True(t, errors.As(r.(error), &ie), "panic value %v", r)
			}()
			fn()
		})
	}
}

func TestLenientModeSkipsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	src := newFakeSource(rec("1", on(1, 0, 0), glyph.Video))
	model := listmodel.New[Row]()
	mut := New(src, model, WithLocation(time.UTC), WithLogger(logger))

	mut.OnItemsAdded([]item.Item{
		rec("1", on(2, 0, 0), glyph.Video),
		{ID: "bad", Created: on(1, 0, 0)},
		rec("2", on(1, 5, 0), glyph.Audio),
	})
	mut.OnItemsRemoved([]item.Item{rec("missing", on(1, 0, 0), glyph.Video)})

	assert.Equal(t, 2, mut.Len())
	assert.Equal(t, Project([]item.Item{
		rec("1", on(1, 0, 0), glyph.Video),
		rec("2", on(1, 5, 0), glyph.Audio),
	}, time.UTC), model.Items())

	out := buf.String()
	assert.Contains(t, out, "ignoring item")
	assert.Contains(t, out, "id=1")
	assert.Contains(t, out, "id=bad")
	assert.Contains(t, out, "id=missing")
}

func TestCloseStopsFollowing(t *testing.T) {
	h := newHarness(t)
	h.mut.Close()
	h.src.add(rec("1", on(1, 0, 0), glyph.Video))
	assert.Equal(t, 0, h.model.Len())
}

func TestAttachToPopulatedModel(t *testing.T) {
	model := listmodel.New[Row]()
	stale := newFakeSource(rec("old", on(1, 0, 0), glyph.Video))
	New(stale, model, WithLocation(time.UTC)).Close()

	src := newFakeSource(rec("new", on(1, 1, 0), glyph.Video))
	New(src, model, WithLocation(time.UTC), WithStrict(true))
	assert.Equal(t, Project(src.Items(), time.UTC), model.Items())
}

func TestConvergesUnderRandomEdits(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		h := newHarness(t)
		m := newMirror(h.model)
		next := 0
		live := []string{}

		for step := 0; step < 60; step++ {
			switch op := r.Intn(3); {
			case op == 0 || len(live) == 0:
				batch := make([]item.Item, 1+r.Intn(4))
				for i := range batch {
					id := string(rune('a'+next%26)) + string(rune('0'+next/26))
					next++
					batch[i] = randomItem(r, id)
					live = append(live, id)
				}
				h.src.add(batch...)
			case op == 1:
				n := 1 + r.Intn(min(3, len(live)))
				r.Shuffle(len(live), func(i, j int) { live[i], live[j] = live[j], live[i] })
				h.src.remove(live[:n]...)
				live = live[n:]
			default:
				id := live[r.Intn(len(live))]
				h.src.update(randomItem(r, id))
			}

			require.Equal(t, Project(h.src.Items(), time.UTC), h.model.Items(), "seed %d step %d", seed, step)
			require.NoError(t, Verify(h.model.Items()), "seed %d step %d", seed, step)
			require.Equal(t, h.model.Items(), m.rows, "notifications diverged: seed %d step %d", seed, step)
		}
	}
}

func randomItem(r *rand.Rand, id string) item.Item {
	cats := []glyph.Category{glyph.Video, glyph.Audio, glyph.Image}
	return rec(id, on(1+r.Intn(3), r.Intn(24), 0), cats[r.Intn(len(cats))])
}

package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daylist/pkg/glyph"
)

func TestGetOn(t *testing.T) {
	now := time.Date(2021, time.June, 5, 14, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		opts    OnOptions
		want    *time.Time
		wantErr bool
	}{
		"unset": {},
		"iso date keeps time of day": {
			opts: OnOptions{OnString: "2020-2-28"},
			want: ptr(time.Date(2020, time.February, 28, 14, 30, 0, 0, time.UTC)),
		},
		"short date uses this year": {
			opts: OnOptions{OnString: "1/3"},
			want: ptr(time.Date(2021, time.January, 3, 14, 30, 0, 0, time.UTC)),
		},
		"exact time": {
			opts: OnOptions{AtString: "2020-02-28T15:04:05Z"},
			want: ptr(time.Date(2020, time.February, 28, 15, 4, 5, 0, time.UTC)),
		},
		"bad date":     {opts: OnOptions{OnString: "yesterday"}, wantErr: true},
		"bad time":     {opts: OnOptions{AtString: "noon"}, wantErr: true},
		"both at once": {opts: OnOptions{OnString: "2020-2-28", AtString: "2020-02-28T15:04:05Z"}, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.opts.GetOn(now, time.UTC)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.want.Equal(*got), "got %s want %s", got, tc.want)
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestAddOptionsParseArgs(t *testing.T) {
	o := &AddOptions{}
	require.NoError(t, o.ParseArgs([]string{"movie", "the", "big", "one"}))
	assert.Equal(t, glyph.Video, o.Category)
	assert.Equal(t, "the big one", o.Title)

	assert.Error(t, o.ParseArgs(nil))
	assert.Error(t, o.ParseArgs([]string{"spaceship", "x"}))
}

func TestCategoryOptions(t *testing.T) {
	c, err := (&CategoryOptions{}).GetCategory()
	require.NoError(t, err)
	assert.Equal(t, glyph.Unknown, c)

	c, err = (&CategoryOptions{CategoryString: "pdf"}).GetCategory()
	require.NoError(t, err)
	assert.Equal(t, glyph.Document, c)

	assert.Equal(t, []string{"page"}, CategoryCompletions("pa"))
	assert.Len(t, CategoryCompletions(""), len(glyph.Categories()))
}

func TestGetLocation(t *testing.T) {
	loc, err := (&LocationOptions{}).GetLocation()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&LocationOptions{TZ: "UTC"}).GetLocation()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&LocationOptions{TZ: "Nowhere/Special"}).GetLocation()
	assert.Error(t, err)
}

func TestGetCutoff(t *testing.T) {
	now := time.Date(2018, time.January, 10, 15, 0, 0, 0, time.UTC)

	got, err := (&SinceOptions{}).GetCutoff(now, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = (&SinceOptions{Since: "3d"}).GetCutoff(now, time.UTC)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2018, time.January, 7, 0, 0, 0, 0, time.UTC)))

	_, err = (&SinceOptions{Since: "soon"}).GetCutoff(now, time.UTC)
	assert.Error(t, err)
}

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/layout"
)

const sampleManifest = `
[[layouts]]
name = "main-array"
kind = "square"
rows = 4
columns = 4
spacing = 5.0

[[layouts]]
name = "hex"
kind = "triangular_hex"
n_traps = 61

[[layouts]]
name = "scratch"
kind = "random"
n_traps = 20
seed = 7
`

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Layouts, 3)

	assert.Equal(t, "main-array", m.Layouts[0].Name)
	assert.Equal(t, layout.KindSquare, m.Layouts[0].Spec().Kind)
	assert.Equal(t, "scratch", m.Layouts[2].Name)
	assert.Equal(t, uint64(7), m.Layouts[2].Seed)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
}

func TestEntrySpecDefaults(t *testing.T) {
	t.Run("triangular spacing", func(t *testing.T) {
		s := Entry{Kind: "triangular_hex", NTraps: 61}.Spec()
		assert.Equal(t, float64(layout.DefaultTriangularRectSpacing), s.Spacing)
	})

	t.Run("random packing", func(t *testing.T) {
		s := Entry{Kind: "random", NTraps: 20}.Spec()
		assert.Equal(t, layout.DefaultRandomRadius, s.Radius)
		assert.Equal(t, layout.DefaultRandomMinSpacing, s.MinSpacing)
		assert.Equal(t, layout.DefaultRandomMaxIter, s.MaxIter)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		s := Entry{Kind: "random", NTraps: 20, Radius: 50, MinSpacing: 4, MaxIter: 2000}.Spec()
		assert.Equal(t, 50.0, s.Radius)
		assert.Equal(t, 4.0, s.MinSpacing)
		assert.Equal(t, 2000, s.MaxIter)
	})

	t.Run("no defaults for grids", func(t *testing.T) {
		s := Entry{Kind: "rectangular", Rows: 2, Columns: 3}.Spec()
		assert.Zero(t, s.XSpacing)
		assert.Zero(t, s.YSpacing)
	})
}

func TestParseRejectsInvalidManifests(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantCode errors.Code
	}{
		{
			name:     "malformed toml",
			data:     "[[layouts]\nname=",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "no layouts",
			data:     "# empty manifest",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "missing name",
			data:     "[[layouts]]\nkind = \"square\"\nrows = 2\ncolumns = 2\n",
			wantCode: errors.ErrCodeInvalidName,
		},
		{
			name: "duplicate name",
			data: "[[layouts]]\nname = \"a\"\nkind = \"square\"\n\n" +
				"[[layouts]]\nname = \"a\"\nkind = \"random\"\nn_traps = 5\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "unknown kind",
			data:     "[[layouts]]\nname = \"a\"\nkind = \"hexagonal\"\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
		})
	}
}

func TestManifestEntriesBuild(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	for _, e := range m.Layouts {
		l, err := e.Spec().Build()
		require.NoError(t, err, "entry %s", e.Name)
		assert.Positive(t, l.NumTraps())
	}
}

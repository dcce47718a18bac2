package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkPut(t *testing.T) {
	fs := afero.NewMemMapFs()

	sink, err := New(fs, &Config{Directory: "/out"}, nil)
	require.NoError(t, err)

	location, err := sink.Put(context.Background(), "2016/invoice.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "2016", "invoice.pdf"), location)

	data, err := afero.ReadFile(fs, location)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestSinkRejectsEscapingNames(t *testing.T) {
	sink, err := New(afero.NewMemMapFs(), &Config{Directory: "/out"}, nil)
	require.NoError(t, err)

	_, err = sink.Put(context.Background(), "../etc/passwd", []byte("x"))
	assert.Error(t, err)
}

func TestSinkDefaultDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink, err := New(fs, &Config{}, nil)
	require.NoError(t, err)

	location, err := sink.Put(context.Background(), "a.txt", []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", location)

	exists, err := afero.Exists(fs, "a.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

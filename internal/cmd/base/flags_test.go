package base

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSetHelp(t *testing.T) {
	var format string
	var open bool
	f := NewFlagSet(flag.NewFlagSet("convert", flag.ContinueOnError))
	f.StringVar(&format, "format", "PDF", "Return `format` of the document.")
	f.BoolVar(&open, "open", false, "Open the document.")

	help := f.Help()
	assert.Contains(t, help, "Command Options:")
	assert.Contains(t, help, "-format=<format>")
	assert.Contains(t, help, "Default: PDF")
	assert.Contains(t, help, "  -open\n")
	assert.NotContains(t, help, "Default: false")
}

func TestStringSliceVar(t *testing.T) {
	var settings []string
	f := NewFlagSet(flag.NewFlagSet("merge", flag.ContinueOnError))
	f.StringSliceVar(&settings, "setting", "Setting as key=value.")

	require.NoError(t, f.Parse([]string{"-setting", "a=1", "-setting", "b=2", "file.tx"}))
	assert.Equal(t, []string{"a=1", "b=2"}, settings)
	assert.Equal(t, []string{"file.tx"}, f.Args())
}

func TestParseErrorsAreNotPrinted(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("count", flag.ContinueOnError))
	assert.Error(t, f.Parse([]string{"-unknown"}))
}

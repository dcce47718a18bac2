package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const helpWidth = 78

// FlagSet wraps a standard flag set with help rendering for cli commands.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Its output is discarded; errors are reported by the
// command through its UI.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(new(bytes.Buffer))
	return &FlagSet{FlagSet: f}
}

// Help renders the flags in definition order for a command's Help text.
func (f *FlagSet) Help() string {
	var out strings.Builder
	out.WriteString("\n\nCommand Options:\n")

	f.VisitAll(func(fl *flag.Flag) {
		example, usage := flag.UnquoteUsage(fl)
		if example != "" {
			fmt.Fprintf(&out, "\n  -%s=<%s>\n", fl.Name, example)
		} else {
			fmt.Fprintf(&out, "\n  -%s\n", fl.Name)
		}
		if fl.DefValue != "" && fl.DefValue != "false" && fl.DefValue != "0" {
			usage += fmt.Sprintf(" Default: %s", fl.DefValue)
		}
		for _, line := range strings.Split(wordwrap.WrapString(usage, helpWidth-4), "\n") {
			fmt.Fprintf(&out, "    %s\n", line)
		}
	})

	return strings.TrimRight(out.String(), "\n")
}

// StringSliceVar defines a repeatable string flag.
func (f *FlagSet) StringSliceVar(p *[]string, name, usage string) {
	f.Var((*stringSlice)(p), name, usage)
}

type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

package assert

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/dictionaries.yaml
var dictionariesYAML []byte

// DictionaryTable is the static list of proofing dictionaries.
type DictionaryTable struct {
	Version      int      `yaml:"version"`
	Dictionaries []string `yaml:"dictionaries"`
}

var (
	dictionariesOnce  sync.Once
	dictionaries      DictionaryTable
	dictionariesError error
)

// Dictionaries returns the embedded dictionary table. It is decoded once and
// must not be modified by callers.
func Dictionaries() (DictionaryTable, error) {
	dictionariesOnce.Do(func() {
		dictionaries, dictionariesError = parseDictionaries(dictionariesYAML)
	})
	return dictionaries, dictionariesError
}

func parseDictionaries(data []byte) (DictionaryTable, error) {
	var table DictionaryTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return DictionaryTable{}, fmt.Errorf("failed to decode dictionary table: %w", err)
	}
	if len(table.Dictionaries) == 0 {
		return DictionaryTable{}, fmt.Errorf("dictionary table is empty")
	}
	return table, nil
}

// Language asserts that v names a supported dictionary, e.g. "en_US.dic".
func Language(v string, message ...string) error {
	const def = "%s contains an unsupported language"

	if !strings.HasSuffix(v, ".dic") {
		return fail(v, nil, def, message, v)
	}

	table, err := Dictionaries()
	if err != nil {
		return fail(v, err, def, message, v)
	}
	if !slices.Contains(table.Dictionaries, v) {
		return fail(v, nil, def, message, v)
	}
	return nil
}

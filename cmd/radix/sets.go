package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hanzikit/radicalgebra/radical"
)

// setsFile is the on-disk shape of a --sets file:
//
//	sets:
//	  - name: 五行
//	    radicals: 金木水火土
//	  - name: 日月
//	    radicals: 日月
type setsFile struct {
	Sets []setEntry `yaml:"sets"`
}

type setEntry struct {
	Name     string `yaml:"name"`
	Radicals string `yaml:"radicals"`
}

// loadNamedSet reads a YAML sets file and builds the named radical set.
// Every entry is checked for a name so typos surface even for sets the
// caller did not ask for.
func loadNamedSet(path, name string) (*radical.Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sets file: %w", err)
	}

	var file setsFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse sets file %s: %w", path, err)
	}

	names := make([]string, 0, len(file.Sets))
	for _, entry := range file.Sets {
		if entry.Name == "" {
			return nil, fmt.Errorf("sets file %s: entry without a name", path)
		}
		if entry.Name == name {
			return radical.NewSetFromString(entry.Name, entry.Radicals)
		}
		names = append(names, entry.Name)
	}

	return nil, fmt.Errorf("sets file %s has no set %q (available: %v)", path, name, names)
}

package main

import (
	"os"

	yml "gopkg.in/yaml.v3"
)

// Rules captures the yaml description of an extraction ruleset.
//
//	# use 'default-revision' to pick what a bare run extracts when the
//	# command line gives no -rev: a number, branch, or symbol.
//	default-revision: "1.2.1"
//
//	# use 'revisions' to extract a fixed set of revisions with -out,
//	# one file per revision, named <out>.<rev>.
//	revisions:
//	  - "1.1"
//	  - "v1_1"
//
//	# 'detail' adds per-revision log messages to the -report output.
//	detail: true
type Rules struct {
	Filename        string
	DefaultRevision string   `yaml:"default-revision,omitempty"`
	Revisions       []string `yaml:"revisions,omitempty"`
	Detail          bool     `yaml:"detail,omitempty"`
}

// NewRules returns a new Rules object populated from the yaml definition
// in a given file. A missing file yields an empty ruleset.
func NewRules(filename string) (rules *Rules, err error) {
	rules = &Rules{Filename: filename}

	// Only try and load the file if it has a name.
	if filename != "" {
		if f, err := os.ReadFile(filename); err == nil {
			if err = yml.Unmarshal(f, rules); err != nil {
				return nil, err
			}
		}
	}

	rules.Filename = filename

	return rules, nil
}

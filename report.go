package main

import (
	"os"

	rcs "github.com/kfsone/rcs-go/lib"
	yml "gopkg.in/yaml.v3"
)

// RevisionInfo describes one revision in the yaml report.
type RevisionInfo struct {
	Revision string `yaml:"revision"`
	Date     string `yaml:"date"`
	Author   string `yaml:"author"`
	State    string `yaml:"state,omitempty"`
	Log      string `yaml:"log,omitempty"`
}

// PairInfo is an ordered name:revision entry; symbols and locks keep
// their file order, which a yaml map would lose.
type PairInfo struct {
	Name     string `yaml:"name"`
	Revision string `yaml:"revision"`
}

// ArchiveReport describes one archive's history.
type ArchiveReport struct {
	File        string         `yaml:"file"`
	Head        string         `yaml:"head,omitempty"`
	Branch      string         `yaml:"branch,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Symbols     []PairInfo     `yaml:"symbols,omitempty"`
	Locks       []PairInfo     `yaml:"locks,omitempty"`
	Orphans     []string       `yaml:"orphans,omitempty"`
	Revisions   []RevisionInfo `yaml:"revisions,omitempty"`
}

func describeArchive(archive *rcs.Archive, detail bool) (*ArchiveReport, error) {
	doc := archive.Doc

	report := &ArchiveReport{
		File:        archive.Path,
		Description: doc.Desc,
	}
	if doc.Admin.Head != nil {
		report.Head = doc.Admin.Head.String()
	}
	if doc.Admin.Branch != nil {
		report.Branch = doc.Admin.Branch.String()
	}
	for _, sym := range doc.Admin.Symbols {
		report.Symbols = append(report.Symbols, PairInfo{Name: sym.Name, Revision: sym.Rev.String()})
	}
	for _, lock := range doc.Admin.Locks {
		report.Locks = append(report.Locks, PairInfo{Name: lock.Owner, Revision: lock.Rev.String()})
	}

	graph, err := rcs.NewGraph(doc)
	if err != nil {
		return nil, err
	}
	for _, orphan := range graph.Orphans {
		report.Orphans = append(report.Orphans, orphan.String())
	}

	graph.Walk(func(node *rcs.GraphNode) {
		info := RevisionInfo{
			Revision: node.Rev.String(),
			Date:     node.Delta.Date,
			Author:   node.Delta.Author,
			State:    node.Delta.State,
		}
		if detail {
			info.Log = node.Text.Log
		}
		report.Revisions = append(report.Revisions, info)
	})

	return report, nil
}

func writeReport(filename string, session *Session) error {
	// Open the file for writing.
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	reports := make([]*ArchiveReport, 0, len(session.archives))
	for _, archive := range session.archives {
		report, err := describeArchive(archive, session.rules.Detail)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	ymlenc := yml.NewEncoder(f)
	ymlenc.SetIndent(2)
	if err := ymlenc.Encode(reports); err != nil {
		return err
	}
	return ymlenc.Close()
}

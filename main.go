package main

// rcs-extract reads legacy RCS comma-v archives without the original
// toolchain and reconstructs the exact text of any revision: the latest
// by default, or whatever -rev / the rules file asks for. It can also
// emit a yaml report of an archive's history for migration tooling.
//
// Use "rules.yml" to configure extraction; see rules.go for the format.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rcs "github.com/kfsone/rcs-go/lib"
)

type Session struct {
	rules    *Rules
	archives []*rcs.Archive
}

func NewSession() (session *Session, err error) {
	session = &Session{}

	if session.rules, err = NewRules(*rulesFile); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *Session) Close() {
	for _, archive := range s.archives {
		archive.Close()
	}
	s.archives = nil
}

func main() {
	parseCommandLine()

	if err := run(); err != nil {
		fmt.Println(fmt.Errorf("error: %w", err))
		os.Exit(1)
	}
}

// Log prints a message if -verbose was specified.
func Log(format string, args ...any) {
	if *verbose {
		s := fmt.Sprintf("-- "+format, args...)
		s = strings.ReplaceAll(s, "\r", "<cr>")
		s = strings.ReplaceAll(s, "\n", "<lf>")
		fmt.Println(s)
	}
}

// Info prints a message if -quiet was not specified.
func Info(format string, args ...any) {
	if !*quiet {
		s := fmt.Sprintf("-- "+format, args...)
		s = strings.ReplaceAll(s, "\r", "<cr>")
		s = strings.ReplaceAll(s, "\n", "<lf>")
		fmt.Println(s)
	}
}

func run() error {
	// Determine what files we're going to read.
	filenames, err := filepath.Glob(*archiveName)
	if err != nil {
		return fmt.Errorf("invalid archive file/glob: %s: %w", *archiveName, err)
	}
	if len(filenames) == 0 {
		return fmt.Errorf("no matching archive files found: %s", *archiveName)
	}

	session, err := NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	Info("Loading %d archive files", len(filenames))
	for _, filename := range filenames {
		Log("Loading archive: %s", filename)
		archive, err := rcs.OpenArchive(filename)
		if err != nil {
			return err
		}
		session.archives = append(session.archives, archive)
	}

	for _, archive := range session.archives {
		if err := extract(session, archive); err != nil {
			return err
		}
	}

	if *reportName != "" {
		if err := writeReport(*reportName, session); err != nil {
			return err
		}
		Info("Wrote report: %s", *reportName)
	}

	Info("Finished")

	return nil
}

// requests returns the revision requests to extract from each archive:
// the -rev flag wins, then the ruleset, then the archive default.
func requests(session *Session) []string {
	if *revision != "" {
		return []string{*revision}
	}
	if len(session.rules.Revisions) > 0 {
		return session.rules.Revisions
	}
	return []string{session.rules.DefaultRevision}
}

func extract(session *Session, archive *rcs.Archive) error {
	doc := archive.Doc

	graph, err := rcs.NewGraph(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", archive.Path, err)
	}
	for _, orphan := range graph.Orphans {
		Log("%s: orphan revision %s", archive.Path, orphan)
	}

	for _, request := range requests(session) {
		rev, err := rcs.Resolve(doc, request)
		if err != nil {
			return fmt.Errorf("%s: %w", archive.Path, err)
		}

		Log("%s: reconstructing %s", archive.Path, rev)
		content, err := graph.Reconstruct(rev)
		if err != nil {
			return fmt.Errorf("%s: %w", archive.Path, err)
		}

		if err := emit(archive, rev, content); err != nil {
			return err
		}
	}

	return nil
}

// emit writes one reconstructed revision to -out (suffixed with the
// revision number when extracting several) or to stdout.
func emit(archive *rcs.Archive, rev rcs.RevNum, content []byte) error {
	if *outName == "" {
		_, err := os.Stdout.Write(content)
		return err
	}

	name := *outName
	if *revision == "" {
		name = fmt.Sprintf("%s.%s", name, rev)
	}
	Info("%s: %s -> %s (%d bytes)", archive.Path, rev, name, len(content))
	return os.WriteFile(name, content, 0o644)
}

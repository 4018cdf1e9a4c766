// Package sampler discovers candidate source files and picks practice texts.
package sampler

import (
	"io/fs"
	"path"
	"sort"
	"strings"
)

// DefaultMaxDepth bounds how many directory levels Discover descends.
const DefaultMaxDepth = 8

const hiddenPrefix = "."

// CandidateSet is the immutable result of one discovery walk.
type CandidateSet struct {
	paths []string
}

// NewCandidateSet builds a set from explicit paths.
func NewCandidateSet(paths []string) CandidateSet {
	out := append([]string(nil), paths...)
	sort.Strings(out)
	return CandidateSet{paths: out}
}

// Len returns the number of candidates.
func (c CandidateSet) Len() int { return len(c.paths) }

// At returns the i-th candidate path.
func (c CandidateSet) At(i int) string { return c.paths[i] }

// Paths returns a copy of the candidate paths.
func (c CandidateSet) Paths() []string {
	return append([]string(nil), c.paths...)
}

// Eligible reports whether a file name qualifies as a candidate.
func Eligible(name, ext string) bool {
	if name == "" || strings.HasPrefix(name, hiddenPrefix) {
		return false
	}
	return strings.HasSuffix(name, ext)
}

// Discover walks root inside fsys and collects eligible files up to maxDepth
// levels below root. Unreadable entries are skipped; hidden directories are
// not entered.
func Discover(fsys fs.FS, root, ext string, maxDepth int) CandidateSet {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	root = path.Clean(root)
	var found []string
	_ = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && p != root {
				return fs.SkipDir
			}
			return nil
		}
		depth := depthBelow(root, p)
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), hiddenPrefix) {
				return fs.SkipDir
			}
			if depth >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if depth > maxDepth {
			return nil
		}
		if Eligible(d.Name(), ext) {
			found = append(found, p)
		}
		return nil
	})
	return NewCandidateSet(found)
}

func depthBelow(root, p string) int {
	if p == root {
		return 0
	}
	rel := p
	if root != "." {
		rel = strings.TrimPrefix(p, root+"/")
	}
	return strings.Count(rel, "/") + 1
}

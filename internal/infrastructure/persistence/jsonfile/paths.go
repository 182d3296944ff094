// Package jsonfile persists the six record batches as JSON array files, one
// per entity kind, and decodes them back with per-record fault isolation.
package jsonfile

import "path/filepath"

// Paths locates the six batch files.
type Paths struct {
	Admins     string
	Students   string
	Employers  string
	Professors string
	Reviews    string
	Postings   string
}

// DefaultPaths returns the conventional file layout under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Admins:     filepath.Join(dir, "admins.json"),
		Students:   filepath.Join(dir, "students.json"),
		Employers:  filepath.Join(dir, "employers.json"),
		Professors: filepath.Join(dir, "professors.json"),
		Reviews:    filepath.Join(dir, "reviews.json"),
		Postings:   filepath.Join(dir, "postings.json"),
	}
}

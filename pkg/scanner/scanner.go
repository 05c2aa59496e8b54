// Package scanner inspects the top level of a project directory to enrich the generation prompt.
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const UnknownLanguage = "Unknown"

const (
	requirementsFile = "requirements.txt"
	packageJSONFile  = "package.json"
	dockerfile       = "Dockerfile"
)

// Result is the lightweight metadata collected from a directory's top-level files.
type Result struct {
	Files           []string `json:"files"`
	HasRequirements bool     `json:"has_requirements"`
	HasPackageJSON  bool     `json:"has_package_json"`
	HasDockerfile   bool     `json:"has_dockerfile"`
	HasTests        bool     `json:"has_tests"`
	Language        string   `json:"language"`
}

type extLanguage struct {
	ext      string
	language string
}

// Checked in order; the first extension that matches a file wins.
var extensionLanguages = []extLanguage{
	{".py", "Python"},
	{".js", "JavaScript"},
	{".ts", "TypeScript"},
	{".java", "Java"},
	{".go", "Go"},
	{".rs", "Rust"},
	{".dart", "Dart/Flutter"},
}

// Scan lists the immediate regular files of dir and derives a Result from their names.
// It never fails: a directory that cannot be read is logged and yields an empty Result.
// Files are visited in lexical order, so extension-based detection is deterministic.
func Scan(dir string, logger *logrus.Logger) Result {
	res := Result{Files: []string{}, Language: UnknownLanguage}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if logger != nil {
			logger.Warnf("Could not scan directory %s: %v", dir, err)
		}
		return res
	}

	for _, entry := range entries {
		if !isRegularFile(dir, entry) {
			continue
		}
		name := entry.Name()
		res.Files = append(res.Files, name)

		switch {
		case name == requirementsFile:
			res.HasRequirements = true
			res.Language = "Python"
		case name == packageJSONFile:
			res.HasPackageJSON = true
			res.Language = "JavaScript/TypeScript"
		case name == dockerfile:
			res.HasDockerfile = true
		case strings.Contains(strings.ToLower(name), "test"):
			res.HasTests = true
		}

		if res.Language == UnknownLanguage {
			if lang, ok := languageForFile(name); ok {
				res.Language = lang
			}
		}
	}

	if logger != nil {
		logger.Debugf("Scanned %s: %d files, language %s", dir, len(res.Files), res.Language)
	}
	return res
}

// HasFiles reports whether the scan found anything worth mentioning in a prompt.
func (r *Result) HasFiles() bool {
	return r != nil && len(r.Files) > 0
}

func languageForFile(name string) (string, bool) {
	ext := filepath.Ext(name)
	for _, el := range extensionLanguages {
		if ext == el.ext {
			return el.language, true
		}
	}
	return "", false
}

// isRegularFile follows symlinks so a link to a file counts as a file.
func isRegularFile(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

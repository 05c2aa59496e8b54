// Package prompt assembles the system and user instructions sent to a provider.
package prompt

import (
	"fmt"
	"strings"

	"github.com/grovetools/readmegen/pkg/scanner"
)

// MaxListedFiles caps how many scanned file names are included in the user prompt.
const MaxListedFiles = 10

const languageNotSpecified = "Not specified"

// Input is the project metadata a prompt is built from.
type Input struct {
	ProjectName string
	Description string
	Language    string
	License     string
}

// Prompt is the system+user instruction pair for one generation.
type Prompt struct {
	System string
	User   string
}

// Build returns the prompt for in. scan is nil when scanning was not requested.
func Build(in Input, scan *scanner.Result) Prompt {
	return Prompt{
		System: SystemPrompt,
		User:   buildUser(in, scan),
	}
}

// ResolveLanguage applies the language precedence: explicit, then detected, then empty.
func ResolveLanguage(explicit string, scan *scanner.Result) string {
	if explicit != "" {
		return explicit
	}
	if scan != nil && scan.Language != "" && scan.Language != scanner.UnknownLanguage {
		return scan.Language
	}
	return ""
}

func buildUser(in Input, scan *scanner.Result) string {
	language := ResolveLanguage(in.Language, scan)
	if language == "" {
		language = languageNotSpecified
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a professional README.md for this project:\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", in.ProjectName)
	fmt.Fprintf(&b, "Description: %s\n", in.Description)
	fmt.Fprintf(&b, "Primary Language: %s\n", language)
	fmt.Fprintf(&b, "License: %s\n", in.License)

	if !scan.HasFiles() {
		return b.String()
	}

	files := scan.Files
	if len(files) > MaxListedFiles {
		files = files[:MaxListedFiles]
	}
	fmt.Fprintf(&b, "\nProject Files Found: %s", strings.Join(files, ", "))
	if scan.HasRequirements {
		b.WriteString("\n- Uses requirements.txt for Python dependencies")
	}
	if scan.HasPackageJSON {
		b.WriteString("\n- Uses package.json for Node.js dependencies")
	}
	if scan.HasDockerfile {
		b.WriteString("\n- Includes Docker support")
	}
	if scan.HasTests {
		b.WriteString("\n- Has test files")
	}

	return b.String()
}

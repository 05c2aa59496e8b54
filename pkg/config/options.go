package config

// Licenses is the closed set of licenses a README can declare.
var Licenses = []string{
	"MIT",
	"Apache-2.0",
	"GPL-3.0",
	"BSD-3-Clause",
	"Unlicense",
	"MPL-2.0",
}

// Languages lists the primary languages offered for completion.
var Languages = []string{
	"Python",
	"JavaScript",
	"TypeScript",
	"Java",
	"Go",
	"Rust",
	"Dart/Flutter",
	"C++",
	"C#",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
}

func IsKnownLicense(name string) bool {
	for _, l := range Licenses {
		if l == name {
			return true
		}
	}
	return false
}

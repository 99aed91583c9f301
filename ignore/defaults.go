package ignore

// DefaultIgnoreDirs lists directory names pruned when MatcherOptions.SkipDefaultDirs is set.
// Matching is case-insensitive on the directory's base name.
var DefaultIgnoreDirs = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// Dependencies
	"node_modules",
	"vendor",
	"bower_components",
	".npm",
	".yarn",

	// Build output
	"dist",
	"build",
	"out",
	"target",

	// IDE / Editor
	".idea",
	".vscode",
	".vs",

	// Python
	"__pycache__",
	".venv",
	"venv",
	".mypy_cache",
	".pytest_cache",

	// Coverage
	"coverage",
	".nyc_output",
	"htmlcov",

	// Cache
	".cache",
	".parcel-cache",
	".next",
	".nuxt",
	".astro",
	".netlify",
}

// IgnoreFileNames are the per-project ignore files read from the root
// when MatcherOptions.UseIgnoreFiles is set.
var IgnoreFileNames = []string{".gitignore", ".exportignore"}

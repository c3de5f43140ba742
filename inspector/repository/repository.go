package repository

// Project represents information about a detected front-end project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Type of project (javascript, git, unknown)
	Name         string // Name of the project (extracted from package.json)
	RelativePath string // Path from project root to the specified file
}

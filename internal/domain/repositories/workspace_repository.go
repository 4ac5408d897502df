package repositories

// WorkspaceRepository inspects the version control state of the files being edited.
type WorkspaceRepository interface {
	// HasUncommittedChanges reports whether path differs from the last commit.
	// Files outside a repository never have uncommitted changes.
	HasUncommittedChanges(path string) (bool, error)
}

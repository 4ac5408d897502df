package changeset

// NewHCLRepositoryWithEnviron creates an HCLRepository reading the given environment.
func NewHCLRepositoryWithEnviron(environ func() []string) *HCLRepository {
	return &HCLRepository{environ: environ}
}

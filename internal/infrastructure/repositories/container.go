package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gradlesync/internal/domain/repositories"
	csRepo "github.com/rios0rios0/gradlesync/internal/infrastructure/repositories/changeset"
	filesRepo "github.com/rios0rios0/gradlesync/internal/infrastructure/repositories/files"
	gitRepo "github.com/rios0rios0/gradlesync/internal/infrastructure/repositories/git"
	gradleRepo "github.com/rios0rios0/gradlesync/internal/infrastructure/repositories/gradle"
	xmlRepo "github.com/rios0rios0/gradlesync/internal/infrastructure/repositories/xmltree"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []interface{}{
		func() domainRepos.ScriptRepository { return gradleRepo.NewScriptRepository() },
		func() domainRepos.BuildRepository { return gradleRepo.NewBuildRepository() },
		func() domainRepos.EffectiveTreeRepository { return xmlRepo.NewTreeRepository() },
		func() domainRepos.ScriptStore { return filesRepo.NewScriptStore() },
		func() domainRepos.ProjectFinder { return filesRepo.NewProjectFinder() },
		func() domainRepos.WorkspaceRepository { return gitRepo.NewWorkspaceRepository() },
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	// Register change-set registry with all supported formats
	if err := container.Provide(func() *ChangeSetRegistry {
		reg := NewChangeSetRegistry()
		reg.Register(csRepo.NewYAMLRepository())
		reg.Register(csRepo.NewHCLRepository())
		return reg
	}); err != nil {
		return err
	}

	return nil
}

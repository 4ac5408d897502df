package changeset

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// HCLRepository decodes change sets written in HCL. Expressions may read the
// process environment through the "env" object (e.g. env.NEXUS_URL).
type HCLRepository struct {
	environ func() []string
}

var _ repositories.ChangeSetRepository = (*HCLRepository)(nil)

// NewHCLRepository creates an HCLRepository reading os.Environ.
func NewHCLRepository() *HCLRepository {
	return &HCLRepository{environ: os.Environ}
}

// hclChangeSet is the top-level structure of an HCL change set.
type hclChangeSet struct {
	Group               string `hcl:"group,optional"`
	Version             string `hcl:"version,optional"`
	ArchiveName         string `hcl:"archive_name,optional"`
	Packaging           string `hcl:"packaging,optional"`
	SourceCompatibility string `hcl:"source_compatibility,optional"`
	TargetCompatibility string `hcl:"target_compatibility,optional"`

	AddPlugins         []string          `hcl:"add_plugins,optional"`
	RemovePlugins      []string          `hcl:"remove_plugins,optional"`
	RemoveRepositories []string          `hcl:"remove_repositories,optional"`
	Properties         map[string]string `hcl:"properties,optional"`
	RemoveProperties   []string          `hcl:"remove_properties,optional"`

	AddDependencies           []*hclDependency `hcl:"add_dependency,block"`
	RemoveDependencies        []*hclDependency `hcl:"remove_dependency,block"`
	AddManagedDependencies    []*hclDependency `hcl:"add_managed_dependency,block"`
	RemoveManagedDependencies []*hclDependency `hcl:"remove_managed_dependency,block"`
	AddRepositories           []*hclRepository `hcl:"add_repository,block"`
	Tasks                     []*hclTask       `hcl:"task,block"`
}

type hclDependency struct {
	Configuration string   `hcl:"configuration,optional"`
	Coordinate    string   `hcl:"coordinate"`
	Exclusions    []string `hcl:"exclusions,optional"`
}

type hclRepository struct {
	Name string `hcl:"name,optional"`
	URL  string `hcl:"url"`
}

type hclTask struct {
	Name      string   `hcl:"name,label"`
	Type      string   `hcl:"type,optional"`
	Code      string   `hcl:"code,optional"`
	DependsOn []string `hcl:"depends_on,optional"`
}

func (r *HCLRepository) Name() string { return "hcl" }

func (r *HCLRepository) Extensions() []string { return []string{".hcl"} }

func (r *HCLRepository) Parse(data []byte, filename string) (*entities.ChangeSet, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	var parsed hclChangeSet
	if diags = gohcl.DecodeBody(file.Body, r.evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}

	changes := &entities.ChangeSet{
		Group:                     parsed.Group,
		Version:                   parsed.Version,
		ArchiveName:               parsed.ArchiveName,
		Packaging:                 parsed.Packaging,
		SourceCompatibility:       parsed.SourceCompatibility,
		TargetCompatibility:       parsed.TargetCompatibility,
		AddDependencies:           toDependencySpecs(parsed.AddDependencies),
		RemoveDependencies:        toDependencySpecs(parsed.RemoveDependencies),
		AddManagedDependencies:    toDependencySpecs(parsed.AddManagedDependencies),
		RemoveManagedDependencies: toDependencySpecs(parsed.RemoveManagedDependencies),
		AddPlugins:                parsed.AddPlugins,
		RemovePlugins:             parsed.RemovePlugins,
		RemoveRepositories:        parsed.RemoveRepositories,
		SetProperties:             parsed.Properties,
		RemoveProperties:          parsed.RemoveProperties,
	}
	for _, repo := range parsed.AddRepositories {
		changes.AddRepositories = append(changes.AddRepositories, entities.RepositorySpec{Name: repo.Name, URL: repo.URL})
	}
	for _, task := range parsed.Tasks {
		changes.Tasks = append(changes.Tasks, entities.TaskSpec{
			Name:      task.Name,
			Type:      task.Type,
			Code:      task.Code,
			DependsOn: task.DependsOn,
		})
	}
	return changes, nil
}

// evalContext exposes the environment as the "env" object.
func (r *HCLRepository) evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, entry := range r.environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !isIdentifier(key) {
			continue
		}
		env[key] = cty.StringVal(value)
	}

	envValue := cty.EmptyObjectVal
	if len(env) > 0 {
		envValue = cty.ObjectVal(env)
	}
	return &hcl.EvalContext{Variables: map[string]cty.Value{"env": envValue}}
}

// isIdentifier reports whether key can be used as an attribute name.
func isIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i, c := range key {
		letter := c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
		if !letter && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func toDependencySpecs(deps []*hclDependency) []entities.DependencySpec {
	specs := make([]entities.DependencySpec, 0, len(deps))
	for _, dep := range deps {
		specs = append(specs, entities.DependencySpec{
			Configuration: dep.Configuration,
			Coordinate:    dep.Coordinate,
			Exclusions:    dep.Exclusions,
		})
	}
	return specs
}

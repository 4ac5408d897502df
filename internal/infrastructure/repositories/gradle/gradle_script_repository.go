package gradle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

const (
	dependenciesBlock = "dependencies"
	managedBlock      = "managed"
	repositoriesBlock = "repositories"
	pluginsBlock      = "plugins"
	buildscriptBlock  = "buildscript"
	archiveBlock      = "tasks.withType(AbstractArchiveTask)"
	directConfig      = "direct"
)

var (
	// compile 'g:n:v' / compile("g:n:v") {
	stringNotationPattern = regexp.MustCompile(
		`^\s*([A-Za-z_]\w*)\s*\(?\s*['"]([^'"]+)['"]\s*\)?\s*(\{)?\s*$`,
	)
	// compile group: 'g', name: 'n', version: 'v'
	mapNotationPattern = regexp.MustCompile(
		`^\s*([A-Za-z_]\w*)\s*\(?\s*((?:\w+\s*:\s*['"][^'"]*['"]\s*,?\s*)+)\)?\s*(\{)?\s*$`,
	)
	attributePattern   = regexp.MustCompile(`(\w+)\s*:\s*['"]([^'"]*)['"]`)
	excludePattern     = regexp.MustCompile(`^\s*exclude\s*\(?\s*group\s*:\s*['"]([^'"]*)['"]\s*,\s*module\s*:\s*['"]([^'"]*)['"]`)
	applyPluginPattern = regexp.MustCompile(`(?m)^[ \t]*apply\s*\(?\s*plugin\s*:\s*['"]([^'"]+)['"]\s*\)?[ \t]*;?[ \t]*$`)
	pluginIDPattern    = regexp.MustCompile(`^\s*id\s*\(?\s*['"]([^'"]+)['"]`)
	mavenStartPattern  = regexp.MustCompile(`^\s*maven\s*\{`)
	urlPattern         = regexp.MustCompile(`url\s*=?\s*\(?\s*(?:uri\s*\(\s*)?['"]([^'"]+)['"]`)
	namePattern        = regexp.MustCompile(`name\s*=?\s*['"]([^'"]+)['"]`)
	extPropertyPattern = regexp.MustCompile(`(?m)^ext\.([\w.]+)[ \t]*=[ \t]*(.*?)[ \t]*$`)
	archiveNamePattern = regexp.MustCompile(`(?m)^[ \t]*archiveName[ \t]*=.*$`)
)

type knownRepository struct {
	call string
	name string
	url  string
}

// knownRepositories maps repository shortcut calls to their name and URL.
func knownRepositories() []knownRepository {
	local := "file:.m2/repository/"
	if home, err := os.UserHomeDir(); err == nil {
		local = "file:" + filepath.ToSlash(filepath.Join(home, ".m2", "repository")) + "/"
	}
	return []knownRepository{
		{call: "mavenCentral()", name: "MavenRepo", url: "https://repo1.maven.org/maven2/"},
		{call: "jcenter()", name: "BintrayJCenter", url: "https://jcenter.bintray.com/"},
		{call: "google()", name: "Google", url: "https://dl.google.com/dl/android/maven2/"},
		{call: "mavenLocal()", name: "MavenLocal", url: local},
	}
}

// ScriptRepository edits Groovy build scripts line by line.
type ScriptRepository struct{}

var _ repositories.ScriptRepository = (*ScriptRepository)(nil)

// NewScriptRepository creates a ScriptRepository.
func NewScriptRepository() *ScriptRepository {
	return &ScriptRepository{}
}

// declaration is a dependency statement and the byte range it occupies.
type declaration struct {
	dep   entities.Dependency
	start int
	end   int
}

func (r *ScriptRepository) GetDependencies(script string) []entities.Dependency {
	return filterDependencies(script, dependenciesBlock, func(dep entities.Dependency) bool {
		return dep.Configuration() != entities.ConfigurationDirect
	})
}

func (r *ScriptRepository) GetDirectDependencies(script string) []entities.Dependency {
	return filterDependencies(script, dependenciesBlock, func(dep entities.Dependency) bool {
		return dep.Configuration() == entities.ConfigurationDirect
	})
}

func (r *ScriptRepository) GetManagedDependencies(script string) []entities.Dependency {
	return filterDependencies(script, managedBlock, func(entities.Dependency) bool { return true })
}

func filterDependencies(script, header string, keep func(entities.Dependency) bool) []entities.Dependency {
	declarations, _ := declarationsIn(script, header)
	var deps []entities.Dependency
	for _, decl := range declarations {
		if keep(decl.dep) {
			deps = append(deps, decl.dep)
		}
	}
	return deps
}

// declarationsIn parses the dependency statements of the top-level block header.
func declarationsIn(source, header string) ([]declaration, error) {
	b, found, err := findBlock(source, header)
	if err != nil || !found {
		return nil, err
	}

	lines := linesIn(source, b.open+1, b.close)
	var declarations []declaration
	for i := 0; i < len(lines); i++ {
		builder, opensClosure, ok := parseDependencyLine(lines[i].text)
		if !ok {
			continue
		}

		decl := declaration{start: lines[i].start, end: lines[i].end}
		if opensClosure {
			var exclusions []entities.Dependency
			for i+1 < len(lines) {
				i++
				decl.end = lines[i].end
				if strings.TrimSpace(codeOf(lines[i].text)) == "}" {
					break
				}
				if match := excludePattern.FindStringSubmatch(lines[i].text); match != nil {
					exclusions = append(exclusions,
						entities.NewDependencyBuilder().WithGroup(match[1]).WithName(match[2]).Build())
				}
			}
			if len(exclusions) > 0 {
				builder.WithExcludedDependencies(exclusions)
			}
		}
		decl.dep = builder.Build()
		declarations = append(declarations, decl)
	}
	return declarations, nil
}

// parseDependencyLine recognizes string and map notation declarations.
func parseDependencyLine(text string) (*entities.DependencyBuilder, bool, bool) {
	text = codeOf(text)
	if match := stringNotationPattern.FindStringSubmatch(text); match != nil {
		dep, err := entities.ParseDependency(match[1], match[2])
		if err != nil {
			return nil, false, false
		}
		return entities.NewDependencyBuilderFrom(dep), match[3] != "", true
	}

	match := mapNotationPattern.FindStringSubmatch(text)
	if match == nil {
		return nil, false, false
	}
	attributes := make(map[string]string)
	for _, attr := range attributePattern.FindAllStringSubmatch(match[2], -1) {
		attributes[attr[1]] = attr[2]
	}
	if attributes["group"] == "" || attributes["name"] == "" {
		return nil, false, false
	}

	builder := entities.NewDependencyBuilder().
		WithConfigurationName(match[1]).
		WithGroup(attributes["group"]).
		WithName(attributes["name"]).
		WithVersion(attributes["version"]).
		WithClassifier(attributes["classifier"])
	if ext := attributes["ext"]; ext != "" {
		builder.WithPackaging(ext)
	}
	return builder, match[3] != "", true
}

func sameDeclaration(a, b entities.Dependency) bool {
	return a.Coordinate() == b.Coordinate() && a.ConfigurationName() == b.ConfigurationName()
}

// sameExclusions compares the group+name exclusions of a and b in order.
func sameExclusions(a, b entities.Dependency) bool {
	return slices.EqualFunc(a.ExcludedDependencies(), b.ExcludedDependencies(), func(x, y entities.Dependency) bool {
		return x.Group() == y.Group() && x.Name() == y.Name()
	})
}

func renderDependency(dep entities.Dependency) string {
	exclusions := dep.ExcludedDependencies()
	if len(exclusions) == 0 {
		return fmt.Sprintf("%s%s %s", indent, dep.ConfigurationName(), quote(dep.Coordinate()))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s(%s) {\n", indent, dep.ConfigurationName(), quote(dep.Coordinate()))
	for _, exclusion := range exclusions {
		fmt.Fprintf(&sb, "%s%sexclude group: %s, module: %s\n",
			indent, indent, quote(exclusion.Group()), quote(exclusion.Name()))
	}
	sb.WriteString(indent + "}")
	return sb.String()
}

func insertDeclaration(source, header string, dep entities.Dependency) (string, error) {
	declarations, err := declarationsIn(source, header)
	if err != nil {
		return "", err
	}
	for _, decl := range declarations {
		if !sameDeclaration(decl.dep, dep) {
			continue
		}
		if sameExclusions(decl.dep, dep) {
			return source, nil
		}
		// Same declaration with other exclusions: rewrite it in place.
		return source[:decl.start] + renderDependency(dep) + source[decl.end:], nil
	}
	return insertIntoBlock(source, header, renderDependency(dep))
}

func removeDeclaration(source, header string, matches func(entities.Dependency) bool) (string, error) {
	declarations, err := declarationsIn(source, header)
	if err != nil {
		return "", err
	}
	// Remove back to front so earlier offsets stay valid.
	for i := len(declarations) - 1; i >= 0; i-- {
		if matches(declarations[i].dep) {
			source = removeRange(source, declarations[i].start, declarations[i].end)
		}
	}
	return source, nil
}

func (r *ScriptRepository) InsertDependency(script string, dep entities.Dependency) (string, error) {
	return insertDeclaration(script, dependenciesBlock, dep)
}

func (r *ScriptRepository) RemoveDependency(script string, dep entities.Dependency) (string, error) {
	return removeDeclaration(script, dependenciesBlock, func(candidate entities.Dependency) bool {
		return sameDeclaration(candidate, dep) && sameExclusions(candidate, dep)
	})
}

func (r *ScriptRepository) InsertDirectDependency(script, group, name string) (string, error) {
	declarations, err := declarationsIn(script, dependenciesBlock)
	if err != nil {
		return "", err
	}
	for _, decl := range declarations {
		if isDirect(decl.dep, group, name) {
			return script, nil
		}
	}
	entry := fmt.Sprintf("%s%s group: %s, name: %s", indent, directConfig, quote(group), quote(name))
	return insertIntoBlock(script, dependenciesBlock, entry)
}

func (r *ScriptRepository) RemoveDirectDependency(script, group, name string) (string, error) {
	return removeDeclaration(script, dependenciesBlock, func(candidate entities.Dependency) bool {
		return isDirect(candidate, group, name)
	})
}

func isDirect(dep entities.Dependency, group, name string) bool {
	return dep.Configuration() == entities.ConfigurationDirect && dep.Group() == group && dep.Name() == name
}

func (r *ScriptRepository) InsertManagedDependency(script string, dep entities.Dependency) (string, error) {
	return insertDeclaration(script, managedBlock, dep)
}

func (r *ScriptRepository) RemoveManagedDependency(script string, dep entities.Dependency) (string, error) {
	return removeDeclaration(script, managedBlock, func(candidate entities.Dependency) bool {
		return sameDeclaration(candidate, dep) && sameExclusions(candidate, dep)
	})
}

// pluginLine is a plugin declaration and the byte range of its line.
type pluginLine struct {
	plugin entities.Plugin
	start  int
	end    int
}

// pluginLines returns the "apply plugin:" lines and the ids of the plugins block.
func pluginLines(script string) []pluginLine {
	var plugins []pluginLine
	for _, match := range applyPluginPattern.FindAllStringSubmatchIndex(script, -1) {
		plugins = append(plugins, pluginLine{
			plugin: entities.PluginFromID(script[match[2]:match[3]]),
			start:  match[0],
			end:    match[1],
		})
	}

	if b, found, err := findBlock(script, pluginsBlock); err == nil && found {
		for _, l := range linesIn(script, b.open+1, b.close) {
			if match := pluginIDPattern.FindStringSubmatch(l.text); match != nil {
				plugins = append(plugins, pluginLine{plugin: entities.PluginFromID(match[1]), start: l.start, end: l.end})
			}
		}
	}
	return plugins
}

func (r *ScriptRepository) GetPlugins(script string) []entities.Plugin {
	var plugins []entities.Plugin
	for _, l := range pluginLines(script) {
		plugins = append(plugins, l.plugin)
	}
	return plugins
}

// InsertPlugin adds an "apply plugin:" line after the last one, or after the
// plugins or buildscript block, or at the top of the script.
func (r *ScriptRepository) InsertPlugin(script, id string) (string, error) {
	plugin := entities.PluginFromID(id)
	for _, l := range pluginLines(script) {
		if l.plugin.Equal(plugin) {
			return script, nil
		}
	}

	entry := "apply plugin: " + quote(id) + "\n"
	if matches := applyPluginPattern.FindAllStringIndex(script, -1); len(matches) > 0 {
		at := matches[len(matches)-1][1]
		if at < len(script) && script[at] == '\n' {
			return script[:at+1] + entry + script[at+1:], nil
		}
		return script[:at] + "\n" + entry + script[at:], nil
	}

	// Nothing but buildscript may precede a plugins block.
	for _, header := range []string{pluginsBlock, buildscriptBlock} {
		b, found, err := findBlock(script, header)
		if err != nil {
			return "", err
		}
		if found {
			at := b.close + 1
			return script[:at] + "\n\n" + strings.TrimSuffix(entry, "\n") + script[at:], nil
		}
	}
	return entry + script, nil
}

func (r *ScriptRepository) RemovePlugin(script, id string) (string, error) {
	plugin := entities.PluginFromID(id)
	lines := pluginLines(script)
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].plugin.Equal(plugin) {
			start := strings.LastIndexByte(script[:lines[i].start], '\n') + 1
			script = removeRange(script, start, lines[i].end)
		}
	}
	return script, nil
}

// repositoryEntry is a repository declaration inside the repositories block.
type repositoryEntry struct {
	repo  entities.Repository
	start int
	end   int
}

func repositoryEntries(script string) ([]repositoryEntry, error) {
	b, found, err := findBlock(script, repositoriesBlock)
	if err != nil || !found {
		return nil, err
	}

	var entries []repositoryEntry
	shortcuts := knownRepositories()
	lines := linesIn(script, b.open+1, b.close)
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		trimmed := strings.TrimSpace(l.text)

		for _, known := range shortcuts {
			if trimmed == known.call {
				entries = append(entries, repositoryEntry{
					repo:  entities.NewRepositoryBuilder().WithName(known.name).WithURL(known.url).Build(),
					start: l.start,
					end:   l.end,
				})
			}
		}

		if !mavenStartPattern.MatchString(l.text) {
			continue
		}
		open := l.start + strings.IndexByte(l.text, '{')
		closing, ok := matchBrace(script, open)
		if !ok || closing > b.close {
			return nil, fmt.Errorf("%w: unclosed maven repository", ErrMalformedScript)
		}
		content := script[open+1 : closing]
		entry := repositoryEntry{start: l.start, end: closing + 1}
		for i+1 < len(lines) && lines[i+1].start <= closing {
			i++
			entry.end = lines[i].end
		}

		builder := entities.NewRepositoryBuilder()
		if match := urlPattern.FindStringSubmatch(content); match != nil {
			builder.WithURL(match[1])
		}
		if match := namePattern.FindStringSubmatch(content); match != nil {
			builder.WithName(match[1])
		}
		entry.repo = builder.Build()
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *ScriptRepository) GetRepositories(script string) []entities.Repository {
	entries, _ := repositoryEntries(script)
	var repos []entities.Repository
	for _, entry := range entries {
		repos = append(repos, entry.repo)
	}
	return repos
}

func (r *ScriptRepository) InsertRepository(script, url string) (string, error) {
	entries, err := repositoryEntries(script)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.repo.URL() == url {
			return script, nil
		}
	}

	line := fmt.Sprintf("%smaven { url %s }", indent, quote(url))
	for _, known := range knownRepositories() {
		if known.url == url {
			line = indent + known.call
		}
	}
	return insertIntoBlock(script, repositoriesBlock, line)
}

func (r *ScriptRepository) RemoveRepository(script, url string) (string, error) {
	entries, err := repositoryEntries(script)
	if err != nil {
		return "", err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].repo.URL() == url {
			script = removeRange(script, entries[i].start, entries[i].end)
		}
	}
	return script, nil
}

func (r *ScriptRepository) GetDirectProperties(script string) map[string]string {
	properties := make(map[string]string)
	for _, match := range extPropertyPattern.FindAllStringSubmatch(script, -1) {
		properties[match[1]] = unquote(match[2])
	}
	return properties
}

func propertyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `[ \t]*=.*$`)
}

// SetProperty replaces the top-level "key = ..." line, or adds one after the last
// project property.
func (r *ScriptRepository) SetProperty(script, key, value string) (string, error) {
	entry := key + " = " + quote(value)
	if loc := propertyPattern(key).FindStringIndex(script); loc != nil {
		return script[:loc[0]] + entry + script[loc[1]:], nil
	}
	if existing := extPropertyPattern.FindAllStringIndex(script, -1); len(existing) > 0 {
		at := existing[len(existing)-1][1]
		return script[:at] + "\n" + entry + script[at:], nil
	}
	return appendText(script, entry+"\n"), nil
}

func (r *ScriptRepository) RemoveProperty(script, key string) (string, error) {
	pattern := propertyPattern(key)
	for {
		loc := pattern.FindStringIndex(script)
		if loc == nil {
			return script, nil
		}
		script = removeRange(script, loc[0], loc[1])
	}
}

// SetArchiveName names every archive NAME.<extension> through the archive task defaults.
func (r *ScriptRepository) SetArchiveName(script, name string) (string, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "\n", `\n`, "\r", `\r`).Replace(name)
	entry := indent + `archiveName = "` + escaped + `.${extension}"`

	b, found, err := findBlock(script, archiveBlock)
	if err != nil {
		return "", err
	}
	if !found {
		return appendText(script, archiveBlock+" {\n"+entry+"\n}\n"), nil
	}

	body := script[b.open+1 : b.close]
	if loc := archiveNamePattern.FindStringIndex(body); loc != nil {
		start, end := b.open+1+loc[0], b.open+1+loc[1]
		return script[:start] + entry + script[end:], nil
	}
	return insertBeforeClose(script, b, entry), nil
}

// InsertTask appends a task declaration unless a task with that name is declared.
func (r *ScriptRepository) InsertTask(script, name string, dependsOn []string, typ, code string) (string, error) {
	declared := regexp.MustCompile(`(?m)^[ \t]*task[ \t]+` + regexp.QuoteMeta(name) + `\b`)
	if declared.MatchString(script) {
		return script, nil
	}

	var params []string
	if typ != "" {
		params = append(params, "type: "+typ)
	}
	if len(dependsOn) > 0 {
		quoted := make([]string, 0, len(dependsOn))
		for _, dep := range dependsOn {
			quoted = append(quoted, quote(dep))
		}
		params = append(params, "dependsOn: ["+strings.Join(quoted, ", ")+"]")
	}

	var sb strings.Builder
	sb.WriteString("task " + name)
	if len(params) > 0 {
		sb.WriteString("(" + strings.Join(params, ", ") + ")")
	}
	if code = strings.TrimSpace(code); code != "" {
		sb.WriteString(" {\n")
		for _, codeLine := range strings.Split(code, "\n") {
			if strings.TrimSpace(codeLine) != "" {
				sb.WriteString(indent + strings.TrimRight(codeLine, " \t"))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("}")
	}
	sb.WriteString("\n")

	return appendText(script, sb.String()), nil
}

//go:build unit

package gradle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/infrastructure/repositories/gradle"
)

const fullScript = `buildscript {
    dependencies {
        classpath 'org.example:gradle-plugin:1.0'
    }
}

apply plugin: 'java'
apply plugin: 'war'

ext.env = 'dev'
ext.owner = "team-a"

repositories {
    mavenCentral()
    maven {
        name = 'corp'
        url 'https://nexus.example/repo'
    }
}

dependencies {
    // compile 'commented:out:1.0'
    compile 'com.google.guava:guava:19.0'
    runtime group: 'org.postgresql', name: 'postgresql', version: '42.2.5'
    testCompile('junit:junit:4.12') {
        exclude group: 'org.hamcrest', module: 'hamcrest-core'
    }
    direct group: 'org.slf4j', name: 'slf4j-api'
}

managed {
    import 'org.springframework:spring-framework-bom:5.1.0@pom'
}
`

func mustParse(t *testing.T, config, coordinate string) entities.Dependency {
	t.Helper()
	dep, err := entities.ParseDependency(config, coordinate)
	require.NoError(t, err)
	return dep
}

func TestScriptRepositoryDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should read string map and closure declarations", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		deps := repo.GetDependencies(fullScript)

		// then
		require.Len(t, deps, 3)
		assert.Equal(t, "compile com.google.guava:guava:19.0", deps[0].String())
		assert.Equal(t, "runtime org.postgresql:postgresql:42.2.5", deps[1].String())
		assert.Equal(t, "testCompile junit:junit:4.12", deps[2].String())
		require.Len(t, deps[2].ExcludedDependencies(), 1)
		assert.Equal(t, "hamcrest-core", deps[2].ExcludedDependencies()[0].Name())
	})

	t.Run("should read shorthand declarations separately", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		deps := repo.GetDirectDependencies(fullScript)

		// then
		require.Len(t, deps, 1)
		assert.Equal(t, entities.ConfigurationDirect, deps[0].Configuration())
		assert.Equal(t, "org.slf4j", deps[0].Group())
		assert.Equal(t, "slf4j-api", deps[0].Name())
	})

	t.Run("should read managed declarations", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		deps := repo.GetManagedDependencies(fullScript)

		// then
		require.Len(t, deps, 1)
		assert.Equal(t, entities.ConfigurationImport, deps[0].Configuration())
		assert.Equal(t, "pom", deps[0].Packaging())
	})

	t.Run("should insert a declaration before the closing brace", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "dependencies {\n    compile 'a:a:1'\n}\n"

		// when
		result, err := repo.InsertDependency(script, mustParse(t, "runtime", "b:b:2:jdk8"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "dependencies {\n    compile 'a:a:1'\n    runtime 'b:b:2:jdk8'\n}\n", result)
	})

	t.Run("should not insert an existing declaration twice", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.InsertDependency(fullScript, mustParse(t, "compile", "com.google.guava:guava:19.0"))

		// then
		require.NoError(t, err)
		assert.Equal(t, fullScript, result)
	})

	t.Run("should create the block when the script has none", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "apply plugin: 'java'\n"

		// when
		result, err := repo.InsertDependency(script, mustParse(t, "compile", "a:a:1"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "apply plugin: 'java'\n\ndependencies {\n    compile 'a:a:1'\n}\n", result)
	})

	t.Run("should render exclusions as a closure", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		exclusion := entities.NewDependencyBuilder().WithGroup("x").WithName("y").Build()
		dep := entities.NewDependencyBuilderFrom(mustParse(t, "compile", "a:a:1")).
			WithExcludedDependencies([]entities.Dependency{exclusion}).
			Build()

		// when
		result, err := repo.InsertDependency("dependencies {\n}\n", dep)

		// then
		require.NoError(t, err)
		assert.Equal(t, "dependencies {\n    compile('a:a:1') {\n        exclude group: 'x', module: 'y'\n    }\n}\n", result)
		assert.True(t, repo.GetDependencies(result)[0].Equal(dep))
	})

	t.Run("should remove a declaration together with its closure", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		junit := repo.GetDependencies(fullScript)[2]

		// when
		result, err := repo.RemoveDependency(fullScript, junit)

		// then
		require.NoError(t, err)
		assert.NotContains(t, result, "junit")
		assert.NotContains(t, result, "hamcrest")
		assert.Len(t, repo.GetDependencies(result), 2)
		assert.Contains(t, result, "    // compile 'commented:out:1.0'\n")
	})

	t.Run("should read declarations followed by a comment or separator", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "dependencies {\n" +
			"    compile 'com.acme:lib:1.0' // pinned\n" +
			"    runtime group: 'com.acme', name: 'driver', version: '2.0';\n" +
			"    testCompile('junit:junit:4.12') { /* slow */\n" +
			"        exclude group: 'x', module: 'y'\n" +
			"    } // tests\n" +
			"}\n"

		// when
		deps := repo.GetDependencies(script)
		result, err := repo.InsertDependency(script, mustParse(t, "compile", "com.acme:lib:1.0"))

		// then
		require.Len(t, deps, 3)
		assert.Equal(t, "compile com.acme:lib:1.0", deps[0].String())
		assert.Equal(t, "runtime com.acme:driver:2.0", deps[1].String())
		assert.Len(t, deps[2].ExcludedDependencies(), 1)
		require.NoError(t, err)
		assert.Equal(t, script, result)
	})

	t.Run("should rewrite a declaration whose exclusions changed", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "dependencies {\n    compile 'com.acme:lib:1.0'\n    runtime 'b:b:1'\n}\n"
		exclusion := entities.NewDependencyBuilder().WithGroup("x").WithName("y").Build()
		dep := entities.NewDependencyBuilderFrom(mustParse(t, "compile", "com.acme:lib:1.0")).
			WithExcludedDependencies([]entities.Dependency{exclusion}).
			Build()

		// when
		result, err := repo.InsertDependency(script, dep)

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"dependencies {\n    compile('com.acme:lib:1.0') {\n        exclude group: 'x', module: 'y'\n    }\n    runtime 'b:b:1'\n}\n",
			result,
		)
	})

	t.Run("should only remove the declaration with the same exclusions", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "dependencies {\n    compile('com.acme:lib:1.0') {\n        exclude group: 'x', module: 'y'\n    }\n}\n"

		// when
		result, err := repo.RemoveDependency(script, mustParse(t, "compile", "com.acme:lib:1.0"))

		// then
		require.NoError(t, err)
		assert.Equal(t, script, result)
	})

	t.Run("should leave the script unchanged when removing a missing declaration", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.RemoveDependency(fullScript, mustParse(t, "compile", "not:there:1"))

		// then
		require.NoError(t, err)
		assert.Equal(t, fullScript, result)
	})

	t.Run("should insert and remove shorthand declarations", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		inserted, insertErr := repo.InsertDirectDependency("dependencies {\n}\n", "org.example", "lib")
		removed, removeErr := repo.RemoveDirectDependency(inserted, "org.example", "lib")

		// then
		require.NoError(t, insertErr)
		require.NoError(t, removeErr)
		assert.Equal(t, "dependencies {\n    direct group: 'org.example', name: 'lib'\n}\n", inserted)
		assert.Equal(t, "dependencies {\n}\n", removed)
	})

	t.Run("should report an unclosed block", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		_, err := repo.InsertDependency("dependencies {\n    compile 'a:a:1'\n", mustParse(t, "compile", "b:b:1"))

		// then
		require.ErrorIs(t, err, gradle.ErrMalformedScript)
	})
}

func TestScriptRepositoryPlugins(t *testing.T) {
	t.Parallel()

	t.Run("should read apply lines and the plugins block", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "plugins {\n    id 'idea'\n}\n\napply plugin: 'java'\n"

		// when
		plugins := repo.GetPlugins(script)

		// then
		require.Len(t, plugins, 2)
		assert.Equal(t, "java", plugins[0].ShortName())
		assert.Equal(t, "idea", plugins[1].ShortName())
	})

	t.Run("should insert after the last apply line", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "apply plugin: 'java'\n\ndependencies {\n}\n"

		// when
		result, err := repo.InsertPlugin(script, "war")

		// then
		require.NoError(t, err)
		assert.Equal(t, "apply plugin: 'java'\napply plugin: 'war'\n\ndependencies {\n}\n", result)
	})

	t.Run("should insert after the buildscript block", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "buildscript {\n}\n\nversion = '1.0'\n"

		// when
		result, err := repo.InsertPlugin(script, "ear")

		// then
		require.NoError(t, err)
		assert.Equal(t, "buildscript {\n}\n\napply plugin: 'ear'\n\nversion = '1.0'\n", result)
	})

	t.Run("should insert after the plugins block", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "buildscript {\n}\n\nplugins {\n    id 'java'\n}\n\nversion = '1.0'\n"

		// when
		result, err := repo.InsertPlugin(script, "war")

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"buildscript {\n}\n\nplugins {\n    id 'java'\n}\n\napply plugin: 'war'\n\nversion = '1.0'\n",
			result,
		)
	})

	t.Run("should insert at the top of a script without anchors", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.InsertPlugin("version = '1.0'\n", "java")

		// then
		require.NoError(t, err)
		assert.Equal(t, "apply plugin: 'java'\nversion = '1.0'\n", result)
	})

	t.Run("should not insert a plugin applied by class name", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.InsertPlugin(fullScript, "org.gradle.api.plugins.WarPlugin")

		// then
		require.NoError(t, err)
		assert.Equal(t, fullScript, result)
	})

	t.Run("should remove the apply line", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.RemovePlugin(fullScript, "war")

		// then
		require.NoError(t, err)
		assert.NotContains(t, result, "apply plugin: 'war'")
		assert.Contains(t, result, "apply plugin: 'java'\n\next.env")
	})
}

func TestScriptRepositoryRepositories(t *testing.T) {
	t.Parallel()

	t.Run("should read shortcut and maven repositories", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		repos := repo.GetRepositories(fullScript)

		// then
		require.Len(t, repos, 2)
		assert.Equal(t, "MavenRepo", repos[0].Name())
		assert.Equal(t, "https://repo1.maven.org/maven2/", repos[0].URL())
		assert.Equal(t, "corp", repos[1].Name())
		assert.Equal(t, "https://nexus.example/repo", repos[1].URL())
	})

	t.Run("should insert a known repository as its shortcut", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.InsertRepository("repositories {\n}\n", "https://jcenter.bintray.com/")

		// then
		require.NoError(t, err)
		assert.Equal(t, "repositories {\n    jcenter()\n}\n", result)
	})

	t.Run("should insert other repositories as maven blocks", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.InsertRepository("repositories {\n}\n", "https://repo.example/")

		// then
		require.NoError(t, err)
		assert.Equal(t, "repositories {\n    maven { url 'https://repo.example/' }\n}\n", result)
	})

	t.Run("should remove a multi-line maven block", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.RemoveRepository(fullScript, "https://nexus.example/repo")

		// then
		require.NoError(t, err)
		assert.Contains(t, result, "repositories {\n    mavenCentral()\n}\n")
	})
}

func TestScriptRepositoryProperties(t *testing.T) {
	t.Parallel()

	t.Run("should read project properties without the prefix", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		properties := repo.GetDirectProperties(fullScript)

		// then
		assert.Equal(t, map[string]string{"env": "dev", "owner": "team-a"}, properties)
	})

	t.Run("should replace an existing property", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.SetProperty(fullScript, "ext.env", "prod")

		// then
		require.NoError(t, err)
		assert.Contains(t, result, "ext.env = 'prod'\next.owner")
	})

	t.Run("should add a property after the last project property", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.SetProperty(fullScript, "ext.region", "eu")

		// then
		require.NoError(t, err)
		assert.Contains(t, result, "ext.owner = \"team-a\"\next.region = 'eu'\n")
		assert.Equal(t, "eu", repo.GetDirectProperties(result)["region"])
	})

	t.Run("should append a scalar property", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.SetProperty("apply plugin: 'java'\n", "version", "1.2.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, "apply plugin: 'java'\n\nversion = '1.2.0'\n", result)
	})

	t.Run("should escape line breaks in values", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.SetProperty("", "ext.note", "first\nsecond 'quoted'")

		// then
		require.NoError(t, err)
		assert.Equal(t, "ext.note = 'first\\nsecond \\'quoted\\''\n", result)
		assert.Equal(t, "first\nsecond 'quoted'", repo.GetDirectProperties(result)["note"])
	})

	t.Run("should remove a property", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.RemoveProperty(fullScript, "ext.env")

		// then
		require.NoError(t, err)
		assert.NotContains(t, result, "ext.env")
		assert.Contains(t, result, "ext.owner")
	})
}

func TestScriptRepositoryArchiveAndTasks(t *testing.T) {
	t.Parallel()

	t.Run("should add the archive name block", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.SetArchiveName("", "app")

		// then
		require.NoError(t, err)
		assert.Equal(t, "tasks.withType(AbstractArchiveTask) {\n    archiveName = \"app.${extension}\"\n}\n", result)
	})

	t.Run("should replace the archive name in place", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "tasks.withType(AbstractArchiveTask) {\n    archiveName = 'old.jar'\n    destinationDir = file('dist')\n}\n"

		// when
		result, err := repo.SetArchiveName(script, "new")

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"tasks.withType(AbstractArchiveTask) {\n    archiveName = \"new.${extension}\"\n    destinationDir = file('dist')\n}\n",
			result,
		)
	})

	t.Run("should append a task declaration", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()

		// when
		result, err := repo.InsertTask("apply plugin: 'java'\n", "dist", []string{"jar"}, "Zip", "from 'build/libs'")

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"apply plugin: 'java'\n\ntask dist(type: Zip, dependsOn: ['jar']) {\n    from 'build/libs'\n}\n",
			result,
		)
	})

	t.Run("should not insert a task that already exists", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gradle.NewScriptRepository()
		script := "task hello {\n    doLast { println 'hi' }\n}\n"

		// when
		result, err := repo.InsertTask(script, "hello", nil, "", "")

		// then
		require.NoError(t, err)
		assert.Equal(t, script, result)
	})
}

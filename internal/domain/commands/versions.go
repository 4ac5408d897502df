package commands

import (
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
)

// isOlderVersion reports whether next is a semver downgrade of current.
// Versions that are not semver are never reported.
func isOlderVersion(current, next string) bool {
	currentNorm := normalizeVersion(current)
	nextNorm := normalizeVersion(next)
	if !semver.IsValid(currentNorm) || !semver.IsValid(nextNorm) {
		return false
	}
	return semver.Compare(nextNorm, currentNorm) < 0
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// warnDowngrades logs every project or dependency version lowered from oldModel to newModel.
func warnDowngrades(oldModel, newModel *entities.BuildModel) int {
	count := 0
	if isOlderVersion(oldModel.Version(), newModel.Version()) {
		logger.Warnf("Project version is lowered from %s to %s", oldModel.Version(), newModel.Version())
		count++
	}

	previous := make(map[string]string)
	for _, dep := range oldModel.Dependencies() {
		previous[dep.Group()+":"+dep.Name()] = dep.Version()
	}
	for _, dep := range newModel.Dependencies() {
		key := dep.Group() + ":" + dep.Name()
		if old, ok := previous[key]; ok && isOlderVersion(old, dep.Version()) {
			logger.Warnf("Dependency %s is downgraded from %s to %s", key, old, dep.Version())
			count++
		}
	}
	return count
}

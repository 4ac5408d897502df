package commands

// ArchiveNameFromPath exports archiveNameFromPath for testing.
var ArchiveNameFromPath = archiveNameFromPath //nolint:gochecknoglobals // test export

// IsOlderVersion exports isOlderVersion for testing.
var IsOlderVersion = isOlderVersion //nolint:gochecknoglobals // test export

// WarnDowngrades exports warnDowngrades for testing.
var WarnDowngrades = warnDowngrades //nolint:gochecknoglobals // test export

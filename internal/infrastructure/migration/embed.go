package migration

import "embed"

// Scripts holds the versioned SQL migrations, one directory per dialect.
//
//go:embed scripts
var Scripts embed.FS

// SourceDir is where `migrate create` writes new scripts, relative to the
// repository root.
const SourceDir = "internal/infrastructure/migration/scripts"

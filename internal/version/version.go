package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/merkabah-engine/merkabah-install/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/merkabah-engine/merkabah-install/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/merkabah-engine/merkabah-install/internal/version.Date={{.Date}}
)

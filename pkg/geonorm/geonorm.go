package geonorm

// Config holds configuration for a rename pass.
type Config struct {
	// Root is the directory tree to scan.
	Root string

	// OutDir, when set, switches to export mode: matches are copied under
	// their normalized names into this tree instead of renamed in place.
	OutDir string

	// DryRun previews the pass without touching the filesystem.
	DryRun bool

	// Status is embedded in every generated name: "success" or "failure".
	Status string

	// Decode opens each image before renaming and skips ones that fail.
	Decode bool

	// VerifyGPS warns when a file's EXIF GPS tags disagree with the
	// coordinates in its name.
	VerifyGPS bool
}

// Stats counts what a pass did. Every eligible file lands in exactly one
// of Renamed or Skipped, so Total always equals their sum.
type Stats struct {
	Total   int
	Renamed int
	Skipped int
}

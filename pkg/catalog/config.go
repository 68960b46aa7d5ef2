package catalog

// Arguments holds the configuration options for a catalog run.
//
// The fixed marker, file names, URLs, and fallback values of the catalog
// format live here instead of being scattered through the rendering code, so
// a run's behavior is fully described by one value.
type Arguments struct {
	Root               string // Pack root directory whose immediate children are mod folders.
	DescriptorName     string // Name of the per-folder metadata descriptor file.
	OutputName         string // Name of the catalog file, created/appended in the pack root.
	DownloadBaseURL    string // Base URL joined with "<folder>.zip" to form each download link.
	HomepageURL        string // Homepage URL recorded for every mod.
	Marker             string // Discriminator value an entry must carry to qualify.
	UnknownValue       string // Fallback for missing ident, authors, maintainers, and category.
	DefaultDescription string // Fallback for a missing description.
	Validate           bool   // If true, re-parse the emitted document as YAML and warn if invalid.
}

// DefaultArguments returns the Arguments for a standard pack catalog run.
func DefaultArguments() Arguments {
	return Arguments{
		Root:               ".",
		DescriptorName:     "modinfo.json",
		OutputName:         "all_modinfo.yaml",
		DownloadBaseURL:    "https://alist.doiiars.com/d/Public/Cataclysmdda",
		HomepageURL:        "https://github.com/Kenan2000/CDDA-Structured-Kenan-Modpack",
		Marker:             "MOD_INFO",
		UnknownValue:       "unknown",
		DefaultDescription: "No description provided.",
	}
}

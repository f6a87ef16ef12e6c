// Package buildinfo carries the version stamped in with -ldflags "-X".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the release version, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Banner is the one-line program identifier shown on the boot screen and in
// the window title.
func Banner() string {
	s := "cpboy " + Short()
	if Date != "" && Date != "unknown" {
		s += " " + Date
	}
	return s
}

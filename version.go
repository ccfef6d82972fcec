package flaglog

import "fmt"

// Version components of the library.
const (
	VersionMajor = 1
	VersionMinor = 8
	BuildNumber  = 63
)

// Version returns "1.8.63" when short is set and "1.8 build 63" otherwise.
func Version(short bool) string {
	if short {
		return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, BuildNumber)
	}

	return fmt.Sprintf("%d.%d build %d", VersionMajor, VersionMinor, BuildNumber)
}

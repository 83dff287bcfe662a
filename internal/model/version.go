package model

import "fmt"

// Version is a minimal three-component semantic version (major.minor.patch
// only, no pre-release/build metadata). There is no parser: the
// schema-authoring API always constructs versions programmatically, and
// there is no textual schema format to read them from.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

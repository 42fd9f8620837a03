package parser

import (
	"strconv"
	"strings"
)

// OASVersion represents each canonical version of the OpenAPI Specification that may be found at:
// https://github.com/OAI/OpenAPI-Specification/releases
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion300 OpenAPI Specification Version 3.0.0
	OASVersion300
	// OASVersion301  OpenAPI Specification Version 3.0.1
	OASVersion301
	// OASVersion302  OpenAPI Specification Version 3.0.2
	OASVersion302
	// OASVersion303  OpenAPI Specification Version 3.0.3
	OASVersion303
	// OASVersion304  OpenAPI Specification Version 3.0.4
	OASVersion304
	// OASVersion310  OpenAPI Specification Version 3.1.0
	OASVersion310
	// OASVersion311  OpenAPI Specification Version 3.1.1
	OASVersion311
	// OASVersion312  OpenAPI Specification Version 3.1.2
	OASVersion312
	// OASVersion320  OpenAPI Specification Version 3.2.0
	OASVersion320
)

var versionToString = map[OASVersion]string{
	OASVersion20:  "2.0",
	OASVersion300: "3.0.0",
	OASVersion301: "3.0.1",
	OASVersion302: "3.0.2",
	OASVersion303: "3.0.3",
	OASVersion304: "3.0.4",
	OASVersion310: "3.1.0",
	OASVersion311: "3.1.1",
	OASVersion312: "3.1.2",
	OASVersion320: "3.2.0",
}

// seriesPatches lists the known patch releases of each 3.x series, lowest first.
var seriesPatches = map[string][]OASVersion{
	"3.0": {OASVersion300, OASVersion301, OASVersion302, OASVersion303, OASVersion304},
	"3.1": {OASVersion310, OASVersion311, OASVersion312},
	"3.2": {OASVersion320},
}

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a valid version
func (v OASVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// IsOAS2 reports whether v is Swagger 2.0.
func (v OASVersion) IsOAS2() bool { return v == OASVersion20 }

// IsOAS3 reports whether v is any 3.x release.
func (v OASVersion) IsOAS3() bool { return v >= OASVersion300 && v <= OASVersion320 }

// Family returns the dispatch family the version's documents are read with.
func (v OASVersion) Family() SpecVersion {
	switch {
	case v == OASVersion20:
		return SpecVersion20
	case v >= OASVersion300 && v <= OASVersion304:
		return SpecVersion30
	case v >= OASVersion310 && v <= OASVersion312:
		return SpecVersion31
	case v == OASVersion320:
		return SpecVersion32
	default:
		return SpecVersionUnknown
	}
}

// ParseVersion will attempt to parse the string s into an OASVersion, and returns false if not valid.
// This function supports:
// 1. Exact version matches (e.g., "2.0", "3.0.3")
// 2. Future patch versions in known major.minor series (e.g., "3.0.5" maps to "3.0.4")
// 3. Pre-release versions (e.g., "3.0.0-rc0") map to closest match without exceeding base version
func ParseVersion(s string) (OASVersion, bool) {
	for v, str := range versionToString {
		if str == s {
			return v, true
		}
	}

	base, _, _ := strings.Cut(s, "-")
	base, _, _ = strings.Cut(base, "+")
	parts := strings.Split(base, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Unknown, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Unknown, false
		}
		nums[i] = n
	}

	if nums[0] == 2 {
		if nums[1] == 0 && nums[2] == 0 {
			return OASVersion20, true
		}
		return Unknown, false
	}

	patches, ok := seriesPatches[parts[0]+"."+parts[1]]
	if nums[0] != 3 || !ok {
		return Unknown, false
	}
	// Highest known patch that does not exceed the requested one.
	for i := len(patches) - 1; i >= 0; i-- {
		if i <= nums[2] {
			return patches[i], true
		}
	}
	return Unknown, false
}

// SpecVersion selects which family of field dispatch tables is active.
// Patch releases within a minor series share one family.
type SpecVersion int

const (
	// SpecVersionUnknown means the family is taken from the document itself.
	SpecVersionUnknown SpecVersion = iota
	// SpecVersion20 reads Swagger 2.0 documents.
	SpecVersion20
	// SpecVersion30 reads OpenAPI 3.0.x documents.
	SpecVersion30
	// SpecVersion31 reads OpenAPI 3.1.x documents.
	SpecVersion31
	// SpecVersion32 reads OpenAPI 3.2.x documents.
	SpecVersion32
)

func (v SpecVersion) String() string {
	switch v {
	case SpecVersion20:
		return "2.0"
	case SpecVersion30:
		return "3.0"
	case SpecVersion31:
		return "3.1"
	case SpecVersion32:
		return "3.2"
	default:
		return "unknown"
	}
}

// ParseSpecVersion parses a family name such as "2.0", "3.1" or a full
// version string such as "3.0.3".
func ParseSpecVersion(s string) (SpecVersion, bool) {
	switch s {
	case "2", "2.0":
		return SpecVersion20, true
	case "3.0":
		return SpecVersion30, true
	case "3.1":
		return SpecVersion31, true
	case "3.2":
		return SpecVersion32, true
	}
	v, ok := ParseVersion(s)
	if !ok {
		return SpecVersionUnknown, false
	}
	return v.Family(), true
}

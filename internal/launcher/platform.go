package launcher

import "strings"

// Platform is the operating system a game build targets.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
	PlatformMac     Platform = "mac"
	PlatformOther   Platform = "other"
)

// ParsePlatform maps launcher platform strings such as "Windows" or "osx"
// onto a Platform. Anything unrecognized becomes PlatformOther.
func ParsePlatform(value string) Platform {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "windows":
		return PlatformWindows
	case "linux":
		return PlatformLinux
	case "mac", "osx", "macos":
		return PlatformMac
	default:
		return PlatformOther
	}
}

func (p Platform) String() string { return string(p) }

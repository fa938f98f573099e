package summary

import "strings"

// binarySuffixes are stripped from trimmed package names.
var binarySuffixes = []string{".dylib", ".so", ".a", ".dll", ".exe"}

// TrimFilename reduces a full path to its last meaningful segment:
// "/app/src/worker.py" → "worker.py". Inputs without a non-empty segment
// come back unchanged. Idempotent.
func TrimFilename(filename string) string {
	if seg := lastSegment(filename, "/"); seg != "" {
		return seg
	}
	return filename
}

// TrimPackage reduces a package or binary path to a bare name:
// "/usr/lib/system/libdispatch.dylib" → "libdispatch". Windows-style
// package paths (drive-letter or UNC prefix) split on backslashes.
func TrimPackage(pkg string) string {
	sep := "/"
	if isWindowsPath(pkg) {
		sep = `\`
	}

	name := lastSegment(pkg, sep)
	if name == "" {
		name = pkg
	}

	for _, suffix := range binarySuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

// lastSegment returns the last non-empty sep-separated segment of s, "" when
// there is none.
func lastSegment(s, sep string) string {
	parts := strings.Split(s, sep)
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// isWindowsPath reports whether pkg starts with a drive-letter ("c:\") or
// UNC ("\\") prefix.
func isWindowsPath(pkg string) bool {
	if strings.HasPrefix(pkg, `\\`) {
		return true
	}
	if len(pkg) >= 3 && pkg[1] == ':' && pkg[2] == '\\' {
		c := pkg[0]
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	return false
}

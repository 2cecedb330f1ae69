package urls

import "strings"

// NormalizePath removes "." and ".." segments from a '/'-delimited path.
//
// A ".." never climbs above the root: when nothing but the leading empty
// segment has been retained it is dropped. Encoded dots such as "%2e" are
// ordinary segment text.
func NormalizePath(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}

	components := strings.Split(path, "/")
	output := make([]string, 0, len(components))
	for _, component := range components {
		switch component {
		case ".":
		case "..":
			if len(output) > 0 && !(len(output) == 1 && output[0] == "") {
				output = output[:len(output)-1]
			}
		default:
			output = append(output, component)
		}
	}
	return strings.Join(output, "/")
}

// ValidatePath checks that path can be serialized unambiguously alongside the
// given scheme and authority.
func ValidatePath(path string, hasScheme, hasAuthority bool) error {
	if hasAuthority && path != "" && !strings.HasPrefix(path, "/") {
		return InvalidURL("For absolute URLs, path must be empty or begin with '/'")
	}

	if !hasScheme && !hasAuthority {
		if strings.HasPrefix(path, "//") {
			return InvalidURL("Relative URLs cannot have a path starting with '//'")
		}
		if strings.HasPrefix(path, ":") {
			return InvalidURL("Relative URLs cannot have a path starting with ':'")
		}
	}
	return nil
}

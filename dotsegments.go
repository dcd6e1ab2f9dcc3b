package fasturi

import "strings"

// RemoveDotSegments removes the "." and ".." segments of path,
// interpreting ".." as a step up to the parent segment.
//
// The input is consumed from the left one step at a time, each step
// applying the first matching rule:
//
//  1. a "../" or "./" prefix is dropped;
//  2. a "/./" prefix, or the whole input "/.", becomes "/";
//  3. a "/../" prefix, or the whole input "/..", becomes "/" and the
//     last segment written to the output is removed;
//  4. the whole input "." or ".." is dropped;
//  5. otherwise the first segment, with its leading "/" if any,
//     is moved to the output.
//
// The result never contains a "." or ".." segment, and
// RemoveDotSegments(RemoveDotSegments(p)) == RemoveDotSegments(p).
func RemoveDotSegments(path string) string {
	written := make([]byte, 0, len(path))

	for len(path) != 0 {
		switch {
		case strings.HasPrefix(path, "../"):
			path = path[3:]
		case strings.HasPrefix(path, "./"):
			path = path[2:]
		case strings.HasPrefix(path, "/./"):
			path = path[2:]
		case path == "/.":
			path = "/"
		case strings.HasPrefix(path, "/../"):
			path = path[3:]
			written = popSegment(written)
		case path == "/..":
			path = "/"
			written = popSegment(written)
		case path == "." || path == "..":
			path = ""
		default:
			end := len(path)
			if i := strings.IndexByte(path[1:], '/'); i != -1 {
				end = i + 1
			}
			written = append(written, path[:end]...)
			path = path[end:]
		}
	}

	return string(written)
}

// popSegment drops the last "/segment" of b, or all of b if it has no slash.
func popSegment(b []byte) []byte {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == '/' {
			return b[:i]
		}
	}
	return b[:0]
}

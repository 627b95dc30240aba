// Package stacktrace condenses raw goroutine stacks for log output.
package stacktrace

import "strings"

// InternalPaths extracts the frames that belong to this repository's internal
// packages from a raw debug.Stack dump, as short "internal/..." paths.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, 8)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		idx := strings.Index(line, ".go:")
		if idx == -1 || !strings.Contains(line, "/internal/") {
			continue
		}

		end := strings.Index(line[idx:], " ")
		if end == -1 {
			end = len(line)
		} else {
			end += idx
		}

		frame := line[:end]
		if cut := strings.Index(frame, "/internal/"); cut != -1 {
			paths = append(paths, frame[cut+1:])
		}
	}

	return paths
}

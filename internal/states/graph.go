package states

import "strings"

// Normalize converts a state name or code to its 2-letter abbreviation.
// Two-character input is returned upper-cased without validation; longer
// input is looked up in the full-name table. Returns "" when the input is
// empty or unknown.
func Normalize(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	if len(value) == 2 {
		return value
	}
	return nameToCode[value]
}

// FullName returns the full state name for a 2-letter code, or "" when the
// code is unknown.
func FullName(code string) string {
	return codeToName[strings.ToUpper(code)]
}

// Corridor returns the shortest path (by state count) between two states
// over the adjacency graph, endpoints included.
//
// Edge cases: both inputs empty yields an empty corridor; equal states a
// single-element corridor; exactly one empty input just the known state.
// When no path exists (cannot happen on the connected lower-48 graph, but
// AK and HI have no neighbors) the corridor degrades to [start, end] rather
// than failing.
func Corridor(start, end string) []string {
	start = Normalize(start)
	end = Normalize(end)

	switch {
	case start == "" && end == "":
		return []string{}
	case start == end:
		return []string{start}
	case start == "":
		return []string{end}
	case end == "":
		return []string{start}
	}

	// BFS with parent pointers; first discovery wins, which guarantees a
	// minimal hop count.
	queue := []string{start}
	parents := map[string]string{start: ""}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			break
		}
		for _, neighbor := range neighbors[current] {
			if _, seen := parents[neighbor]; !seen {
				parents[neighbor] = current
				queue = append(queue, neighbor)
			}
		}
	}

	if _, found := parents[end]; !found {
		return []string{start, end}
	}

	var path []string
	for node := end; node != ""; node = parents[node] {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

package internal

// ReconstructPath rebuilds the ordered path from the cameFrom map by walking
// predecessor links from goal back to start, then reversing. It reports
// false if the walk does not reach start within maxSteps links, which only
// happens on malformed predecessor data.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	goal NodeType,
	start NodeType,
	maxSteps int,
) ([]NodeType, bool) {
	path := []NodeType{goal}
	current := goal
	for steps := 0; current != start; steps++ {
		if steps >= maxSteps {
			return nil, false
		}
		previous, exists := cameFrom[current]
		if !exists {
			return nil, false
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

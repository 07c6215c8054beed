package autodiff

// BuildOrder returns every value reachable from root through input edges,
// ordered so that each value comes after all of its inputs. root is last.
//
// Algorithm (depth-first post-order):
//  1. Skip values already visited (identity, not equal data)
//  2. Visit each input in recorded order
//  3. Append the value itself
//
// Values shared by several consumers are emitted once. The graph must be
// acyclic; a cycle recurses without bound.
func BuildOrder(root *Value) []*Value {
	order := make([]*Value, 0, 64)
	visited := make(map[*Value]struct{})
	order = buildOrder(root, order, visited)
	return order
}

func buildOrder(v *Value, order []*Value, visited map[*Value]struct{}) []*Value {
	if _, seen := visited[v]; seen {
		return order
	}
	visited[v] = struct{}{}
	for _, in := range v.prev {
		order = buildOrder(in, order, visited)
	}
	return append(order, v)
}

package mesh

// Components groups the vertices reachable from each other through triangle edges.
// Vertices that no triangle references are left out. Each group lists vertex indices
// in visiting order; groups are ordered by their lowest index.
func (m *Mesh) Components() [][]uint32 {
	if len(m.Vertices) == 0 || len(m.Triangles) == 0 {
		return nil
	}

	// Build adjacency
	adj := make([][]uint32, len(m.Vertices))
	for _, t := range m.Triangles {
		for a := 0; a < 3; a++ {
			for b := a + 1; b < 3; b++ {
				va, vb := t[a], t[b]
				if int(va) >= len(m.Vertices) || int(vb) >= len(m.Vertices) {
					continue
				}
				adj[va] = append(adj[va], vb)
				adj[vb] = append(adj[vb], va)
			}
		}
	}

	// DFS connected components
	visited := make([]bool, len(m.Vertices))
	var components [][]uint32
	for v := range m.Vertices {
		if visited[v] || len(adj[v]) == 0 {
			continue
		}
		var comp []uint32
		stack := []uint32{uint32(v)}
		for len(stack) > 0 {
			curr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[curr] {
				continue
			}
			visited[curr] = true
			comp = append(comp, curr)
			for _, nb := range adj[curr] {
				if !visited[nb] {
					stack = append(stack, nb)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

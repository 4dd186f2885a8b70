package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"icosphere-renderer/internal/mesh"
)

func main() {
	shapeName := flag.String("shape", "icosphere", "Mesh shape: icosphere or cube")
	quality := flag.Int("quality", 3, "Subdivision depth")
	asJSON := flag.Bool("json", false, "Print stats as JSON")
	listTris := flag.Int("tris", 0, "List the first N triangles")
	flag.Parse()

	shape, err := mesh.ParseShape(*shapeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	m, err := mesh.Build(shape, *quality)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st := m.Stats()
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(st)
		return
	}

	fmt.Printf("Mesh: %s quality=%d\n", m.Shape, m.Quality)
	fmt.Printf("  Vertices: %d, Triangles: %d, Edges: %d (V-E+F=%d)\n",
		st.Vertices, st.Triangles, st.Edges, st.Vertices-st.Edges+st.Triangles)
	fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
		st.Min[0], st.Max[0], st.Min[1], st.Max[1], st.Min[2], st.Max[2])
	fmt.Printf("  Components: %d\n", st.Parts)
	fmt.Printf("  Radius: [%.6f, %.6f]\n", st.MinRadius, st.MaxRadius)
	fmt.Printf("  Edge length: [%.6f, %.6f] ratio %.3f\n", st.MinEdge, st.MaxEdge, st.MaxEdge/st.MinEdge)
	if shape == mesh.Icosphere {
		fmt.Printf("  Area: %.6f (%.3f%% of 4π)\n", st.Area, 100*st.Area/(4*math.Pi))
	} else {
		fmt.Printf("  Area: %.6f\n", st.Area)
	}

	// Area by dominant normal direction
	areaByDir := map[string]float64{}
	dirs := make([]string, len(m.Triangles))
	for i, tri := range m.Triangles {
		n := m.FaceNormal(i)
		dirs[i] = direction(n)
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		areaByDir[dirs[i]] += 0.5 * b.Sub(a).Cross(c.Sub(a)).Len()
	}
	fmt.Println("  --- Surface area by direction ---")
	for _, d := range []string{"+Z(front)", "-Z(back)", "+Y(top)", "-Y(bottom)", "+X(right)", "-X(left)"} {
		fmt.Printf("  %-10s %.4f\n", d, areaByDir[d])
	}

	if *listTris > 0 {
		fmt.Println("  --- Triangles ---")
		for i, tri := range m.Triangles {
			if i >= *listTris {
				break
			}
			fmt.Printf("  tri[%4d] %v %s\n", i, tri, dirs[i])
		}
	}
}

func direction(n mesh.Vec3) string {
	ax, ay, az := math.Abs(n[0]), math.Abs(n[1]), math.Abs(n[2])
	switch {
	case az >= ax && az >= ay:
		if n[2] > 0 {
			return "+Z(front)"
		}
		return "-Z(back)"
	case ay >= ax:
		if n[1] > 0 {
			return "+Y(top)"
		}
		return "-Y(bottom)"
	default:
		if n[0] > 0 {
			return "+X(right)"
		}
		return "-X(left)"
	}
}

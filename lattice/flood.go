package lattice

// Flood collects every point reachable from seeds through orthogonal steps,
// staying inside area and visiting only points for which pass reports true.
// Seeds outside area or rejected by pass are ignored. The result is in BFS order.
//
// Time:   O(W·H) over area.
// Memory: O(W·H) for the visited set and queue.
func Flood(area Rect, seeds []Point, pass func(Point) bool) []Point {
	seen := make(map[Point]struct{})
	var queue []Point
	for _, s := range seeds {
		if !area.Contains(s) || !pass(s) {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		queue = append(queue, s)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Directions {
			v := u.Add(d)
			if !area.Contains(v) || !pass(v) {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// Components finds the orthogonally connected regions of points inside area for
// which pass reports true. Regions are discovered in row-major order of their
// first point; each region lists its points in BFS order.
//
// Time:   O(W·H).
// Memory: O(W·H).
func Components(area Rect, pass func(Point) bool) [][]Point {
	seen := make(map[Point]struct{})
	var comps [][]Point

	for y := area.Min.Y; y <= area.Max.Y; y++ {
		for x := area.Min.X; x <= area.Max.X; x++ {
			p := Point{X: x, Y: y}
			if _, ok := seen[p]; ok || !pass(p) {
				continue
			}
			comp := Flood(area, []Point{p}, pass)
			for _, q := range comp {
				seen[q] = struct{}{}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// InteriorRegions returns the connected regions of InteriorFilled cells.
func (l *Lattice) InteriorRegions() [][]Point {
	r, ok := l.Bounds()
	if !ok {
		return nil
	}
	return Components(r, func(p Point) bool { return l.Kind(p) == InteriorFilled })
}

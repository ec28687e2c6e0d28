package geo

// Coords returns every vertex of g in traversal order. Rects and triangles
// contribute the vertices of their polygon form.
func Coords[T Scalar](g Geometry[T]) []Coord[T] {
	var out []Coord[T]
	appendCoords(&out, g)
	return out
}

func appendCoords[T Scalar](out *[]Coord[T], g Geometry[T]) {
	switch g := g.(type) {
	case Point[T]:
		*out = append(*out, g.Coord)
	case Line[T]:
		*out = append(*out, g.Start, g.End)
	case LineString[T]:
		*out = append(*out, g...)
	case Polygon[T]:
		for _, ring := range g.Rings() {
			*out = append(*out, ring...)
		}
	case Rect[T]:
		appendCoords(out, Geometry[T](g.ToPolygon()))
	case Triangle[T]:
		appendCoords(out, Geometry[T](g.ToPolygon()))
	case MultiPoint[T]:
		for _, p := range g {
			*out = append(*out, p.Coord)
		}
	case MultiLineString[T]:
		for _, ls := range g {
			*out = append(*out, ls...)
		}
	case MultiPolygon[T]:
		for _, p := range g {
			appendCoords(out, Geometry[T](p))
		}
	case GeometryCollection[T]:
		for _, member := range g {
			appendCoords(out, member)
		}
	}
}

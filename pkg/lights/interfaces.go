package lights

import "github.com/rjstrand/lumentrace/pkg/core"

// areaLight is implemented by every light type backed by a geometry.Shape
// (QuadLight, SphereLight, DiscLight, and DiscSpotLight through its
// embedded DiscLight). LightSources uses it to build the ObjLight index:
// geoRef returns the exact GeoRef value the shape's own Hit sets on
// core.IntersectInfo, so a BVH hit can be looked up back to its light by
// identity.
type areaLight interface {
	geoRef() core.GeoRef
}

package lights

import (
	"github.com/rjstrand/lumentrace/pkg/core"
)

// LightSources is the scene-wide light container (C5 external interface):
// it selects lights with uniform probability — spec.md's LightSources
// names no weighting scheme — and resolves a BVH hit back to the area
// light that owns it, using the geometry identity each shape's Hit already
// stamps onto core.IntersectInfo.Geo.
type LightSources struct {
	lights  []core.Light
	sampler *core.WeightedLightSampler
	byGeo   map[core.GeoRef]core.Light
}

// NewLightSources builds a LightSources over lights, indexing every area
// light (one backed by a geometry.Shape) by its underlying shape so
// ObjLight can answer by identity. sceneRadius feeds the selection
// sampler; infinite lights get the scene's bounding sphere separately,
// via their own Preprocess.
func NewLightSources(lights []core.Light, sceneRadius float64) *LightSources {
	byGeo := make(map[core.GeoRef]core.Light)
	for _, light := range lights {
		if al, ok := light.(areaLight); ok {
			byGeo[al.geoRef()] = light
		}
	}

	return &LightSources{
		lights:  lights,
		sampler: core.NewUniformLightSampler(lights, sceneRadius),
		byGeo:   byGeo,
	}
}

// SampleLight selects a light uniformly, independent of the shading point.
func (ls *LightSources) SampleLight(sampler core.Sampler) (core.Light, float64) {
	light, prob, _ := ls.sampler.SampleLightEmission(sampler.Get1D())
	return light, prob
}

// ObjLight reports whether geo is an emissive surface.
func (ls *LightSources) ObjLight(geo core.GeoRef) (core.Light, bool) {
	light, ok := ls.byGeo[geo]
	return light, ok
}

func (ls *LightSources) Count() int { return len(ls.lights) }

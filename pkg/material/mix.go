package material

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Mix probabilistically chooses between two materials per sample, used
// to approximate composite finishes (e.g. a mostly-diffuse wall with a
// faint specular sheen) without a true layered BRDF.
type Mix struct {
	Material1 core.Material
	Material2 core.Material
	Ratio     float64 // 0 = all Material1, 1 = all Material2
}

// NewMix creates a mix material, clamping ratio to [0,1].
func NewMix(material1, material2 core.Material, ratio float64) *Mix {
	ratio = math.Max(0.0, math.Min(ratio, 1.0))
	return &Mix{Material1: material1, Material2: material2, Ratio: ratio}
}

// Eval linearly blends the two materials' BRDF values.
func (m *Mix) Eval(uv core.Vec2, normal, o, i core.Vec3, mode core.TransportMode) core.Color3 {
	e1 := m.Material1.Eval(uv, normal, o, i, mode)
	e2 := m.Material2.Eval(uv, normal, o, i, mode)
	return e1.Multiply(1.0 - m.Ratio).Add(e2.Multiply(m.Ratio))
}

// Sample picks one material by the mix ratio and defers to it; if that
// material turns out to be specular, the caller's SpecularMaterial check
// on Mix itself (below) short-circuits this path instead.
func (m *Mix) Sample(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, float64) {
	if sampler.Get1D() < m.Ratio {
		return m.Material2.Sample(sampler, uv, normal, o)
	}
	return m.Material1.Sample(sampler, uv, normal, o)
}

// SampleSpecular forwards to whichever chosen branch is specular,
// reporting ok=false if it isn't (the transport layer then falls back to
// Sample/Eval on Mix directly).
func (m *Mix) SampleSpecular(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, core.Color3, bool) {
	choice := m.Material1
	if sampler.Get1D() < m.Ratio {
		choice = m.Material2
	}
	if specular, ok := choice.(core.SpecularMaterial); ok {
		return specular.SampleSpecular(sampler, uv, normal, o)
	}
	return core.Vec3{}, core.Color3{}, false
}

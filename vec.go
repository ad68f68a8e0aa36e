package props

import (
	"github.com/go-gl/mathgl/mgl32"
)

// vecAxes are the property suffixes used to store vector components.
var vecAxes = [3]string{".x", ".y", ".z"}

// Vec3 reads the vector stored under prefix as the three numeric properties
// prefix.x, prefix.y and prefix.z. Missing or non-numeric components read as 0.
func (p *Props) Vec3(prefix string) mgl32.Vec3 {
	var v mgl32.Vec3
	for i, axis := range vecAxes {
		v[i] = p.Num(prefix + axis)
	}
	return v
}

// SetVec3 stores v under prefix as three numeric properties.
func (p *Props) SetVec3(prefix string, v mgl32.Vec3) {
	for i, axis := range vecAxes {
		p.Set(prefix+axis, Num(v[i]))
	}
}

// HasVec3 reports whether all three components of the vector under prefix are
// set to numbers.
func (p *Props) HasVec3(prefix string) bool {
	for _, axis := range vecAxes {
		if !p.Get(prefix + axis).IsNum() {
			return false
		}
	}
	return true
}

// RemoveVec3 removes the three properties of the vector under prefix.
func (p *Props) RemoveVec3(prefix string) {
	for _, axis := range vecAxes {
		p.Remove(prefix + axis)
	}
}

package shader

import "github.com/chewxy/math32"

// CPU reference of the fragment stage BRDF terms, used to check shader
// output and to precompute lookup tables.

// DistributionGGX is the GGX normal distribution term
// D = a2 / (pi * ((n.h)^2 * (a2 - 1) + 1)^2) with a = roughness^2.
func DistributionGGX(nDotH, roughness float32) float32 {
	a := roughness * roughness
	a2 := a * a
	d := nDotH*nDotH*(a2-1) + 1
	return a2 / (math32.Pi * d * d)
}

// GeometrySchlick is the Schlick-GGX masking term for one direction.
func GeometrySchlick(nDotX, k float32) float32 {
	return nDotX / (nDotX*(1-k) + k)
}

// GeometrySmith combines view and light masking with k = (roughness+1)^2 / 8.
func GeometrySmith(nDotV, nDotL, roughness float32) float32 {
	r := roughness + 1
	k := r * r / 8
	return GeometrySchlick(nDotV, k) * GeometrySchlick(nDotL, k)
}

// FresnelSchlick is the spherical-Gaussian approximation of Schlick's
// Fresnel term for one color channel.
func FresnelSchlick(f0, vDotH float32) float32 {
	e := (-5.55473*vDotH - 6.98316) * vDotH
	return f0 + (1-f0)*math32.Pow(2, e)
}

// BaseReflectance returns F0 for one channel in the metallic workflow.
func BaseReflectance(albedo, metallic float32) float32 {
	return 0.04*(1-metallic) + albedo*metallic
}

// EncodeGamma applies the output gamma of 2.2.
func EncodeGamma(linear float32) float32 {
	return math32.Pow(max(linear, 0), 1/2.2)
}

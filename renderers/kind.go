// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package renderers provides the volume renderer strategies of the viewer
// and the registry that resolves a renderer key such as "eam" to the
// renderer type that implements it.
package renderers

//go:generate core generate

// Kind identifies a renderer strategy. Its string form is the short
// key used on the command line and in settings files (mip, iso, eam, ...).
type Kind int32 //enums:enum -trim-prefix Kind -transform lower

const (
	// KindMIP is maximum intensity projection.
	KindMIP Kind = iota

	// KindISO is isosurface extraction with direct shading.
	KindISO

	// KindEAM is the emission-absorption model.
	KindEAM

	// KindLAO is local ambient occlusion.
	KindLAO

	// KindMCS is Monte Carlo single scattering.
	KindMCS

	// KindMCM is Monte Carlo multiple scattering.
	KindMCM

	// KindWDT is weighted delta tracking.
	KindWDT

	// KindWAT is weighted analog decomposition tracking.
	KindWAT

	// KindDOS is directional occlusion shading.
	KindDOS

	// KindDepth renders the depth of the first significant sample.
	KindDepth
)

// Param identifies a numeric renderer setting.
type Param int32 //enums:enum

const (
	// StepSize is the distance between samples along a ray,
	// in normalized volume coordinates.
	StepSize Param = iota

	// AlphaCorrection scales the opacity of each sample to
	// compensate for the step size.
	AlphaCorrection

	// Isovalue is the density threshold of the isosurface.
	Isovalue

	// Extinction is the maximum extinction coefficient of the medium.
	Extinction

	// Albedo is the scattering albedo.
	Albedo

	// Bias is the Henyey-Greenstein anisotropy.
	Bias

	// Ratio is the ratio between majorant-driven and
	// transmittance-driven tracking.
	Ratio

	// Bounces is the maximum number of scattering events per path.
	Bounces

	// Steps is the number of integration steps per frame.
	Steps

	// Samples is the number of occlusion samples per shading point.
	Samples

	// Majorant is the weight of the majorant used by weighted delta tracking.
	Majorant

	// Minorant is the control extinction of decomposition tracking.
	Minorant

	// Slices is the number of slices of directional occlusion shading.
	Slices
)

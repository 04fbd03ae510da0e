// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderers

// MIP renders the maximum density sampled along each ray.
type MIP struct {
	base
}

// NewMIP returns a new [MIP] renderer with default settings.
func NewMIP() *MIP {
	return &MIP{base: newBase(KindMIP, Config{StepSize: 0.05})}
}

// ISO renders the first crossing of [Isovalue] along each ray.
type ISO struct {
	base
}

// NewISO returns a new [ISO] renderer with default settings.
func NewISO() *ISO {
	return &ISO{base: newBase(KindISO, Config{StepSize: 0.05, Isovalue: 0.5})}
}

// EAM integrates emission and absorption along each ray,
// classifying samples with a transfer function.
type EAM struct {
	base
	transferSlot
}

// NewEAM returns a new [EAM] renderer with default settings.
func NewEAM() *EAM {
	return &EAM{
		base:         newBase(KindEAM, Config{StepSize: 0.05, AlphaCorrection: 3}),
		transferSlot: newTransferSlot(),
	}
}

// StepSize returns the current sampling step size.
func (r *EAM) StepSize() float32 { return r.config[StepSize] }

// AlphaCorrection returns the current opacity correction factor.
func (r *EAM) AlphaCorrection() float32 { return r.config[AlphaCorrection] }

// LAO shades an emission-absorption image with local ambient occlusion.
type LAO struct {
	base
	transferSlot
}

// NewLAO returns a new [LAO] renderer with default settings.
func NewLAO() *LAO {
	return &LAO{
		base:         newBase(KindLAO, Config{StepSize: 0.05, Samples: 8, Extinction: 100}),
		transferSlot: newTransferSlot(),
	}
}

// MCS traces single-scattering paths with delta tracking.
type MCS struct {
	base
	transferSlot
}

// NewMCS returns a new [MCS] renderer with default settings.
func NewMCS() *MCS {
	return &MCS{
		base:         newBase(KindMCS, Config{Extinction: 100}),
		transferSlot: newTransferSlot(),
	}
}

// multipleScattering is the configuration shared by the path tracers.
func multipleScattering(kind Kind, tracking Param, value float32) base {
	return newBase(kind, Config{
		Extinction: 100,
		Albedo:     0.5,
		Bias:       0,
		tracking:   value,
		Bounces:    8,
		Steps:      1,
	})
}

// MCM traces multiple-scattering paths with ratio tracking.
type MCM struct {
	base
	transferSlot
}

// NewMCM returns a new [MCM] renderer with default settings.
func NewMCM() *MCM {
	return &MCM{base: multipleScattering(KindMCM, Ratio, 1), transferSlot: newTransferSlot()}
}

// WeightedDelta traces multiple-scattering paths with weighted delta
// tracking, where [Majorant] scales the tracking majorant.
type WeightedDelta struct {
	base
	transferSlot
}

// NewWeightedDelta returns a new [WeightedDelta] renderer with default settings.
func NewWeightedDelta() *WeightedDelta {
	return &WeightedDelta{base: multipleScattering(KindWDT, Majorant, 1), transferSlot: newTransferSlot()}
}

// WeightedAnalogDecomposition traces multiple-scattering paths with
// weighted analog decomposition tracking around a [Minorant] control medium.
type WeightedAnalogDecomposition struct {
	base
	transferSlot
}

// NewWeightedAnalogDecomposition returns a new
// [WeightedAnalogDecomposition] renderer with default settings.
func NewWeightedAnalogDecomposition() *WeightedAnalogDecomposition {
	return &WeightedAnalogDecomposition{base: multipleScattering(KindWAT, Minorant, 0.05), transferSlot: newTransferSlot()}
}

// DOS renders slice by slice, propagating directional occlusion
// from the light through the volume.
type DOS struct {
	base
	transferSlot
}

// NewDOS returns a new [DOS] renderer with default settings.
func NewDOS() *DOS {
	return &DOS{
		base:         newBase(KindDOS, Config{StepSize: 0.05, Slices: 64, Extinction: 100}),
		transferSlot: newTransferSlot(),
	}
}

// Depth renders the depth of the first sample above the density threshold.
type Depth struct {
	base
}

// NewDepth returns a new [Depth] renderer with default settings.
func NewDepth() *Depth {
	return &Depth{base: newBase(KindDepth, Config{StepSize: 0.05})}
}

// Copyright (c) 2026, The VPT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderers

import (
	"fmt"
	"log/slog"
)

// Type is a constructible renderer strategy bound to one [Kind].
type Type struct {

	// Kind is the kind that resolves to this type.
	Kind Kind

	// Name is the name of the renderer type.
	Name string

	// Doc is a short description of the rendering algorithm.
	Doc string

	// New returns a new renderer of this type with default settings.
	New func() Renderer
}

func (t *Type) String() string { return t.Name }

// registry maps every [Kind] to its [Type]. Entries are keyed by kind
// so that each kind sits next to its constructor; init checks that
// none is missing.
var registry = [KindN]*Type{
	KindMIP: {
		Kind: KindMIP, Name: "MIPRenderer", Doc: "maximum intensity projection",
		New: func() Renderer { return NewMIP() },
	},
	KindISO: {
		Kind: KindISO, Name: "ISORenderer", Doc: "isosurface",
		New: func() Renderer { return NewISO() },
	},
	KindEAM: {
		Kind: KindEAM, Name: "EAMRenderer", Doc: "emission-absorption model",
		New: func() Renderer { return NewEAM() },
	},
	KindLAO: {
		Kind: KindLAO, Name: "LAORenderer", Doc: "local ambient occlusion",
		New: func() Renderer { return NewLAO() },
	},
	KindMCS: {
		Kind: KindMCS, Name: "MCSRenderer", Doc: "Monte Carlo single scattering",
		New: func() Renderer { return NewMCS() },
	},
	KindMCM: {
		Kind: KindMCM, Name: "MCMRenderer", Doc: "Monte Carlo multiple scattering",
		New: func() Renderer { return NewMCM() },
	},
	KindWDT: {
		Kind: KindWDT, Name: "WeightedDeltaRenderer", Doc: "weighted delta tracking",
		New: func() Renderer { return NewWeightedDelta() },
	},
	KindWAT: {
		Kind: KindWAT, Name: "WeightedAnalogDecompositionRenderer", Doc: "weighted analog decomposition tracking",
		New: func() Renderer { return NewWeightedAnalogDecomposition() },
	},
	KindDOS: {
		Kind: KindDOS, Name: "DOSRenderer", Doc: "directional occlusion shading",
		New: func() Renderer { return NewDOS() },
	},
	KindDepth: {
		Kind: KindDepth, Name: "DepthRenderer", Doc: "depth of the first significant sample",
		New: func() Renderer { return NewDepth() },
	},
}

func init() {
	if err := checkRegistry(registry[:]); err != nil {
		panic(err)
	}
}

// checkRegistry returns an error unless every kind has exactly one
// entry at its own index, with a constructor of the same kind.
func checkRegistry(types []*Type) error {
	if len(types) != int(KindN) {
		return fmt.Errorf("renderers: registry has %d entries for %d kinds", len(types), KindN)
	}
	for k := range KindN {
		t := types[k]
		switch {
		case t == nil:
			return fmt.Errorf("renderers: no registry entry for kind %s", k)
		case t.Kind != k:
			return fmt.Errorf("renderers: registry entry %s is filed under kind %s", t.Kind, k)
		case t.New == nil:
			return fmt.Errorf("renderers: registry entry %s has no constructor", k)
		}
	}
	return nil
}

// Resolve returns the renderer type bound to the given kind.
// Kinds outside the enumeration fail with [ErrNoSuitableRenderer];
// no default renderer is substituted.
func Resolve(k Kind) (*Type, error) {
	if k < 0 || k >= KindN {
		return nil, fmt.Errorf("%w for kind %d", ErrNoSuitableRenderer, k)
	}
	return registry[k], nil
}

// ResolveName returns the renderer type bound to the given key,
// such as "eam" or "depth".
func ResolveName(name string) (*Type, error) {
	var k Kind
	if err := k.SetString(name); err != nil {
		slog.Debug("renderer key not found", "key", name)
		return nil, fmt.Errorf("%w for key %q", ErrNoSuitableRenderer, name)
	}
	return Resolve(k)
}

// MustResolve is like [ResolveName] but panics on an unknown key.
// It is meant for keys fixed in code.
func MustResolve(name string) *Type {
	t, err := ResolveName(name)
	if err != nil {
		panic(err)
	}
	return t
}

// New returns a new renderer for the given key with default settings.
func New(name string) (Renderer, error) {
	t, err := ResolveName(name)
	if err != nil {
		return nil, err
	}
	return t.New(), nil
}

// Types returns all registered renderer types in [Kind] order.
func Types() []*Type {
	return append([]*Type(nil), registry[:]...)
}

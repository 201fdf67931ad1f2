// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package bitflags

import (
	"fmt"
	"log/slog"
)

// Integer is the constraint for the storage of a [Flags] value.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Enum is the constraint for enumerated flag types.
type Enum interface {
	Integer
}

// Flags is a set of flags of enum type T, stored in an integer of type V.
//
// The zero value is the empty set. Flags values are comparable, == compares the stored bits.
type Flags[T Enum, V Integer] struct {
	bits V
}

// Mask is a [Flags] stored at the natural width of T.
type Mask[T Enum] = Flags[T, T]

// Empty returns the empty flag set.
func Empty[T Enum, V Integer]() Flags[T, V] {
	return Flags[T, V]{}
}

// New creates a flag set of natural width with the specified flags enabled.
func New[T Enum](flags ...T) Mask[T] {
	return NewWidth[T, T](flags...)
}

// NewWidth creates a flag set stored in V with the specified flags enabled.
func NewWidth[V Integer, T Enum](flags ...T) Flags[T, V] {
	var f Flags[T, V]
	for _, flag := range flags {
		f.bits |= V(flag)
	}

	return f
}

// FromBits creates a flag set holding bits verbatim.
//
// This bypasses the enum type, which therefore has to be named explicitly:
//
//	f := bitflags.FromBits[Perm](uint64(0x3))
func FromBits[T Enum, V Integer](bits V) Flags[T, V] {
	return Flags[T, V]{bits}
}

// Convert changes the storage of a flag set to V.
// Conversion to a narrower type truncates.
func Convert[V Integer, T Enum, W Integer](f Flags[T, W]) Flags[T, V] {
	return Flags[T, V]{V(f.bits)}
}

// Bits returns the stored integer.
func (f Flags[T, V]) Bits() V { return f.bits }

// Enum reinterprets the stored bits as a value of T.
//
// The result is not validated, combined flags usually have no named constant.
func (f Flags[T, V]) Enum() T { return T(f.bits) }

// Any reports whether any flag is set.
func (f Flags[T, V]) Any() bool { return f.bits != 0 }

// None reports whether no flag is set. It is the negation of [Flags.Any].
func (f Flags[T, V]) None() bool { return f.bits == 0 }

// Has reports whether f and flag have any bit in common.
func (f Flags[T, V]) Has(flag T) bool { return f.bits&V(flag) != 0 }

// Or returns the union of f and o.
func (f Flags[T, V]) Or(o Flags[T, V]) Flags[T, V] { return Flags[T, V]{f.bits | o.bits} }

// And returns the intersection of f and o.
func (f Flags[T, V]) And(o Flags[T, V]) Flags[T, V] { return Flags[T, V]{f.bits & o.bits} }

// Xor returns the symmetric difference of f and o.
func (f Flags[T, V]) Xor(o Flags[T, V]) Flags[T, V] { return Flags[T, V]{f.bits ^ o.bits} }

// AndNot returns f with the flags of o cleared.
func (f Flags[T, V]) AndNot(o Flags[T, V]) Flags[T, V] { return Flags[T, V]{f.bits &^ o.bits} }

// OrFlag returns f with flag added.
func (f Flags[T, V]) OrFlag(flag T) Flags[T, V] { return Flags[T, V]{f.bits | V(flag)} }

// AndFlag returns f restricted to flag.
func (f Flags[T, V]) AndFlag(flag T) Flags[T, V] { return Flags[T, V]{f.bits & V(flag)} }

// XorFlag returns f with flag toggled.
func (f Flags[T, V]) XorFlag(flag T) Flags[T, V] { return Flags[T, V]{f.bits ^ V(flag)} }

// AndNotFlag returns f with flag cleared.
func (f Flags[T, V]) AndNotFlag(flag T) Flags[T, V] { return Flags[T, V]{f.bits &^ V(flag)} }

// Equal reports whether f and o hold the same bits.
func (f Flags[T, V]) Equal(o Flags[T, V]) bool { return f.bits == o.bits }

// NotEqual reports whether f and o differ.
func (f Flags[T, V]) NotEqual(o Flags[T, V]) bool { return f.bits != o.bits }

// Is reports whether f holds exactly the bits of flag.
func (f Flags[T, V]) Is(flag T) bool { return f.bits == V(flag) }

// IsNot reports whether f differs from flag.
func (f Flags[T, V]) IsNot(flag T) bool { return f.bits != V(flag) }

// OrAssign adds flag to f and returns f.
func (f *Flags[T, V]) OrAssign(flag T) *Flags[T, V] {
	f.bits |= V(flag)

	return f
}

// AndAssign restricts f to flag and returns f.
func (f *Flags[T, V]) AndAssign(flag T) *Flags[T, V] {
	f.bits &= V(flag)

	return f
}

// XorAssign toggles flag in f and returns f.
func (f *Flags[T, V]) XorAssign(flag T) *Flags[T, V] {
	f.bits ^= V(flag)

	return f
}

// AndNotAssign clears flag in f and returns f.
func (f *Flags[T, V]) AndNotAssign(flag T) *Flags[T, V] {
	f.bits &^= V(flag)

	return f
}

// Set enables or disables flag.
func (f *Flags[T, V]) Set(flag T, value bool) {
	if value {
		f.bits |= V(flag)
	} else {
		f.bits &^= V(flag)
	}
}

// String implements [fmt.Stringer].
func (f Flags[T, V]) String() string {
	return fmt.Sprintf("%#x", f.bits)
}

// LogValue implements [slog.LogValuer].
func (f Flags[T, V]) LogValue() slog.Value {
	return slog.StringValue(f.String())
}

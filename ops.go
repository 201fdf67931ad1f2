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

// Or combines two bare enum values into a flag set of natural width.
//
// Not available for types registered with bitflags:disable.
func Or[T Enum](a, b T) Mask[T] { return Mask[T]{a | b} }

// And intersects two bare enum values into a flag set of natural width.
//
// Not available for types registered with bitflags:disable.
func And[T Enum](a, b T) Mask[T] { return Mask[T]{a & b} }

// Xor combines two bare enum values with exclusive or into a flag set of natural width.
//
// Not available for types registered with bitflags:disable.
func Xor[T Enum](a, b T) Mask[T] { return Mask[T]{a ^ b} }

// AndNot clears the bits of b in a and returns a flag set of natural width.
//
// Not available for types registered with bitflags:disable.
func AndNot[T Enum](a, b T) Mask[T] { return Mask[T]{a &^ b} }

// EnumOr returns f with flag added.
func EnumOr[T Enum, V Integer](flag T, f Flags[T, V]) Flags[T, V] {
	return Flags[T, V]{V(flag) | f.bits}
}

// EnumAnd returns the bits of flag that are also in f.
func EnumAnd[T Enum, V Integer](flag T, f Flags[T, V]) Flags[T, V] {
	return Flags[T, V]{V(flag) & f.bits}
}

// EnumXor returns f with flag toggled.
func EnumXor[T Enum, V Integer](flag T, f Flags[T, V]) Flags[T, V] {
	return Flags[T, V]{V(flag) ^ f.bits}
}

// EnumAndNot returns the bits of flag that are not in f.
func EnumAndNot[T Enum, V Integer](flag T, f Flags[T, V]) Flags[T, V] {
	return Flags[T, V]{V(flag) &^ f.bits}
}

// EnumEqual reports whether f holds exactly the bits of flag.
func EnumEqual[T Enum, V Integer](flag T, f Flags[T, V]) bool { return V(flag) == f.bits }

// EnumNotEqual reports whether f differs from flag.
func EnumNotEqual[T Enum, V Integer](flag T, f Flags[T, V]) bool { return V(flag) != f.bits }

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

package a

import (
	"fmt"

	"fillmore-labs.com/bitflags"

	"test/defs"
)

type Color uint8

const (
	Red Color = 1 << iota
	Green
	Blue
)

// Level values are exclusive.
//
//bitflags:disable
type Level int32 // want Level:`bitflags\(disabled\)`

const (
	Low Level = 1 << iota
	High
)

// Wide is stored in 32 bits.
//
//bitflags:storage uint32
type Wide uint8 // want Wide:`bitflags\(enabled, storage uint32\)`

const (
	W0 Wide = 1 << iota
	W1
)

func natural() {
	c := bitflags.Or(Red, Green)
	c.OrAssign(Blue)

	d := bitflags.FromBits[Color](uint8(3))
	e := bitflags.New(Red).OrFlag(Blue)

	var (
		f bitflags.Mask[Color]
		g bitflags.Flags[Color, uint8]
	)

	fmt.Println(c, d, e, f, g, bitflags.EnumOr(Green, d))
}

func wrongWidth() {
	var c bitflags.Flags[Color, uint64] // want "flag set of Color stored as uint64, natural storage is uint8"

	d := bitflags.NewWidth[uint16](Red) // want "flag set of Color stored as uint16, natural storage is uint8"

	fmt.Println(c, d)
}

func disabled() {
	_ = bitflags.Or(Low, High)     // want "bitwise combination of bare Level values is disabled"
	_ = bitflags.AndNot(Low, High) // want "bitwise combination of bare Level values is disabled"

	f := bitflags.New(Low)
	f = f.OrFlag(High)
	f.XorAssign(Low)

	fmt.Println(f, bitflags.EnumOr(High, f))

	_ = bitflags.Xor(defs.Small, defs.Large) // want "bitwise combination of bare defs.Kind values is disabled"
}

func widened() {
	m := bitflags.NewWidth[uint32](W0, W1)
	m = m.OrFlag(W1)
	n := bitflags.Convert[uint32](bitflags.Or(W0, W1))
	o := bitflags.FromBits[Wide](uint32(1) << 20)

	var p bitflags.Flags[Wide, uint32]

	var q bitflags.Mask[Wide] // want "flag set of Wide stored as Wide, registered storage is uint32"

	_ = bitflags.New(W0)     // want "flag set of Wide stored as Wide, registered storage is uint32"
	_ = bitflags.And(W0, W1) // want "flag set of Wide stored as Wide, registered storage is uint32"

	fmt.Println(m, n, o, p, q)
}

type holder struct {
	wide   bitflags.Mask[Wide] // want "flag set of Wide stored as Wide, registered storage is uint32"
	colors bitflags.Flags[Color, uint8]
	mode   bitflags.Flags[defs.Mode, uint64]
}

func field(h holder) holder {
	h.colors.OrAssign(Red)
	h.mode.OrAssign(defs.Exec)

	return h
}

func param(c bitflags.Flags[Color, uint16]) bitflags.Mask[Color] { // want "flag set of Color stored as uint16, natural storage is uint8"
	return bitflags.Convert[Color](c)
}

func plain() {
	a := bitflags.New(5, 2)             // want "flag set of plain integer type int, enum type required"
	b := bitflags.Or(uint8(1), 2)       // want "flag set of plain integer type uint8, enum type required"
	c := bitflags.Empty[int16, int16]() // want "flag set of plain integer type int16, enum type required"

	var d bitflags.Mask[uint32] // want "flag set of plain integer type uint32, enum type required"

	_ = bitflags.EnumEqual(Red, bitflags.New(Red))

	fmt.Println(a, b, c, d)
}

func imported() {
	m := bitflags.NewWidth[uint64](defs.Read, defs.Write)
	m.OrAssign(defs.Exec)

	_ = bitflags.NewWidth[uint32](defs.Exec) // want "flag set of defs.Mode stored as uint32, registered storage is uint64"

	fmt.Println(m)
}

func generic[T bitflags.Enum](a, b T) bitflags.Mask[T] {
	return bitflags.Or(a, b)
}

func useGeneric() {
	fmt.Println(generic(Low, High), generic(W0, W1))
}

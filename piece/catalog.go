// Package piece holds the static catalog of the seven block shapes, their
// rotation masks and their display colors.
package piece

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// Kind identifies one of the seven block shapes. The zero value is not a
// valid shape; it is used by sinks to mean "reset to default color".
type Kind uint8

const (
	KindNone Kind = iota
	KindSquare
	KindT
	KindBar
	KindS
	KindZ
	KindL
	KindJ

	kindCount
)

// Mask is a 4x4 occupancy bitmap with one nibble per row, top row first,
// and bit j of each nibble standing for column j.
//
// Bit j = column j makes the board display left-right mirrored relative to
// conventional tetris artwork. Collision testing and rendering share the
// convention, so changing it here would silently change the perceived
// shapes.
type Mask [4]uint8

// At reports whether the mask occupies (row, col), both in 0..3.
func (m Mask) At(row, col int) bool {
	return m[row]&(1<<uint(col)) != 0
}

// shapes lists every kind at every rotation. Symmetric pieces carry
// duplicate masks so rotation stays total: Shape(k, r) == Shape(k, r+4)
// for all kinds.
var shapes = [kindCount][4]Mask{
	KindSquare: { // yellow 2x2 box, rotation-invariant
		{0x0, 0x6, 0x6, 0x0},
		{0x0, 0x6, 0x6, 0x0},
		{0x0, 0x6, 0x6, 0x0},
		{0x0, 0x6, 0x6, 0x0},
	},
	KindT: { // lilac T
		{0x0, 0xE, 0x4, 0x0},
		{0x4, 0xC, 0x4, 0x0},
		{0x4, 0xE, 0x0, 0x0},
		{0x4, 0x6, 0x4, 0x0},
	},
	KindBar: { // cyan 1x4, two distinct orientations
		{0x4, 0x4, 0x4, 0x4},
		{0x0, 0xF, 0x0, 0x0},
		{0x4, 0x4, 0x4, 0x4},
		{0x0, 0xF, 0x0, 0x0},
	},
	KindS: { // red 2+2 shifted, two distinct orientations
		{0x0, 0xC, 0x6, 0x0},
		{0x0, 0x2, 0x6, 0x4},
		{0x0, 0xC, 0x6, 0x0},
		{0x0, 0x2, 0x6, 0x4},
	},
	KindZ: { // green 2+2 shifted, inverse of the red one
		{0x0, 0x6, 0xC, 0x0},
		{0x0, 0x4, 0x6, 0x2},
		{0x0, 0x6, 0xC, 0x0},
		{0x0, 0x4, 0x6, 0x2},
	},
	KindL: { // blue 3+1 L
		{0x0, 0xE, 0x2, 0x0},
		{0x0, 0x2, 0x2, 0x6},
		{0x0, 0x0, 0x8, 0xE},
		{0x0, 0xC, 0x8, 0x8},
	},
	KindJ: { // orange 1+3 L
		{0x0, 0xE, 0x8, 0x0},
		{0x0, 0x6, 0x2, 0x2},
		{0x0, 0x0, 0x2, 0xE},
		{0x0, 0x8, 0x8, 0xC},
	},
}

// colors maps a kind to the background color used when painting its cells
// in color mode, following the classic VT100 background palette.
var colors = [kindCount]tcell.Color{
	KindNone:   tcell.ColorDefault,
	KindSquare: tcell.ColorYellow,
	KindT:      tcell.ColorPurple,
	KindBar:    tcell.ColorTeal,
	KindS:      tcell.ColorMaroon,
	KindZ:      tcell.ColorGreen,
	KindL:      tcell.ColorNavy,
	KindJ:      tcell.ColorOlive,
}

// Shape returns the mask of a kind at a rotation. Rotation is reduced
// mod 4 and may be negative. An invalid kind is a programming error.
func Shape(k Kind, rotation int) Mask {
	if k == KindNone || k >= kindCount {
		panic(fmt.Sprintf("piece: invalid kind %d", k))
	}
	return shapes[k][rotation&3]
}

// Color returns the display color of a kind, or the default color for
// KindNone.
func Color(k Kind) tcell.Color {
	if k >= kindCount {
		panic(fmt.Sprintf("piece: invalid kind %d", k))
	}
	return colors[k]
}

// Random draws a uniformly random kind from the catalog.
func Random(rng *rand.Rand) Kind {
	return Kind(1 + rng.Intn(int(kindCount)-1))
}

// Package board implements the augmented mailbox position representation:
// the square index space, figure codes, per-colour piece lists, and the
// legality/attack queries that operate directly on them.
package board

// Colour is white or black.
type Colour int8

const (
	White Colour = 0
	Black Colour = 1
)

// Opposite returns the other colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece identifies a piece type, independent of colour.
type Piece int8

const (
	Pawn Piece = 1 + iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Letter is the uncoloured algebraic letter used in move rendering.
// Pawns render with no letter.
func (p Piece) Letter() byte {
	switch p {
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return 0
	}
}

// Figure is a square's occupant: the sentinel NoFigure, the playable-but-
// vacant Empty, or a coloured piece. Bit 0 of a coloured figure is its
// colour; the remaining bits are its Piece. {Empty, NoFigure} never collide
// with a coloured figure because coloured figures start at 2.
type Figure int8

const (
	NoFigure Figure = -1
	Empty    Figure = 0
)

// Coloured builds the Figure for a piece of the given colour.
func Coloured(c Colour, p Piece) Figure {
	return Figure(p)<<1 | Figure(c)
}

// IsColoured reports whether f is an occupying, coloured piece (as opposed
// to the sentinel or an empty playable square).
func (f Figure) IsColoured() bool {
	return f >= 2
}

// Colour extracts the colour of a coloured figure. Undefined for Empty/NoFigure.
func (f Figure) Colour() Colour {
	return Colour(f & 1)
}

// Piece extracts the piece type of a coloured figure. Undefined for Empty/NoFigure.
func (f Figure) Piece() Piece {
	return Piece(f >> 1)
}

// ParseFigure is String's inverse: an uppercase letter is a White piece,
// lowercase is Black, "." is Empty. Pawns use "P"/"p" (move rendering
// omits the pawn letter, but a placement still needs one).
func ParseFigure(letter byte) (Figure, bool) {
	if letter == '.' {
		return Empty, true
	}
	colour := White
	l := letter
	if l >= 'a' && l <= 'z' {
		colour = Black
		l -= 'a' - 'A'
	}
	pieces := map[byte]Piece{'P': Pawn, 'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King}
	p, ok := pieces[l]
	if !ok {
		return NoFigure, false
	}
	return Coloured(colour, p), true
}

func (f Figure) String() string {
	switch f {
	case NoFigure:
		return "-"
	case Empty:
		return "."
	}
	letters := [...]byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	l := letters[f.Piece()]
	if f.Colour() == Black {
		l |= 0x20 // lowercase for black, uppercase stays for white
	}
	return string(l)
}

package game

// Piece is the content of a vertex. Dog and Jaguar double as the two sides.
type Piece uint8

const (
	Empty Piece = iota
	Dog
	Jaguar
)

const (
	// InitialDogs is the number of dogs on the standard starting board.
	InitialDogs = 14
	// JaguarWinThreshold is the dog count at or below which the jaguar wins
	// (five captures on the standard board).
	JaguarWinThreshold = 9
	// MoveLimit caps move generation when the caller gives no limit.
	MoveLimit = 128
)

func (p Piece) IsSide() bool {
	return p == Dog || p == Jaguar
}

// Opponent returns the other side. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case Dog:
		return Jaguar
	case Jaguar:
		return Dog
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case Dog:
		return "dog"
	case Jaguar:
		return "jaguar"
	default:
		return "empty"
	}
}

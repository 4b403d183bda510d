package game

import (
	"errors"
	"fmt"
)

// Construction errors, returned while reading a diagram or building a graph.
var (
	ErrMalformedDiagram = errors.New("malformed diagram")
	ErrTruncatedDiagram = errors.New("truncated diagram")
	ErrTooManyVertices  = errors.New("vertex capacity exceeded")
	ErrTooManyNeighbors = errors.New("neighbor capacity exceeded")
	ErrVertexCount      = errors.New("vertex count does not match diagram header")
)

// Parse errors, returned for malformed text coming from the controller.
var (
	ErrMalformedMove  = errors.New("malformed move")
	ErrMalformedBoard = errors.New("malformed board")
	ErrUnknownSide    = errors.New("unknown side")
	ErrUnknownKind    = errors.New("unknown move kind")
	ErrUnknownCoord   = errors.New("no vertex at coordinate")
	// ErrNullMove is returned for the "<side> n" reply of a side that could
	// not move.
	ErrNullMove = errors.New("null move")
)

// BuildError locates a construction failure in the diagram grid.
type BuildError struct {
	Err error
	Row int // grid row, 0-based (-1 if not applicable)
	Col int // grid column, 0-based (-1 if not applicable)
}

func (e *BuildError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("build graph: %v", e.Err)
	}
	return fmt.Sprintf("build graph at %d:%d: %v", e.Row, e.Col, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ParseError reports which part of a controller string could not be decoded.
type ParseError struct {
	Err    error
	Input  string // the offending text
	Detail string // what was wrong with it
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q: %v: %s", e.Input, e.Err, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(err error, input, format string, args ...any) *ParseError {
	return &ParseError{Err: err, Input: input, Detail: fmt.Sprintf(format, args...)}
}

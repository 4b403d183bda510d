package engine

import (
	"errors"
	"fmt"
	"time"

	"adugo/game"
	"adugo/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const MaxTurns = 500

type MoveMetric struct {
	Step int
	Side game.Piece
	Move game.Move
	Pass bool // the side had no legal move and passed
	searcher.SearchMetric
}

type GameMetric struct {
	Winner    game.Piece // game.Empty when stopped at the turn limit
	StartTime time.Time
	Duration  time.Duration
	Turns     int
	Captures  int
}

// Engine plays a full game between two agents on one board.
type Engine struct {
	State  *game.State
	Agents map[game.Piece]Agent
}

// LocalEngine starts from the opening position of g.
func LocalEngine(g *game.Graph, jaguar, dogs Agent) (*Engine, error) {
	state, err := game.NewGame(g)
	if err != nil {
		return nil, err
	}
	return NewEngine(state, jaguar, dogs)
}

// NewEngine plays from a copy of start, for boards whose opening is not
// game.InitialBoard.
func NewEngine(start *game.State, jaguar, dogs Agent) (*Engine, error) {
	if jaguar == nil || dogs == nil {
		return nil, errors.New("need an agent for each side")
	}
	if start == nil {
		return nil, errors.New("need a starting position")
	}
	return &Engine{
		State:  start.Copy(),
		Agents: map[game.Piece]Agent{game.Jaguar: jaguar, game.Dog: dogs},
	}, nil
}

// Run executes the game loop until there is a winner or maxTurns moves have
// been played. A side without a legal move passes the turn.
func (e *Engine) Run(maxTurns int) (GameMetric, []MoveMetric, error) {
	if maxTurns <= 0 {
		maxTurns = MaxTurns
	}
	result := GameMetric{StartTime: time.Now()}
	startDogs := e.State.Dogs()
	var moves []MoveMetric

	log.Info().Msgf("%v is starting", e.State.ToMove())

	turns, passes := 0, 0
	for turns < maxTurns && !e.State.IsTerminal() {
		turn := turns + 1
		side := e.State.ToMove()
		move, search, err := e.Agents[side].FindMove(e.State)
		switch {
		case errors.Is(err, searcher.ErrNoMove):
			log.Debug().Msgf("turn %d: %v passes", turn, side)
			moves = append(moves, MoveMetric{Step: turn, Side: side, Pass: true})
			e.State.SetToMove(side.Opponent())
			turns = turn
			if passes++; passes == 2 {
				return e.finish(result, startDogs, turns), moves, fmt.Errorf("turn %d: neither side can move", turn)
			}
			continue
		case err != nil:
			return e.finish(result, startDogs, turns), moves, fmt.Errorf("turn %d: %v: %w", turn, side, err)
		}

		if !e.State.IsLegal(move) {
			return e.finish(result, startDogs, turns), moves, fmt.Errorf("turn %d: %v played illegal move %v", turn, side, move)
		}
		e.State = e.State.Play(move)
		moves = append(moves, MoveMetric{Step: turn, Side: side, Move: move, SearchMetric: search})
		log.Debug().Msgf("turn %d: %v plays %v", turn, side, move)
		turns, passes = turn, 0
	}

	result = e.finish(result, startDogs, turns)
	if result.Winner != game.Empty {
		log.Info().Msgf("%v wins after %d turns", result.Winner, result.Turns)
	} else {
		log.Info().Msgf("stopped after %d turns with no winner", result.Turns)
	}
	return result, moves, nil
}

func (e *Engine) finish(m GameMetric, startDogs, turns int) GameMetric {
	m.Winner = e.State.Winner()
	m.Duration = time.Since(m.StartTime)
	m.Turns = turns
	m.Captures = startDogs - e.State.Dogs()
	return m
}

// Transcript renders played moves in controller notation, passes as null
// moves.
func Transcript(g *game.Graph, moves []MoveMetric) []string {
	return lo.Map(moves, func(m MoveMetric, _ int) string {
		if m.Pass {
			return game.NullMove(m.Side)
		}
		text, err := game.FormatMove(g, m.Move)
		if err != nil {
			return fmt.Sprintf("%v", m.Move)
		}
		return text
	})
}

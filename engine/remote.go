package engine

import (
	"errors"
	"fmt"

	"adugo/game"
	"adugo/searcher"

	"github.com/rs/zerolog/log"
)

var ErrNotOurTurn = errors.New("turn message is for the other side")

// Respond answers one turn message from a match controller with the move
// text to send back. A decided game or a side without moves gets the null
// move.
func Respond(g *game.Graph, s *searcher.Searcher, msg string) (string, error) {
	turn, err := game.ParseTurnMessage(msg)
	if err != nil {
		return "", err
	}
	if turn.Side != s.Side {
		return "", fmt.Errorf("%w: want %v, got %v", ErrNotOurTurn, s.Side, turn.Side)
	}

	if turn.LastMove != "" {
		last, err := game.ParseMove(g, turn.LastMove)
		switch {
		case errors.Is(err, game.ErrNullMove):
			log.Debug().Msgf("%v passed", last.Side)
		case err != nil:
			log.Warn().Err(err).Msg("could not read the previous move")
		default:
			log.Debug().Msgf("previous move %v", last)
		}
	}

	state := game.NewState(g)
	if err := state.LoadSnapshot(turn.Board, turn.Side); err != nil {
		return "", err
	}

	if winner := state.Winner(); winner != game.Empty {
		log.Info().Msgf("game already won by %v", winner)
		return game.NullMove(s.Side), nil
	}

	move, result, err := s.ChooseMove(state)
	if errors.Is(err, searcher.ErrNoMove) {
		log.Info().Msgf("%v has no legal move", s.Side)
		return game.NullMove(s.Side), nil
	}
	if err != nil {
		return "", err
	}

	text, err := game.FormatMove(g, move)
	if err != nil {
		return "", err
	}
	log.Info().
		Int("score", result.Score).
		Int("moves", result.Moves).
		Msgf("%v replies %q", s.Side, text)
	return text, nil
}

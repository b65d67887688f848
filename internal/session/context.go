package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/klokku/familyhub/pkg/calendar"
	"github.com/klokku/familyhub/pkg/shopping"
	log "github.com/sirupsen/logrus"
)

type contextKey string

const BoardKey contextKey = "board"

var ErrNoBoard = errors.New("board not found")

func WithBoard(ctx context.Context, board *Board) context.Context {
	return context.WithValue(ctx, BoardKey, board)
}

// CurrentBoard retrieves the board from the context. Returns ErrNoBoard if none is present.
func CurrentBoard(ctx context.Context) (*Board, error) {
	board, ok := ctx.Value(BoardKey).(*Board)
	if !ok || board == nil {
		log.Trace("board not found in context")
		return nil, ErrNoBoard
	}
	return board, nil
}

func CurrentBoardId(ctx context.Context) (string, error) {
	board, err := CurrentBoard(ctx)
	if err != nil {
		return "", err
	}
	return board.Id, nil
}

// EventStore is a calendar.StoreProvider backed by the board in the context.
func EventStore(ctx context.Context) (*calendar.Store, error) {
	board, err := CurrentBoard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current board: %w", err)
	}
	return board.Events, nil
}

// ShoppingStore is a shopping.StoreProvider backed by the board in the context.
func ShoppingStore(ctx context.Context) (*shopping.Store, error) {
	board, err := CurrentBoard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current board: %w", err)
	}
	return board.Shopping, nil
}

package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var nopLogger = zap.NewNop()

// zapMove returns the structured fields describing a move.
func zapMove(piece string, from, to chess.Square, reason string) []zap.Field {
	fields := make([]zap.Field, 0, 4)
	if piece != "" {
		fields = append(fields, zap.String("piece", piece))
	}
	fields = append(fields,
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	if reason != "" {
		fields = append(fields, zap.String("reason", reason))
	}
	return fields
}

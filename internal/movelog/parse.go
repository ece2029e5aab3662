package movelog

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Parse reads a move log. Blank lines and lines starting with '#' are
// skipped. A malformed line yields a *errors.ParseError wrapping
// ErrInvalidMoveLog.
func Parse(r io.Reader) ([]Entry, error) {
	return parse("", r)
}

// ParseFile reads the move log stored at path.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(path, f)
}

// ParseString parses a move log held in memory, such as a saved game's log.
func ParseString(log string) ([]Entry, error) {
	return parse("", strings.NewReader(log))
}

func parse(name string, r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, ok := ParseLine(line)
		if !ok {
			return nil, &errors.ParseError{
				Err:  errors.ErrInvalidMoveLog,
				File: name,
				Line: lineNum,
				Got:  line,
			}
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading move log")
	}
	return entries, nil
}

// ParseLine parses a single log line: "undo" or "<code> from r,c to r,c".
func ParseLine(line string) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) == 1 && strings.EqualFold(fields[0], UndoLine) {
		return UndoEntry(), true
	}
	if len(fields) != 5 || fields[1] != "from" || fields[3] != "to" {
		return Entry{}, false
	}
	piece, err := chess.ParsePieceCode(fields[0])
	if err != nil {
		return Entry{}, false
	}
	from, err := chess.ParseSquare(fields[2])
	if err != nil {
		return Entry{}, false
	}
	to, err := chess.ParseSquare(fields[4])
	if err != nil {
		return Entry{}, false
	}
	return MoveEntry(*piece, from, to), true
}

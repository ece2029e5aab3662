// Package hashing provides duplicate detection for saved games.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobrist holds one key per colour, kind and square plus the side-to-move key.
var zobrist = newZobristTable(0x9e3779b97f4a7c15)

type zobristTable struct {
	pieces      [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	blackToMove uint64
}

// newZobristTable fills the table from a splitmix64 sequence so that hashes
// are stable across runs.
func newZobristTable(seed uint64) *zobristTable {
	next := func() uint64 {
		seed += 0x9e3779b97f4a7c15
		z := seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}
	t := &zobristTable{}
	for c := range t.pieces {
		for k := range t.pieces[c] {
			for sq := range t.pieces[c][k] {
				t.pieces[c][k][sq] = next()
			}
		}
	}
	t.blackToMove = next()
	return t
}

// GenerateZobristHash returns the Zobrist hash of the pieces on board with
// turn to move.
func GenerateZobristHash(board *chess.Board, turn chess.Colour) uint64 {
	var hash uint64
	for _, sq := range board.Occupied() {
		p := board.Get(sq)
		hash ^= zobrist.pieces[p.Colour][p.Kind][sq.Row*chess.BoardSize+sq.Col]
	}
	if turn == chess.Black {
		hash ^= zobrist.blackToMove
	}
	return hash
}

// WeakHash is a cheap second opinion: a material signature of the board.
func WeakHash(board *chess.Board) uint32 {
	var counts [2][chess.NumKinds]uint32
	for _, sq := range board.Occupied() {
		p := board.Get(sq)
		counts[p.Colour][p.Kind]++
	}
	var h uint32 = 17
	for c := range counts {
		for k := range counts[c] {
			h = h*31 + counts[c][k]
		}
	}
	return h
}

// GameSignature identifies a game by its final position.
type GameSignature struct {
	ID       string // Saved game ID
	Hash     uint64 // Zobrist hash of the final position
	WeakHash uint32
	Plies    int // Moves on the board at the end of the game
}

// Signature builds the signature of a game ending on board with turn to move.
func Signature(id string, board *chess.Board, turn chess.Colour, plies int) GameSignature {
	return GameSignature{
		ID:       id,
		Hash:     GenerateZobristHash(board, turn),
		WeakHash: WeakHash(board),
		Plies:    plies,
	}
}

// DuplicateDetector tracks seen final positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// exactMatch also requires equal ply counts
	exactMatch     bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:  make(map[uint64][]GameSignature),
		exactMatch: exactMatch,
	}
}

// CheckAndAdd records sig. If an earlier game matches, it returns that
// game's signature and true; sig is not added in that case.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (GameSignature, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return GameSignature{}, false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.exactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}

package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// Recorder saves finished games for one board and player and tracks the
// best score seen on that board. A Recorder with a nil store still tracks
// the best score for the current process.
type Recorder struct {
	store  *Store
	board  string
	player string
	logger *log.Logger

	mu   sync.Mutex
	best int
}

// NewRecorder loads the stored high score for board. store and logger may be nil.
func NewRecorder(store *Store, board, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Recorder{
		store:  store,
		board:  board,
		player: player,
		logger: logger,
	}
	if store != nil {
		best, err := store.HighScore(board)
		if err != nil {
			logger.Warn("could not load high score", "board", board, "error", err)
		}
		r.best = best
	}
	return r
}

// Board returns the board key scores are saved under.
func (r *Recorder) Board() string {
	return r.board
}

// Best returns the best score known for the board.
func (r *Recorder) Best() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.best
}

// Record saves a finished game. Games without points are not stored.
// It reports whether the game set a new best score.
func (r *Recorder) Record(s engine.Snapshot) bool {
	if s.Score <= 0 {
		return false
	}

	r.mu.Lock()
	improved := s.Score > r.best
	r.best = max(r.best, s.Score)
	r.mu.Unlock()

	if r.store == nil {
		return improved
	}

	_, err := r.store.SaveScore(ScoreEntry{
		Board:   r.board,
		Player:  r.player,
		Score:   s.Score,
		Length:  s.Length,
		Ticks:   s.Ticks,
		Outcome: s.Outcome.String(),
	})
	if err != nil {
		r.logger.Warn("could not save score", "error", err)
		return improved
	}
	r.logger.Info("score saved", "board", r.board, "player", r.player, "score", s.Score)
	return improved
}

package state

// Session tracks the counters that outlive a single level: score,
// coins, lives and the 1-based current level number. Score and level
// persist across a level transition; RestartGame zeroes everything.
type Session struct {
	CurrentLevel int
	Score        int
	Coins        int
	Lives        int
}

// NewSession returns a session at level 1 with the given lives.
func NewSession(lives int) *Session {
	return &Session{CurrentLevel: 1, Lives: lives}
}

// AddScore adds points to the score. Negative deltas are ignored.
func (s *Session) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}

// AddCoin increments the coin counter.
func (s *Session) AddCoin() {
	s.Coins++
}

// AddLife increments the life counter.
func (s *Session) AddLife() {
	s.Lives++
}

// Advance moves to the next level. Score, coins and lives persist.
func (s *Session) Advance() {
	s.CurrentLevel++
}

// Restart resets the session for a full game restart.
func (s *Session) Restart(lives int) {
	s.CurrentLevel = 1
	s.Score = 0
	s.Coins = 0
	s.Lives = lives
}

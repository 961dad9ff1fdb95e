package crossing

// Tracker keeps score and lives.
// Points earned during a tick are pending until Update folds them in.
type Tracker struct {
	startLives int
	lives      int
	score      int
	pending    int
	livesIcon  string
}

// NewTracker creates a tracker that starts every game with lives lives.
func NewTracker(lives int, icon string) *Tracker {
	t := &Tracker{startLives: lives, livesIcon: icon}
	t.Reset()
	return t
}

// Reset restores lives and clears the score.
func (t *Tracker) Reset() {
	t.lives = t.startLives
	t.score = 0
	t.pending = 0
}

// AddPoints queues points for the next fold.
func (t *Tracker) AddPoints(n int) {
	t.pending += n
}

// RemoveLife takes one life. It returns false once no lives are left.
func (t *Tracker) RemoveLife() bool {
	if t.lives <= 0 {
		return false
	}
	t.lives--
	return true
}

// Update folds pending points into the score.
func (t *Tracker) Update(tick Tick) {
	if tick.Paused {
		return
	}
	t.score += t.pending
	t.pending = 0
}

// Lives returns the remaining lives.
func (t *Tracker) Lives() int {
	return t.lives
}

// Score returns the committed score.
func (t *Tracker) Score() int {
	return t.score
}

// Pending returns points not yet folded into the score.
func (t *Tracker) Pending() int {
	return t.pending
}

// LivesIcon is the sprite drawn once per remaining life.
func (t *Tracker) LivesIcon() string {
	return t.livesIcon
}

// SetLivesIcon follows the player's current skin.
func (t *Tracker) SetLivesIcon(sprite string) {
	t.livesIcon = sprite
}

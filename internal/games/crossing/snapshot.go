package crossing

// Snapshot is a flat copy of the world for determinism checks and spectators.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64 `json:"tick"`
	Mode      string `json:"mode"`
	Paused    bool   `json:"paused"`
	Help      bool   `json:"help"`
	HelpIndex int    `json:"help_index"`
	Reason    string `json:"reason,omitempty"`
	Remaining int    `json:"remaining"`
	Score     int    `json:"score"`
	Pending   int    `json:"pending"`
	Lives     int    `json:"lives"`
	Muted     bool   `json:"muted"`

	PlayerRow  int    `json:"player_row"`
	PlayerCol  int    `json:"player_col"`
	PlayerSkin string `json:"player_skin"`

	// Each enemy is 7 ints: Row, X, Speed, Delay, Class, Zombie, ZombieCounter
	EnemyData []int `json:"enemies"`

	// Each charm is 5 ints: Visible, Row, X, PointValue, Remaining
	CharmData []int `json:"charms"`
}

// Fields per entry in the flattened entity slices.
const (
	EnemyStride = 7
	CharmStride = 5
)

// Snapshot returns the current world state.
// X positions are truncated to whole pixels.
func (w *World) Snapshot() Snapshot {
	enemyData := make([]int, w.enemies.Len()*EnemyStride)
	for i := 0; i < w.enemies.Len(); i++ {
		e := w.enemies.At(i)
		idx := i * EnemyStride
		enemyData[idx] = e.Row
		enemyData[idx+1] = int(e.X)
		enemyData[idx+2] = e.Speed
		enemyData[idx+3] = e.Delay
		enemyData[idx+4] = int(e.Class)
		if e.Zombie {
			enemyData[idx+5] = 1
		}
		enemyData[idx+6] = e.ZombieCounter
	}

	charmData := make([]int, w.charms.Len()*CharmStride)
	for i := 0; i < w.charms.Len(); i++ {
		c := w.charms.At(i)
		idx := i * CharmStride
		if c.Visible {
			charmData[idx] = 1
		}
		charmData[idx+1] = c.Row
		charmData[idx+2] = int(c.X)
		charmData[idx+3] = c.PointValue
		charmData[idx+4] = c.Remaining
	}

	return Snapshot{
		Tick:      w.ticks,
		Mode:      w.state.Mode().String(),
		Paused:    w.state.Paused(),
		Help:      w.state.HelpVisible(),
		HelpIndex: w.state.HelpIndex(),
		Reason:    w.state.Reason().String(),
		Remaining: w.state.RemainingSeconds(),
		Score:     w.tracker.Score(),
		Pending:   w.tracker.Pending(),
		Lives:     w.tracker.Lives(),
		Muted:     w.sound.Muted(),

		PlayerRow:  w.player.Row,
		PlayerCol:  w.player.Col,
		PlayerSkin: w.player.Sprite,

		EnemyData: enemyData,
		CharmData: charmData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pending)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerRow) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerCol) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HelpIndex) //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.Mode)
	h = h*31 + hashString(snap.Reason)
	h = h*31 + hashString(snap.PlayerSkin)
	h = h*31 + boolHash(snap.Paused)
	h = h*31 + boolHash(snap.Help)

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.CharmData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

func boolHash(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

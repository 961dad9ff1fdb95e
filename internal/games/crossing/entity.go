package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Positioned is the shared position and hitbox of every entity kind.
// Y caches RowToY(Row); only Row decides whether two entities interact.
type Positioned struct {
	ID           int
	X, Y         float64
	Row          int
	Width        float64 // full sprite width including padding
	VisibleWidth float64 // the part used for hit tests
	BehindBias   float64 // extra reach on the left edge
	Sprite       string
}

// LeftX is the left edge of the hitbox.
func (p Positioned) LeftX() float64 {
	return p.X + p.Width/2 - p.VisibleWidth/2 - p.BehindBias
}

// RightX is the right edge of the hitbox.
func (p Positioned) RightX() float64 {
	return p.X + p.Width/2 + p.VisibleWidth/2
}

// Span returns the hitbox as an interval.
func (p Positioned) Span() core.Span {
	return core.Span{Left: p.LeftX(), Right: p.RightX()}
}

// Overlaps reports whether two entities share a lane and their hitboxes intersect.
func Overlaps(a, b Positioned) bool {
	return a.Row == b.Row && a.Span().Overlaps(b.Span())
}

// ColorClass is the enemy category derived from speed.
// It picks the enemy sprite, the matching charm, kill points and the skin that beats it.
type ColorClass int

const (
	ClassGreen ColorClass = iota
	ClassBlue
	ClassYellow
	ClassPurple
	ClassRed
)

// NumClasses is the number of colour classes.
const NumClasses = 5

var classNames = [NumClasses]string{"green", "blue", "yellow", "purple", "red"}

// String returns the class colour name.
func (c ColorClass) String() string {
	if c < 0 || int(c) >= NumClasses {
		return "unknown"
	}
	return classNames[c]
}

// ClassForSpeed maps a speed onto a class using ascending upper bounds.
// Speeds at or above the last bound fall into the final class.
func ClassForSpeed(speed int, bands []int) ColorClass {
	for i, upper := range bands {
		if speed < upper {
			return ColorClass(i)
		}
	}
	return ColorClass(len(bands))
}

// EnemySprite returns the enemy sprite name for a class.
func EnemySprite(c ColorClass) string {
	return "enemy-bug-" + c.String()
}

// CharmSprite returns the charm sprite name for a class.
func CharmSprite(c ColorClass) string {
	return "gem-" + c.String()
}

// Skins lists the player sprites in cycling order.
// Skin k defeats enemies of ColorClass k.
var Skins = [NumClasses]string{
	"char-boy",
	"char-cat-girl",
	"char-horn-girl",
	"char-pink-girl",
	"char-princess-girl",
}

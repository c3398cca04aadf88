// Package level holds the brick model of a Breakout level: parsing a text
// grid into bricks, laying them out over a play area, and tracking completion.
package level

import (
	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/game_object"
)

// Tile values found in a level grid.
const (
	TileEmpty = 0
	TileSolid = 1
)

// Sprite keys for the two kinds of brick.
const (
	SpriteBlock      = "block"
	SpriteBlockSolid = "block_solid"
)

// SolidColor is the tint of every unbreakable brick.
var SolidColor = common.Vec3{0.8, 0.8, 0.7}

var tileColors = map[int]common.Vec3{
	2: {0.2, 0.6, 1.0},
	3: {0.0, 0.7, 0.0},
	4: {0.8, 0.8, 0.4},
	5: {1.0, 0.5, 0.0},
}

// TileColor returns the tint for a destructible tile value, falling back to
// white for values without an entry.
func TileColor(tile int) common.Vec3 {
	if c, ok := tileColors[tile]; ok {
		return c
	}
	return common.White
}

// GameLevel owns the bricks of a single level. Bricks are created once when the
// level is laid out and afterwards only their Destroyed flag changes.
type GameLevel struct {
	// Name identifies the level, usually its file path.
	Name string

	// Bricks in row-major grid order, empty cells omitted.
	Bricks []game_object.GameObject

	// Tiles is the parsed grid the bricks were built from.
	Tiles [][]int
	// Rows and Cols are the grid dimensions.
	Rows, Cols int

	// DestroyableCount is the number of non-solid bricks.
	DestroyableCount int
	// DestroyedCount is the number of non-solid bricks destroyed so far.
	DestroyedCount int
}

// New lays out a parsed tile grid over a play area of width × height pixels.
// Each cell is (width/cols, height/rows) pixels with row 0 at the top.
//
// Parameters:
//   - name: identifier for the level
//   - tiles: a non-empty rectangular grid of tile values
//   - width: play area width in pixels
//   - height: play area height in pixels
//
// Returns:
//   - *GameLevel: the laid-out level
func New(name string, tiles [][]int, width, height float32) *GameLevel {
	l := &GameLevel{
		Name:  name,
		Tiles: tiles,
		Rows:  len(tiles),
	}
	if l.Rows > 0 {
		l.Cols = len(tiles[0])
	}
	l.Layout(width, height)
	return l
}

// Layout rebuilds the bricks for a play area of width × height pixels. Any
// destruction progress is discarded.
func (l *GameLevel) Layout(width, height float32) {
	l.Bricks = l.Bricks[:0]
	l.DestroyableCount = 0
	l.DestroyedCount = 0
	if l.Rows == 0 || l.Cols == 0 {
		return
	}

	unitW := width / float32(l.Cols)
	unitH := height / float32(l.Rows)

	for y, row := range l.Tiles {
		for x, tile := range row {
			if tile == TileEmpty {
				continue
			}
			opts := []game_object.GameObjectBuilderOption{
				game_object.WithPosition(unitW*float32(x), unitH*float32(y)),
				game_object.WithSize(unitW, unitH),
			}
			if tile == TileSolid {
				opts = append(opts,
					game_object.WithColor(SolidColor),
					game_object.WithSprite(SpriteBlockSolid),
					game_object.WithSolid(true),
				)
			} else {
				opts = append(opts,
					game_object.WithColor(TileColor(tile)),
					game_object.WithSprite(SpriteBlock),
				)
				l.DestroyableCount++
			}
			l.Bricks = append(l.Bricks, *game_object.NewGameObject(opts...))
		}
	}
}

// Destroy marks brick i destroyed and counts it toward completion. Solid and
// already destroyed bricks are left untouched.
//
// Parameters:
//   - i: index into Bricks
//
// Returns:
//   - bool: true if the brick was destroyed by this call
func (l *GameLevel) Destroy(i int) bool {
	b := &l.Bricks[i]
	if b.IsSolid || b.Destroyed {
		return false
	}
	b.Destroyed = true
	l.DestroyedCount++
	return true
}

// Reset revives every brick and clears the destroyed counter without
// reallocating.
func (l *GameLevel) Reset() {
	for i := range l.Bricks {
		l.Bricks[i].Destroyed = false
	}
	l.DestroyedCount = 0
}

// IsComplete reports whether every destructible brick has been destroyed.
func (l *GameLevel) IsComplete() bool {
	return l.DestroyedCount == l.DestroyableCount
}

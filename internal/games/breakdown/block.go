package breakdown

import (
	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
)

// BlockType tags what a block does when destroyed.
type BlockType int

const (
	BlockRegular BlockType = iota // Only scores
	BlockUpgrade                  // Also drops an upgrade coin
)

// String returns the name of the block type.
func (t BlockType) String() string {
	switch t {
	case BlockRegular:
		return "regular"
	case BlockUpgrade:
		return "upgrade"
	default:
		return "unknown"
	}
}

// Block is a destructible grid cell.
type Block struct {
	Rect  core.Rect
	Lives int
	Type  BlockType
}

// NewBlock creates a square block.
func NewBlock(pos core.Vec2, size float64, lives int, typ BlockType) *Block {
	return &Block{
		Rect:  core.NewRect(pos.X, pos.Y, size, size),
		Lives: lives,
		Type:  typ,
	}
}

// Alive reports whether the block still has lives.
func (b *Block) Alive() bool {
	return b.Lives > 0
}

// Hit applies one ball hit. A super ball zeroes the lives, any other ball
// removes one. Returns true only when this hit killed the block.
func (b *Block) Hit(super bool) bool {
	wasAlive := b.Alive()
	if super {
		b.Lives = 0
	} else {
		b.Lives--
	}
	return wasAlive && !b.Alive()
}

// Color returns the draw color for the block's type and damage.
func (b *Block) Color() core.Color {
	switch b.Type {
	case BlockUpgrade:
		return core.ColorGreen
	default:
		switch b.Lives {
		case 2:
			return core.ColorRed
		case 1:
			return core.ColorOrange
		default:
			return core.ColorBlack
		}
	}
}

// GenerateBlocks lays out a centered grid of regular blocks of the given
// (already scaled) size and then turns UpgradePicks random indices into
// upgrade blocks. Picks may repeat.
func GenerateBlocks(cfg config.BlocksConfig, blockSize, screenW float64, rng Rand) []*Block {
	count := cfg.Columns * cfg.Rows
	if count <= 0 {
		return nil
	}

	step := blockSize + cfg.Padding
	start := core.V2((screenW-step*float64(cfg.Columns))*0.5, cfg.StartY)

	blocks := make([]*Block, 0, count)
	for i := range count {
		offset := core.V2(float64(i%cfg.Columns)*step, float64(i/cfg.Columns)*step)
		blocks = append(blocks, NewBlock(start.Add(offset), blockSize, cfg.Lives, BlockRegular))
	}

	for range cfg.UpgradePicks {
		blocks[rng.Intn(len(blocks))].Type = BlockUpgrade
	}
	return blocks
}

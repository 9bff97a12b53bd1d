package sim

// Block is one destructible cell of a shield.
type Block struct {
	X, Y   float64
	Active bool
}

// Shield is a grid of blocks carved into an arch.
type Shield struct {
	X, Y       float64
	Rows, Cols int
	Blocks     []Block // row-major
}

// Shields is the row of structures between the player and the enemies.
type Shields struct {
	Items []Shield
	cfg   ShieldConfig
}

// NewShields builds cfg.Count structures spread across fieldW.
func NewShields(cfg ShieldConfig, fieldW float64) *Shields {
	s := &Shields{cfg: cfg}
	s.Reset(fieldW)
	return s
}

// Reset rebuilds every structure in place, restoring eroded blocks.
// Structures are spaced with equal gaps between them and at both walls.
func (s *Shields) Reset(fieldW float64) {
	if s == nil {
		return
	}
	n := s.cfg.Count
	if len(s.Items) != n {
		s.Items = make([]Shield, n)
	}
	if n == 0 {
		return
	}
	width := float64(s.cfg.Cols) * s.cfg.BlockSize
	gap := (fieldW - float64(n)*width) / float64(n+1)
	for i := range s.Items {
		s.Items[i] = s.build(gap + float64(i)*(width+gap))
	}
}

func (s *Shields) build(x float64) Shield {
	c := s.cfg
	sh := Shield{X: x, Y: c.Y, Rows: c.Rows, Cols: c.Cols, Blocks: make([]Block, c.Rows*c.Cols)}
	archFrom := (c.Cols - c.ArchWidth) / 2
	archTo := archFrom + c.ArchWidth - 1
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			active := true
			switch {
			case c.ArchWidth > 0 && row >= c.Rows-c.ArchRows && col >= archFrom && col <= archTo:
				active = false
			case row == 0 && (col == 0 || col == c.Cols-1):
				active = false
			}
			sh.Blocks[row*c.Cols+col] = Block{
				X:      x + float64(col)*c.BlockSize,
				Y:      c.Y + float64(row)*c.BlockSize,
				Active: active,
			}
		}
	}
	return sh
}

// BlockSize returns the side length of a block.
func (s *Shields) BlockSize() float64 {
	return s.cfg.BlockSize
}

// ResolveImpact erodes the first active block that projectile i touches
// and consumes the projectile. At most one block is removed per call.
// Shields stop fire from both sides.
func (s *Shields) ResolveImpact(ps *Projectiles, i int) bool {
	if s == nil || ps == nil || !ps.pool.Active(i) {
		return false
	}
	r := ps.pool.Get(i).Rect()
	size := s.cfg.BlockSize
	for si := range s.Items {
		sh := &s.Items[si]
		for bi := range sh.Blocks {
			b := &sh.Blocks[bi]
			if !b.Active {
				continue
			}
			if r.Overlaps(Rect{X: b.X, Y: b.Y, W: size, H: size}) {
				b.Active = false
				ps.Release(i)
				return true
			}
		}
	}
	return false
}

// Remaining returns the number of intact blocks across all structures.
func (s *Shields) Remaining() int {
	if s == nil {
		return 0
	}
	n := 0
	for si := range s.Items {
		for _, b := range s.Items[si].Blocks {
			if b.Active {
				n++
			}
		}
	}
	return n
}

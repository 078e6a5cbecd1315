package pong

// Paddle is a vertical bar that only moves up and down.
type Paddle struct {
	X, Y          int16
	Width, Height int16
}

// move shifts the paddle by dy and clamps it to [0, maxY].
func (p *Paddle) move(dy, maxY int16) {
	p.Y += dy
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > maxY {
		p.Y = maxY
	}
}

func (p Paddle) center() int16 { return p.Y + p.Height/2 }

// Ball is a square that travels at a constant speed; only the signs of DX
// and DY ever change.
type Ball struct {
	X, Y   int16
	DX, DY int16
	Size   int16
}

func (b Ball) center() int16 { return b.Y + b.Size/2 }

// advance moves the ball one tick and reflects DY when the ball touches the
// top or bottom edge while heading into it. It reports whether it bounced.
func (b *Ball) advance(height int16) bool {
	b.X += b.DX
	b.Y += b.DY
	if (b.Y <= 0 && b.DY < 0) || (b.Y+b.Size >= height && b.DY > 0) {
		b.DY = -b.DY
		return true
	}
	return false
}

// overlaps reports whether the ball's box touches or overlaps the paddle's.
func (b Ball) overlaps(p Paddle) bool {
	return b.X <= p.X+p.Width && b.X+b.Size >= p.X &&
		b.Y+b.Size >= p.Y && b.Y <= p.Y+p.Height
}

// deflectLeft bounces a ball heading left off p, leaving it flush with the
// paddle's right edge.
func (b *Ball) deflectLeft(p Paddle) bool {
	if b.DX >= 0 || !b.overlaps(p) {
		return false
	}
	b.DX = -b.DX
	b.X = p.X + p.Width
	return true
}

// deflectRight bounces a ball heading right off p, leaving it flush with the
// paddle's left edge.
func (b *Ball) deflectRight(p Paddle) bool {
	if b.DX <= 0 || !b.overlaps(p) {
		return false
	}
	b.DX = -b.DX
	b.X = p.X - b.Size
	return true
}

// out reports whether the ball has left the playfield sideways.
func (b Ball) out(width int16) bool {
	return b.X < 0 || b.X+b.Size > width
}

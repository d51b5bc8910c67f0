package layout

// ScrollState is a vertical scroll cursor.
type ScrollState struct {
	Offset int
}

// Up scrolls one line towards the top. It stops at zero.
func (s ScrollState) Up() ScrollState {
	if s.Offset > 0 {
		s.Offset--
	}
	return s
}

// Down scrolls one line towards the bottom unless the cursor is already on
// the last line of content.
func (s ScrollState) Down(contentHeight int) ScrollState {
	if s.Offset+1 < contentHeight {
		s.Offset++
	}
	return s
}

// Clamp keeps the cursor inside content that may have shrunk.
func (s ScrollState) Clamp(contentHeight int) ScrollState {
	s.Offset = max(0, min(s.Offset, contentHeight-1))
	return s
}

// PageState is the selected page of a pager.
type PageState struct {
	Index int
	Count int
}

// Next selects the following page, wrapping to the first.
func (p PageState) Next() PageState {
	if p.Count <= 0 {
		return p
	}
	p.Index = (p.Index + 1) % p.Count
	return p
}

// Prev selects the preceding page, wrapping to the last.
func (p PageState) Prev() PageState {
	if p.Count <= 0 {
		return p
	}
	p.Index = (p.Index - 1 + p.Count) % p.Count
	return p
}

// TickModulus is where velocity tick counters wrap.
const TickModulus = 1000

// velocityScale is the velocity at which a step happens every tick.
const velocityScale = 1000

// Interval is the number of ticks between unit steps for velocity v.
// It is zero for zero velocity, which never steps.
func Interval(v int) int {
	if v == 0 {
		return 0
	}
	if v < 0 {
		v = -v
	}
	return max(1, velocityScale/v)
}

// StepFor returns the unit step to apply on tick for velocity v: +1 or -1
// when tick falls on the velocity's interval, otherwise 0.
func StepFor(tick, v int) int {
	iv := Interval(v)
	if iv == 0 || tick%iv != 0 {
		return 0
	}
	if v < 0 {
		return -1
	}
	return 1
}

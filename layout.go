package tuicore

// Solve splits area along direction into one Rect per constraint, honoring
// margin and flex. The solver never fails: it always
// returns len(constraints) rectangles, possibly empty ones.
func Solve(area Rect, direction Direction, constraints []Constraint, flex Flex, margin Margin) []Rect {
	n := len(constraints)
	out := make([]Rect, n)
	if n == 0 {
		return out
	}

	var primaryMargin, crossMargin int
	var L int
	if direction == Horizontal {
		primaryMargin = margin.Horizontal()
		crossMargin = margin.Vertical()
		L = area.Width - primaryMargin
	} else {
		primaryMargin = margin.Vertical()
		crossMargin = margin.Horizontal()
		L = area.Height - primaryMargin
	}
	if L < 0 {
		L = 0
	}

	bases, floors, caps, weights, growable, isLength := baseAssign(constraints, L)
	extents := applySlack(bases, floors, caps, weights, growable, isLength, L)
	positions := positionSlots(extents, L, flex, hasFill(constraints))

	crossExtent := crossExtentFor(direction, area) - crossMargin
	if crossExtent < 0 {
		crossExtent = 0
	}
	crossOrigin := crossOriginFor(direction, area, margin)
	primaryOrigin := primaryOriginFor(direction, area, margin)

	for i := 0; i < n; i++ {
		if direction == Horizontal {
			out[i] = NewRect(primaryOrigin+positions[i], crossOrigin, extents[i], crossExtent)
		} else {
			out[i] = NewRect(crossOrigin, primaryOrigin+positions[i], crossExtent, extents[i])
		}
	}
	return out
}

func crossExtentFor(d Direction, area Rect) int {
	if d == Horizontal {
		return area.Height
	}
	return area.Width
}

func crossOriginFor(d Direction, area Rect, m Margin) int {
	if d == Horizontal {
		return area.Y + m.Top
	}
	return area.X + m.Left
}

func primaryOriginFor(d Direction, area Rect, m Margin) int {
	if d == Horizontal {
		return area.X + m.Left
	}
	return area.Y + m.Top
}

func hasFill(constraints []Constraint) bool {
	for _, c := range constraints {
		if c.Kind == ConstraintFill {
			return true
		}
	}
	return false
}

// baseAssign computes each slot's initial value plus
// the floor/cap/weight/growable metadata slack distribution needs.
func baseAssign(constraints []Constraint, L int) (bases, floors, caps, weights []int, growable, isLength []bool) {
	n := len(constraints)
	bases = make([]int, n)
	floors = make([]int, n)
	caps = make([]int, n)
	weights = make([]int, n)
	growable = make([]bool, n)
	isLength = make([]bool, n)
	const noCap = 1 << 30

	for i, c := range constraints {
		caps[i] = noCap
		switch c.Kind {
		case ConstraintLength:
			bases[i] = c.Value
			isLength[i] = true
		case ConstraintPercentage:
			bases[i] = roundDiv(c.Value*L, 100)
		case ConstraintRatio:
			bases[i] = roundDiv(c.Num*L, c.Den)
		case ConstraintMin:
			bases[i] = c.Value
			floors[i] = c.Value
			weights[i] = 1
			growable[i] = true
		case ConstraintMax:
			bases[i] = 0
			caps[i] = c.Value
			weights[i] = 1
			growable[i] = true
		case ConstraintFill:
			bases[i] = 0
			weights[i] = c.Weight
			growable[i] = true
		}
		if bases[i] < 0 {
			bases[i] = 0
		}
	}
	return
}

func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	if (num < 0) != (den < 0) {
		return -((-num + den/2) / den)
	}
	return (num + den/2) / den
}

// applySlack distributes remaining slack across slots: it grows into
// positive slack or shrinks to absorb negative slack, respecting
// floors/caps, and resolves rounding residue round-robin from index 0.
func applySlack(bases, floors, caps, weights []int, growable, isLength []bool, L int) []int {
	n := len(bases)
	extents := append([]int(nil), bases...)
	sum := 0
	for _, v := range extents {
		sum += v
	}
	S := L - sum

	if S > 0 {
		growSlack(extents, caps, weights, growable, S)
	} else if S < 0 {
		shrinkSlack(extents, floors, isLength, -S)
	}
	return extents
}

func growSlack(extents, caps, weights []int, growable []bool, slack int) {
	remaining := make([]int, 0, len(extents))
	for i := range extents {
		if growable[i] {
			remaining = append(remaining, i)
		}
	}
	for slack > 0 && len(remaining) > 0 {
		totalWeight := 0
		for _, i := range remaining {
			totalWeight += weights[i]
		}
		if totalWeight == 0 {
			break
		}
		shares := distributeProportional(slack, pick(weights, remaining))
		overflowed := false
		next := remaining[:0:0]
		consumed := 0
		for k, i := range remaining {
			grown := extents[i] + shares[k]
			if grown > caps[i] {
				overflowed = true
				consumed += caps[i] - extents[i]
				extents[i] = caps[i]
				continue
			}
			extents[i] = grown
			consumed += shares[k]
			next = append(next, i)
		}
		slack -= consumed
		remaining = next
		if !overflowed {
			break
		}
	}
}

func shrinkSlack(extents, floors []int, isLength []bool, deficit int) {
	remaining := make([]int, 0, len(extents))
	for i := range extents {
		if !isLength[i] {
			remaining = append(remaining, i)
		}
	}
	for deficit > 0 && len(remaining) > 0 {
		room := make([]int, len(remaining))
		totalRoom := 0
		for k, i := range remaining {
			room[k] = extents[i] - floors[i]
			totalRoom += room[k]
		}
		if totalRoom <= 0 {
			break
		}
		take := deficit
		if take > totalRoom {
			take = totalRoom
		}
		shares := distributeProportional(take, room)
		next := remaining[:0:0]
		for k, i := range remaining {
			extents[i] -= shares[k]
			if extents[i] < floors[i] {
				extents[i] = floors[i]
			}
			if extents[i] > floors[i] {
				next = append(next, i)
			}
		}
		deficit -= take
		remaining = next
	}
	if deficit > 0 {
		// Last resort: truncate Length slots from the tail.
		for i := len(extents) - 1; i >= 0 && deficit > 0; i-- {
			if !isLength[i] {
				continue
			}
			cut := extents[i]
			if cut > deficit {
				cut = deficit
			}
			extents[i] -= cut
			deficit -= cut
		}
	}
}

func pick(vals []int, idxs []int) []int {
	out := make([]int, len(idxs))
	for k, i := range idxs {
		out[k] = vals[i]
	}
	return out
}

// distributeProportional splits amount across weights proportionally,
// using floor division then handing the rounding residue round-robin from
// index 0 so the shares sum exactly to amount.
func distributeProportional(amount int, weights []int) []int {
	n := len(weights)
	shares := make([]int, n)
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return shares
	}
	assigned := 0
	for i, w := range weights {
		shares[i] = amount * w / total
		assigned += shares[i]
	}
	residue := amount - assigned
	for i := 0; residue > 0 && n > 0; i = (i + 1) % n {
		shares[i]++
		residue--
	}
	return shares
}

// positionSlots computes each slot's offset from the primary origin,
// applying Flex packing when slack remains unconsumed and no Fill
// constraint was present.
func positionSlots(extents []int, L int, flex Flex, hasFill bool) []int {
	n := len(extents)
	positions := make([]int, n)
	used := 0
	for _, e := range extents {
		used += e
	}
	slack := L - used
	if slack <= 0 || hasFill {
		pos := 0
		for i, e := range extents {
			positions[i] = pos
			pos += e
		}
		return positions
	}

	switch flex {
	case FlexEnd:
		pos := slack
		for i, e := range extents {
			positions[i] = pos
			pos += e
		}
	case FlexCenter:
		pos := slack / 2
		for i, e := range extents {
			positions[i] = pos
			pos += e
		}
	case FlexSpaceBetween:
		if n == 1 {
			positions[0] = 0
			break
		}
		gaps := distributeProportional(slack, onesWeights(n-1))
		pos := 0
		for i, e := range extents {
			positions[i] = pos
			pos += e
			if i < n-1 {
				pos += gaps[i]
			}
		}
	case FlexSpaceAround:
		// Each item carries equal padding on both sides; adjacent items'
		// padding merges into one interior gap twice the size of each end
		// gap, so interior gaps get weight 2 and the two end gaps weight 1.
		weights := make([]int, n+1)
		weights[0] = 1
		weights[n] = 1
		for i := 1; i < n; i++ {
			weights[i] = 2
		}
		gaps := distributeProportional(slack, weights)
		pos := gaps[0]
		for i, e := range extents {
			positions[i] = pos
			pos += e
			pos += gaps[i+1]
		}
	case FlexSpaceEvenly:
		gaps := distributeProportional(slack, onesWeights(n+1))
		pos := gaps[0]
		for i, e := range extents {
			positions[i] = pos
			pos += e
			pos += gaps[i+1]
		}
	default: // FlexStart
		pos := 0
		for i, e := range extents {
			positions[i] = pos
			pos += e
		}
	}
	return positions
}

func onesWeights(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

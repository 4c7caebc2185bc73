package tuicore

// ConstraintKind tags which sizing rule a Constraint expresses.
type ConstraintKind uint8

const (
	ConstraintLength ConstraintKind = iota
	ConstraintPercentage
	ConstraintRatio
	ConstraintMin
	ConstraintMax
	ConstraintFill
)

// Constraint is a declarative sizing rule interpreted by the layout solver.
// Only the fields relevant to Kind are meaningful; constructors below are
// the normal way to build one.
type Constraint struct {
	Kind   ConstraintKind
	Value  int // Length(n) / Min(n) / Max(n)
	Num    int // Ratio(num, ...)
	Den    int // Ratio(..., den)
	Weight int // Fill(weight)
}

// Length is a fixed-size constraint of n cells.
func Length(n int) Constraint { return Constraint{Kind: ConstraintLength, Value: n} }

// Percentage is a constraint of p percent of the available length (0..100).
func Percentage(p int) Constraint { return Constraint{Kind: ConstraintPercentage, Value: p} }

// Ratio is a constraint of num/den of the available length. A zero
// denominator is a caller bug, not a legal degenerate ratio.
func Ratio(num, den int) Constraint {
	if den == 0 {
		invalidInput("Ratio denominator must be non-zero")
	}
	return Constraint{Kind: ConstraintRatio, Num: num, Den: den}
}

// MinConstraint is a floor: the slot never shrinks below n.
func MinConstraint(n int) Constraint { return Constraint{Kind: ConstraintMin, Value: n} }

// MaxConstraint is a ceiling: the slot never grows beyond n.
func MaxConstraint(n int) Constraint { return Constraint{Kind: ConstraintMax, Value: n} }

// Fill takes a share of the remaining slack proportional to weight
// (weight>=0; 0 is clamped to 1, the default weight).
func Fill(weight int) Constraint {
	if weight <= 0 {
		weight = 1
	}
	return Constraint{Kind: ConstraintFill, Weight: weight}
}

// Flex is the policy for distributing slack on the primary axis once base
// constraint assignment is complete.
type Flex uint8

const (
	FlexStart Flex = iota
	FlexEnd
	FlexCenter
	FlexSpaceBetween
	FlexSpaceAround
	FlexSpaceEvenly
)

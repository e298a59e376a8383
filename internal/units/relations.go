package units

// Op is a dimension algebra operator.
type Op uint8

const (
	OpMul Op = iota
	OpDiv
)

func (op Op) String() string {
	if op == OpDiv {
		return "/"
	}
	return "*"
}

type dimPair struct {
	left, right Dimension
}

// Must be ready before the package-level units in catalog.go are composed.
var mulTable, divTable = buildTables()

type dimTable map[dimPair]Dimension

func buildTables() (mul, div dimTable) {
	mul, div = make(dimTable), make(dimTable)

	// connect declares a*b = c together with its commuted and inverse forms.
	connect := func(a, b, c Dimension) {
		mul[dimPair{a, b}] = c
		mul[dimPair{b, a}] = c
		div[dimPair{c, a}] = b
		div[dimPair{c, b}] = a
	}
	connect(DimSpeed, DimTime, DimDistance)
	connect(DimAcceleration, DimTime, DimSpeed)
	connect(DimAngularVelocity, DimTime, DimAngle)

	for _, d := range Dimensions() {
		if sq, ok := d.Squared(); ok {
			mul[dimPair{d, d}] = sq
			div[dimPair{sq, d}] = d
		}
	}
	return mul, div
}

// MulDim returns the dimension of a product of a and b. Declared relations
// take precedence; otherwise angle is absorbed by either operand.
func MulDim(a, b Dimension) (Dimension, error) {
	if a.Valid() && b.Valid() {
		if d, ok := mulTable[dimPair{a, b}]; ok {
			return d, nil
		}
		switch {
		case b == DimAngle:
			return a, nil
		case a == DimAngle:
			return b, nil
		}
	}
	return DimNone, &DimensionError{Op: OpMul.String(), Left: a, Right: b}
}

// DivDim returns the dimension of a quotient of a by b. Declared relations
// take precedence; otherwise dividing by angle leaves a unchanged.
func DivDim(a, b Dimension) (Dimension, error) {
	if a.Valid() && b.Valid() {
		if d, ok := divTable[dimPair{a, b}]; ok {
			return d, nil
		}
		if b == DimAngle {
			return a, nil
		}
	}
	return DimNone, &DimensionError{Op: OpDiv.String(), Left: a, Right: b}
}

// ApplyDim combines two dimensions under op.
func ApplyDim(a, b Dimension, op Op) (Dimension, error) {
	if op == OpDiv {
		return DivDim(a, b)
	}
	return MulDim(a, b)
}

// checkResult verifies that a op b yields want.
func checkResult(a, b Dimension, op Op, want Dimension) error {
	got, err := ApplyDim(a, b, op)
	if err != nil {
		return err
	}
	if got != want {
		return &DimensionError{Op: op.String(), Left: a, Right: b, Want: want, Got: got}
	}
	return nil
}

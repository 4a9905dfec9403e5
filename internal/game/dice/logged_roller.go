package dice

import "go.uber.org/zap"

var (
	d20             = MustParse("d20")
	d20Advantage    = MustParse("2d20kh1")
	d20Disadvantage = MustParse("2d20kl1")
	d10             = MustParse("d10")
)

// Roller wraps a Source and logger to provide logged dice rolling.
// All rolls are logged at debug level with expression, dice values, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr and logs the result at debug level.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Ints("kept", result.Kept),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses expr and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or a parse error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(e), nil
}

// RollD20 rolls an attack die. With advantage the higher of two d20 is kept,
// with disadvantage the lower. Advantage wins when both are set.
//
// Postcondition: 1 <= result <= 20.
func (r *Roller) RollD20(advantage, disadvantage bool) int {
	switch {
	case advantage:
		return r.Roll(d20Advantage).Total()
	case disadvantage:
		return r.Roll(d20Disadvantage).Total()
	default:
		return r.Roll(d20).Total()
	}
}

// RollD10 rolls a damage die.
//
// Postcondition: 1 <= result <= 10.
func (r *Roller) RollD10() int {
	return r.Roll(d10).Total()
}

// Intn exposes the underlying Source so catalogs can sample with the same
// randomness the combat rolls use.
func (r *Roller) Intn(n int) int {
	return r.src.Intn(n)
}

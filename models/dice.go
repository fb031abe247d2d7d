package models

import (
	"fmt"
	"strings"
)

// DicePrediction is a parsed dice wager token: a target face and a
// comparison operator. The operator defaults to "=" when omitted.
type DicePrediction struct {
	Target   int
	Operator string
}

var diceOperators = map[string]bool{
	"=": true, ">": true, "<": true, ">=": true, "<=": true,
}

// ParseDicePrediction parses tokens like "3", "4>", "2<=" into a
// prediction. The digit comes first, the operator suffix is optional.
func ParseDicePrediction(token string) (DicePrediction, error) {
	if len(token) == 0 {
		return DicePrediction{}, fmt.Errorf("%w: empty dice prediction", ErrInvalidCommandFormat)
	}

	target := int(token[0] - '0')
	if target < 1 || target > 6 {
		return DicePrediction{}, fmt.Errorf("%w: dice target must be 1-6", ErrInvalidCommandFormat)
	}

	op := strings.TrimSpace(token[1:])
	if op == "" {
		op = "="
	}
	if !diceOperators[op] {
		return DicePrediction{}, fmt.Errorf("%w: unknown dice operator %q", ErrInvalidCommandFormat, op)
	}

	return DicePrediction{Target: target, Operator: op}, nil
}

// Matches reports whether a roll satisfies the prediction.
func (p DicePrediction) Matches(roll int) bool {
	switch p.Operator {
	case ">":
		return roll > p.Target
	case "<":
		return roll < p.Target
	case ">=":
		return roll >= p.Target
	case "<=":
		return roll <= p.Target
	default:
		return roll == p.Target
	}
}

// String renders the prediction back into token form, e.g. "4>".
func (p DicePrediction) String() string {
	if p.Operator == "=" {
		return fmt.Sprintf("%d", p.Target)
	}
	return fmt.Sprintf("%d%s", p.Target, p.Operator)
}

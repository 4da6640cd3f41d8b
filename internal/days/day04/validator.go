package day04

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New() //nolint: gochecknoglobals

// Validator is a predicate on a single passport field. present is false when
// the field is missing, in which case value is empty.
type Validator interface {
	// Field names the passport field the rule applies to.
	Field() Field
	// Check reports whether the field satisfies the rule.
	Check(value string, present bool) bool
}

// Present only requires the field to exist.
type Present struct{ F Field }

// Field implements Validator.
func (v Present) Field() Field { return v.F }

// Check implements Validator.
func (v Present) Check(_ string, present bool) bool { return present }

// YearRange requires a four digit year within [Min, Max].
type YearRange struct {
	F        Field
	Min, Max int
}

// Field implements Validator.
func (v YearRange) Field() Field { return v.F }

// Check implements Validator.
func (v YearRange) Check(value string, present bool) bool {
	if !present || validate.Var(value, "len=4,number") != nil {
		return false
	}
	n, err := strconv.Atoi(value)

	return err == nil && n >= v.Min && n <= v.Max
}

// HeightRange requires a number followed by "cm" or "in", each unit with its
// own inclusive range.
type HeightRange struct {
	Centimeters [2]int
	Inches      [2]int
}

// Field implements Validator.
func (v HeightRange) Field() Field { return Height }

// Check implements Validator.
func (v HeightRange) Check(value string, present bool) bool {
	if !present {
		return false
	}

	bounds := v.Centimeters
	num, ok := strings.CutSuffix(value, "cm")
	if !ok {
		if num, ok = strings.CutSuffix(value, "in"); !ok {
			return false
		}
		bounds = v.Inches
	}
	if validate.Var(num, "required,number") != nil {
		return false
	}
	n, err := strconv.Atoi(num)

	return err == nil && n >= bounds[0] && n <= bounds[1]
}

// OneOf requires the value to be one of a fixed set of words.
type OneOf struct {
	F      Field
	Values []string
}

// Field implements Validator.
func (v OneOf) Field() Field { return v.F }

// Check implements Validator.
func (v OneOf) Check(value string, present bool) bool {
	return present && validate.Var(value, "required,oneof="+strings.Join(v.Values, " ")) == nil
}

// Pattern requires the whole value to match a regular expression.
type Pattern struct {
	F  Field
	Re *regexp.Regexp
}

// Field implements Validator.
func (v Pattern) Field() Field { return v.F }

// Check implements Validator.
func (v Pattern) Check(value string, present bool) bool {
	return present && v.Re.MatchString(value)
}

// RequiredFields checks that every field except cid exists.
func RequiredFields() []Validator {
	return []Validator{
		Present{BirthYear},
		Present{IssueYear},
		Present{ExpirationYear},
		Present{Height},
		Present{HairColor},
		Present{EyeColor},
		Present{PassportID},
	}
}

// StrictRules checks the value of every required field.
func StrictRules() []Validator {
	return []Validator{
		YearRange{F: BirthYear, Min: 1920, Max: 2002},
		YearRange{F: IssueYear, Min: 2010, Max: 2020},
		YearRange{F: ExpirationYear, Min: 2020, Max: 2030},
		HeightRange{Centimeters: [2]int{150, 193}, Inches: [2]int{59, 76}},
		Pattern{F: HairColor, Re: regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)},
		OneOf{F: EyeColor, Values: []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}},
		Pattern{F: PassportID, Re: regexp.MustCompile(`^[0-9]{9}$`)},
	}
}

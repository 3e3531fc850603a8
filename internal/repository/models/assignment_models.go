package models

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryFormative Category = "FA"
	CategorySummative Category = "SA"
)

// Categories lists every category in summary order.
var Categories = []Category{CategoryFormative, CategorySummative}

func (c Category) Valid() bool {
	return c == CategoryFormative || c == CategorySummative
}

// Label returns the long name used in summaries.
func (c Category) Label() string {
	switch c {
	case CategoryFormative:
		return "Formative"
	case CategorySummative:
		return "Summative"
	default:
		return string(c)
	}
}

var hundred = decimal.NewFromInt(100)

// Assignment is a single accepted record. Weighted is derived from Grade and
// Weight by NewAssignment and is not updated afterwards.
type Assignment struct {
	Name     string
	Category Category
	Grade    int
	Weight   int
	Weighted decimal.Decimal
}

func NewAssignment(name string, category Category, grade, weight int) Assignment {
	return Assignment{
		Name:     name,
		Category: category,
		Grade:    grade,
		Weight:   weight,
		Weighted: WeightedScore(grade, weight),
	}
}

// WeightedScore returns grade/100 * weight.
func WeightedScore(grade, weight int) decimal.Decimal {
	return decimal.NewFromInt(int64(grade)).Div(hundred).Mul(decimal.NewFromInt(int64(weight)))
}

type CategoryTotals struct {
	WeightedSum decimal.Decimal
	WeightSum   int
}

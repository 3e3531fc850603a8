package service

import (
	"github.com/godilite/gradegen/internal/repository/models"
	"github.com/shopspring/decimal"
)

type CategoryStatus struct {
	Category    models.Category
	Passed      bool
	WeightedSum decimal.Decimal
	WeightSum   int
	Threshold   decimal.Decimal
	Message     string
}

type Summary struct {
	Formative   CategoryStatus
	Summative   CategoryStatus
	TotalGrade  decimal.Decimal
	TotalWeight int
	ScaledScore decimal.Decimal
	Passed      bool
}

package model

import (
	"cowork/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "organizations"
	EntityName = "organization"

	FieldID             = "id"
	FieldName           = "name"
	FieldMonthlyCredits = "monthly_credits"
)

type Organization struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"`
	MonthlyCredits decimal.Decimal `db:"monthly_credits"`
	model.Metadata
}

package model

import (
	"cowork/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                = "id"
	FieldName              = "name"
	FieldSite              = "site"
	FieldCapacity          = "capacity"
	FieldCreditCostPerHour = "credit_cost_per_hour"
	FieldIsAvailable       = "is_available"
)

// Room is owned by the admin console; the booking engine only reads it.
type Room struct {
	ID                string          `db:"id"`
	Name              string          `db:"name"`
	Site              string          `db:"site"`
	Capacity          int             `db:"capacity"`
	CreditCostPerHour decimal.Decimal `db:"credit_cost_per_hour"`
	IsAvailable       bool            `db:"is_available"`
	model.Metadata
}

package model

import "safari/shared/model"

const (
	TableName  = "activities"
	EntityName = "activity"

	FieldName        = "name"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldCost        = "cost"
)

// CategoryWaterSports halves the accommodation cost of any reservation that includes it.
const CategoryWaterSports = "Water Sports"

type Activity struct {
	Name        string  `db:"name"`
	Category    string  `db:"category"`
	Description string  `db:"description"`
	Cost        float64 `db:"cost"`
	model.Metadata
}

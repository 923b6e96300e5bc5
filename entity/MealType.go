package entity

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
)

func (m MealType) Valid() bool {
	return m == MealBreakfast || m == MealLunch
}

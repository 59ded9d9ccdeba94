package enums

// AbcCategory is the Pareto tier assigned to a product by revenue share.
type AbcCategory string

const (
	AbcCategoryA AbcCategory = "A"
	AbcCategoryB AbcCategory = "B"
	AbcCategoryC AbcCategory = "C"
)

// AbcCategories lists every tier in rank order.
var AbcCategories = []AbcCategory{AbcCategoryA, AbcCategoryB, AbcCategoryC}

func (c AbcCategory) IsValid() bool {
	switch c {
	case AbcCategoryA, AbcCategoryB, AbcCategoryC:
		return true
	}
	return false
}

// UserRole distinguishes API actors.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager:
		return true
	}
	return false
}

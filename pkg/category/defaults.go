package category

import "sort"

// DefaultTree is the category tree used to seed a fresh monthly budget
// template. Every (category, subcategory) pair becomes a zero-amount budget
// line until the user edits it.
var DefaultTree = map[string][]string{
	"Income":        {"Salary", "Others"},
	"Entertainment": {"Sporting Events", "Others", "Spotify or/and Similar", "Cinema", "Concerts & Live", "Specials"},
	"Housing":       {"Supplies", "Cleaning Routine", "Trustee and other services"},
	"Personal Care": {"Hair/Nails", "Clothing", "Dry Cleaning", "Medical", "Others", "Barber"},
	"Transportation": {
		"Fuel", "Vehicle Payment", "Bus/Train rides", "Parking", "Others", "Maintenance", "Insurance",
	},
	"Food":          {"Groceries", "Dining out", "Coffee", "Smoking", "Drinks", "Others"},
	"Debt Payments": {"Friends & Family", "House Mortgage", "Car Debt", "Others"},
	"Bills":         {"Mobile", "Water & Sewer", "Electricity", "Internet", "Others"},
	"Savings":       {"Travel", "Future"},
	"Resources":     {"Computer", "ChatGPT"},
	"Activities":    {"Reading Club"},
}

// SortedCategories returns the categories of DefaultTree in a stable,
// alphabetical order so that template seeding is deterministic.
func SortedCategories() []string {
	names := make([]string, 0, len(DefaultTree))
	for name := range DefaultTree {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

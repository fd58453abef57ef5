package models

// Fixed category lists. The record model validates incoming
// transactions against these; the aggregation layer treats categories
// as opaque strings.

var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investment",
	"Business",
	"Rental",
	"Gift",
	"Other Income",
}

var ExpenseCategories = []string{
	"Food",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills",
	"Medical",
	"Education",
	"Travel",
	"Rent",
	"Utilities",
	"Insurance",
	"Other Expense",
}

func ValidCategory(t TransactionType, category string) bool {
	list := ExpenseCategories
	if t == TypeIncome {
		list = IncomeCategories
	}
	for _, c := range list {
		if c == category {
			return true
		}
	}
	return false
}

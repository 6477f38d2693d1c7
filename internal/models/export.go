package models

import "encoding/json"

// Exporter is implemented by every model so that backup operations do not
// need to enumerate the models themselves.
type Exporter interface {
	Self() string                              // Name of the model
	Export(userID any) (json.RawMessage, error) // All rows of the model owned by the user
}

// The "Registry" is a slice of all models available.
//
// It is maintained so that operations that affect all models do not need to
// explicitly iterate over every single model, increasing the risk of
// forgetting something when adding a new model.
var Registry = []Exporter{
	Budget{},
	Category{},
	Expense{},
	History{},
}

func (Budget) Self() string   { return "Budget" }
func (Category) Self() string { return "Category" }
func (Expense) Self() string  { return "Expense" }
func (History) Self() string  { return "History" }

// Export returns all budgets of the user for export.
func (Budget) Export(userID any) (json.RawMessage, error) {
	var budgets []Budget
	err := DB.Where("user_id = ?", userID).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&budgets)
}

// Export returns all categories of the user for export.
func (Category) Export(userID any) (json.RawMessage, error) {
	var categories []Category
	err := DB.Where("user_id = ?", userID).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&categories)
}

// Export returns all expenses of the user for export.
func (Expense) Export(userID any) (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Where("user_id = ?", userID).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&expenses)
}

// Export returns all history entries of the user for export.
func (History) Export(userID any) (json.RawMessage, error) {
	var histories []History
	err := DB.Where("user_id = ?", userID).Find(&histories).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&histories)
}

package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrCategoryNameNotUnique = errors.New("you can not create two categories with the same name in the same month")
	ErrBudgetMonthNotUnique  = errors.New("there already is a budget for this month")
	ErrHistoryMonthNotUnique = errors.New("there already is a history entry for this month")
	ErrEmailNotUnique        = errors.New("this email address is already registered")
)

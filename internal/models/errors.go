package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrSheetNameInUse = errors.New("a sheet with this name already exists")
	ErrSheetIsDefault = errors.New("the default sheet cannot be deleted")

	ErrRecordKindInvalid = errors.New("the record kind must be expense or income")
	ErrAmountInvalid     = errors.New("the amount must be a finite, non-negative number")
)

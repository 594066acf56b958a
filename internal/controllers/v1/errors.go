package v1

import (
	"errors"
	"net/http"

	"github.com/cashsheet/backend/internal/models"
)

// httpError is the envelope for failed requests.
type httpError struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"a sheet with this name already exists"`
}

func newHTTPError(err error) httpError {
	return httpError{Error: err.Error()}
}

// status returns the appropriate status for a database error. Business
// rule rejections are client errors, only unexpected store failures map
// to a server error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

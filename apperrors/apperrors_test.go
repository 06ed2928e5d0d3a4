package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gotest.tools/assert"
)

func TestTaxonomy(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{NotFound("Product", 7), http.StatusNotFound, "RESOURCE_NOT_FOUND"},
		{NotFoundMsg("products-not-found"), http.StatusNotFound, "RESOURCE_NOT_FOUND"},
		{Validation("bad input"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{ValidationFields(map[string][]string{"units": {"negative"}}), http.StatusBadRequest, "VALIDATION_ERROR"},
		{BusinessRule("count must be a number."), http.StatusBadRequest, "BUSINESS_RULE_VIOLATION"},
		{ReferentialIntegrity("in use"), http.StatusConflict, "REFERENTIAL_INTEGRITY_VIOLATION"},
		{Database("store down", errors.New("conn refused")), http.StatusInternalServerError, "DATABASE_ERROR"},
		{&Error{Message: "???"}, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status())
		assert.Equal(t, tc.code, tc.err.Code())
	}

	assert.Equal(t, "Product with ID '7' was not found.", NotFound("Product", 7).Error())
}

func TestUnwrapAndAs(t *testing.T) {
	cause := errors.New("pq: connection reset")
	err := Database("store down", cause)

	assert.Equal(t, cause, errors.Unwrap(err))

	wrapped := fmt.Errorf("deleting product: %w", err)

	var appErr *Error
	assert.Equal(t, true, errors.As(wrapped, &appErr))
	assert.Equal(t, DatabaseKind, appErr.Kind)
}

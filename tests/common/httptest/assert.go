//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	// The error field is either a plain string or an object with a
	// message, depending on whether the handler went through httperr.
	var errorResponse struct {
		Error json.RawMessage `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	var message string
	if err := json.Unmarshal(errorResponse.Error, &message); err != nil {
		var wrapped struct {
			Message string `json:"message"`
		}
		err = json.Unmarshal(errorResponse.Error, &wrapped)
		assert.NoError(t, err, fmt.Sprintf("Unrecognized error payload: %s", w.Body.String()))
		message = wrapped.Message
	}

	if expectedErrorMsg != "" {
		assert.Contains(t, message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

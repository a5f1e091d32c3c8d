package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWrapMatchesSentinel(t *testing.T) {
	cause := stderrors.New("row missing")
	wrapped := Wrap(ErrNotFound, cause)

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, ErrForbidden)

	// the sentinel never picks up the cause
	assert.Nil(t, ErrNotFound.Err)
}

func TestWrapSurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("checkout: %w", Wrap(ErrEmptyCart, nil))
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCredentialErrorsAreDistinct(t *testing.T) {
	sentinels := []*Error{ErrMalformedToken, ErrTokenExpired, ErrInvalidToken, ErrMissingSubject}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				assert.ErrorIs(t, a, b)
			} else {
				assert.NotErrorIs(t, a, b, "%s vs %s", a.Message, b.Message)
			}
		}
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(ErrSerializationConflict))
	assert.True(t, Retryable(Wrap(ErrSerializationConflict, stderrors.New("40001"))))
	assert.False(t, Retryable(ErrStorageFailure))
	assert.False(t, Retryable(ErrEmptyCart))
	assert.False(t, Retryable(nil))
}

func TestHandleGin_AppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleGin(c, Wrap(ErrForbidden, stderrors.New("owner mismatch")))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"code":403,"message":"Forbidden"}`, w.Body.String())
}

func TestHandleGin_MasksUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleGin(c, stderrors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

package myhttp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myerrors"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	writer := NewWriter(mylog.New("test"))

	t.Run("Write success", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.Write(context.TODO(), response, http.StatusOK, struct{ TotalItemCount int }{TotalItemCount: 3})

		assert.Equal(t, 200, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		assert.Equal(t, "{\n\t\"TotalItemCount\": 3\n}\n", response.Body.String())
	})

	t.Run("Write coded error", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(context.TODO(), response, 2, myerrors.NewNotFoundError(fmt.Errorf("dessert not found")))

		assert.Equal(t, 404, response.Code)
		assert.Contains(t, response.Body.String(), "\"ErrorCode\": 2")
		assert.Contains(t, response.Body.String(), "status: 404, err: dessert not found")
	})

	t.Run("Write plain error", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(context.TODO(), response, 1, fmt.Errorf("boom"))

		assert.Equal(t, 500, response.Code)
	})
}

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The blank-name check fires before the service is touched, so the handlers
// can run against a nil service here.
func blankNameRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUsersHandler(nil)
	r := gin.New()
	r.POST("/users", h.HandleCreate)
	r.PATCH("/users/:id", h.HandleUpdate)
	return r
}

func TestCreateUser_RejectsBlankFullName(t *testing.T) {
	t.Parallel()
	r := blankNameRouter()

	req := httptest.NewRequest(http.MethodPost, "/users",
		bytes.NewBufferString(`{"email":"a@b.com","password":"secret123","fullName":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must not be blank")
}

func TestUpdateUser_RejectsBlankFullName(t *testing.T) {
	t.Parallel()
	r := blankNameRouter()

	req := httptest.NewRequest(http.MethodPatch, "/users/1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		bytes.NewBufferString(`{"fullName":" "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must not be blank")
}

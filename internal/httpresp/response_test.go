package httpresp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestListRendersEmptySliceForNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	List[string](c, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}

func TestPageResponseKeepsGrandTotal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, PageResponse[int]{Page: 2, Limit: 2, Total: 5, Data: []int{3, 4}})

	assert.JSONEq(t, `{"page":2,"limit":2,"total":5,"data":[3,4]}`, w.Body.String())
}

func TestStatusHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, map[string]string{"id": "a1"})
	assert.Equal(t, http.StatusCreated, w.Code)

	r := gin.New()
	r.POST("/accepted", Accepted)
	r.DELETE("/gone", NoContent)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/accepted", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/gone", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON_KeepsHTMLCharacters(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"prompt": "<b> & </b>"})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "{\"prompt\":\"<b> & </b>\"}\n", rec.Body.String())
}

func TestIndentedJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	IndentedJSON(rec, http.StatusOK, map[string]int{"a": 1})

	assert.Equal(t, "{\n  \"a\": 1\n}\n", rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "resource not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found","message":"resource not found"}`, rec.Body.String())
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	Attachment(rec, "Acme Site.json", "application/json", []byte(`{}`))

	assert.Equal(t, `attachment; filename="Acme Site.json"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "2", rec.Header().Get("Content-Length"))
	assert.Equal(t, `{}`, rec.Body.String())
}

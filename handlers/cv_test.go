package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvinsight/config"
	"cvinsight/nlp"
	"cvinsight/parsers"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.AppConfig{
		UploadDir:     t.TempDir(),
		MaxUploadSize: 10 << 20,
	}
	parser := parsers.NewCVParser(nlp.NewHeuristicProvider())
	handler := NewCVHandler(parser, nil, cfg, zerolog.Nop())

	r := gin.New()
	r.GET("/api/health", Health)
	r.POST("/api/cv/upload", handler.Upload)
	return r
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestUpload_NoFile(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/upload", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_WrongFieldName(t *testing.T) {
	router := setupRouter(t)

	// The route reads the "cv" multipart field only.
	body, contentType := multipartBody(t, "attachment", "resume.txt", []byte("John Smith"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_DisallowedExtension(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, "cv", "resume.exe", []byte("MZ"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestUpload_TooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.AppConfig{UploadDir: t.TempDir(), MaxUploadSize: 16}
	parser := parsers.NewCVParser(nlp.NewHeuristicProvider())
	handler := NewCVHandler(parser, nil, cfg, zerolog.Nop())
	router := gin.New()
	router.POST("/api/cv/upload", handler.Upload)

	body, contentType := multipartBody(t, "cv", "resume.txt", bytes.Repeat([]byte("a"), 64))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_ParsesTXT(t *testing.T) {
	router := setupRouter(t)

	resume := []byte(`John Smith
john.smith@email.com
(123) 456-7890

SUMMARY
Experienced software engineer building web applications.

SKILLS
Python, SQL, Docker
`)
	body, contentType := multipartBody(t, "cv", "resume.txt", resume)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/cv/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payload struct {
		Profile        json.RawMessage `json:"profile"`
		ProcessingTime float64         `json:"processing_time"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Profile)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(payload.Profile, &profile))
	assert.Equal(t, "John Smith", profile["name"])
	assert.Equal(t, "john.smith@email.com", profile["email"])
	// Raw text stays internal unless explicitly enabled.
	assert.NotContains(t, profile, "raw_text")
}

package integration_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"shopvid_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sendMultipart posts a multipart form to the upload endpoint. When
// filename is empty no file part is attached.
func sendMultipart(t *testing.T, ts *helpers.TestServer, token, filename, contentType string, fileBody []byte, fields map[string]string) (*http.Response, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if filename != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(fileBody)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/v1/videos/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	defer res.Body.Close()

	return res, string(body)
}

func TestUpload_RejectsDisallowedContentType(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token := helpers.MintSessionToken(t, helpers.UniqueShop())

	// Rejected before any credential is signed or byte transferred
	res, bodyStr := sendMultipart(t, ts, token, "notes.txt", "text/plain", []byte("hello"), map[string]string{
		"title": "Not a video",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "not allowed")
}

func TestUpload_RequiresFile(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token := helpers.MintSessionToken(t, helpers.UniqueShop())

	res, bodyStr := sendMultipart(t, ts, token, "", "", nil, map[string]string{
		"title": "No file here",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "no file provided")
}

func TestUpload_AuthRequired(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := sendMultipart(t, ts, "", "clip.mp4", "video/mp4", []byte("bytes"), nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

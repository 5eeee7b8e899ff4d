package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Write(body)
})

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		body           []byte
		contentEnc     string
		acceptEnc      string
		wantStatus     int
		wantCompressed bool
	}{
		{name: "plain in, plain out", body: []byte(`{"age":30}`), wantStatus: http.StatusOK},
		{name: "plain in, gzip out", body: []byte(`{"age":30}`), acceptEnc: "gzip, deflate", wantStatus: http.StatusOK, wantCompressed: true},
		{name: "gzip in, plain out", body: gzipBytes(t, `{"age":30}`), contentEnc: "gzip", wantStatus: http.StatusOK},
		{name: "gzip in, gzip out", body: gzipBytes(t, `{"age":30}`), contentEnc: "gzip", acceptEnc: "gzip", wantStatus: http.StatusOK, wantCompressed: true},
		{name: "broken gzip header", body: []byte("not gzip"), contentEnc: "gzip", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(tt.body))
			if tt.contentEnc != "" {
				req.Header.Set("Content-Encoding", tt.contentEnc)
			}
			if tt.acceptEnc != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEnc)
			}
			rec := httptest.NewRecorder()

			withGZip(echoHandler).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			if tt.wantCompressed {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, `{"age":30}`, gunzip(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, `{"age":30}`, rec.Body.String())
		})
	}
}

// A handler that only writes a status still yields a valid gzip stream.
func TestGZip_StatusOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "", gunzip(t, rec.Body.Bytes()))
}

func TestGZip_PoolReuse(t *testing.T) {
	handler := withGZip(echoHandler)
	for i := 0; i < 20; i++ {
		payload := strings.Repeat("x", i)
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, payload)))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { called = true }}
	assert.NoError(t, rc.Close())
	assert.True(t, called)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}

package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "599.99", want: 59999},
		{in: "600", want: 60000},
		{in: "0.01", want: 1},
		{in: "0", want: 0},
		{in: "", wantErr: e.ErrInvalidPrice},
		{in: "abc", wantErr: e.ErrInvalidPrice},
		{in: "-5", wantErr: e.ErrInvalidPrice},
		{in: "5.999", wantErr: e.ErrPricePrecision},
		{in: "9999999999999", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePriceToCents(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCentsToPrice(t *testing.T) {
	assert.Equal(t, "599.99", centsToPrice(59999))
	assert.Equal(t, "600.00", centsToPrice(60000))
	assert.Equal(t, "0.01", centsToPrice(1))
	assert.Equal(t, "0.00", centsToPrice(0))
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "category not found", err: e.ErrCategoryNotFound, want: http.StatusNotFound},
		{name: "product not found", err: e.ErrProductNotFound, want: http.StatusNotFound},
		{name: "user not found", err: e.ErrUserNotFound, want: http.StatusNotFound},
		{name: "order not found", err: e.ErrOrderNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: e.Wrap("OrderUseCase.GetOrder", e.ErrOrderNotFound), want: http.StatusNotFound},
		{name: "invalid id", err: e.ErrInvalidID, want: http.StatusBadRequest},
		{name: "bad status", err: e.ErrInvalidOrderStatus, want: http.StatusBadRequest},
		{name: "stock out of range", err: e.ErrStockOutOfRange, want: http.StatusBadRequest},
		{name: "duplicate email", err: e.ErrDuplicateEmail, want: http.StatusBadRequest},
		{name: "missing token", err: e.ErrMissingToken, want: http.StatusUnauthorized},
		{name: "revoked token", err: e.ErrTokenRevoked, want: http.StatusUnauthorized},
		{name: "bad credentials", err: e.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "unknown error", err: assert.AnError, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestToHTTPResponse_HidesInternalDetails(t *testing.T) {
	_, msg := ToHTTPResponse(assert.AnError)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}

func TestEnsureMultipartForm(t *testing.T) {
	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/products/gallery-images/1", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")

		err := ensureMultipartForm(req, 32<<20)
		assert.ErrorIs(t, err, e.ErrExpectedMultipart)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/products/gallery-images/1", strings.NewReader("not a multipart body"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")

		err := ensureMultipartForm(req, 32<<20)
		assert.ErrorIs(t, err, e.ErrStatusBadRequest)
	})

	t.Run("valid form", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("images", "a.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("payload"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPut, "/products/gallery-images/1", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		assert.NoError(t, ensureMultipartForm(req, 32<<20))
	})
}

func multipartFileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("images", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["images"], 1)

	return form.File["images"][0]
}

func TestReadFile_SizeLimit(t *testing.T) {
	fh := multipartFileHeader(t, "big.bin", bytes.Repeat([]byte{0xAB}, 64))

	_, _, err := readFile(fh, 16)
	assert.ErrorIs(t, err, e.ErrFileTooLarge)
}

func TestReadFile_WithinLimit(t *testing.T) {
	payload := []byte("small image payload")
	fh := multipartFileHeader(t, "small.bin", payload)

	data, mimeType, err := readFile(fh, int64(len(payload)))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.NotEmpty(t, mimeType)
}

package handlers_test

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jroosing/wiredns/internal/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMessageHex = "04b0850000010002000100020474657374076578616d706c6503636f6d0000" +
	"010001c00c0001000100000e100004c0000202c00c0001000100000e100004" +
	"c0000201c0110002000100000e100006036e7331c011c04e0001000100000e" +
	"100004020202020000291000000000000000"

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, jsonBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDecode_Hex(t *testing.T) {
	h := newTestHandler(t)
	r := setupTestRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/v1/decode", models.DecodeRequest{Hex: sampleMessageHex})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DecodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test.example.com.", resp.Message.Questions[0].Name)
	assert.Equal(t, "A", resp.Message.Questions[0].Type)
	assert.Len(t, resp.Message.Answer, 1)
	require.NotNil(t, resp.Message.EDNS)
	assert.Equal(t, uint16(4096), resp.Message.EDNS.UDPPayloadSize)
}

func TestDecode_Base64(t *testing.T) {
	h := newTestHandler(t)
	r := setupTestRouter(h)

	raw, err := hex.DecodeString(sampleMessageHex)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/v1/decode", models.DecodeRequest{Base64: base64.StdEncoding.EncodeToString(raw)})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDecode_EmptyPayload(t *testing.T) {
	h := newTestHandler(t)
	r := setupTestRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/v1/decode", models.DecodeRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecode_BadHex(t *testing.T) {
	h := newTestHandler(t)
	r := setupTestRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/v1/decode", models.DecodeRequest{Hex: "zz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecode_TruncatedMessage(t *testing.T) {
	h := newTestHandler(t)
	r := setupTestRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/v1/decode", models.DecodeRequest{Hex: "0000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

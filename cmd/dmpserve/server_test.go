package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyphdiff/dmp/modules/dmp"
)

func signToken(t *testing.T, key []byte) string {
	t.Helper()
	claims := &Claims{
		Subject: "test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestHandleDiffRequiresAuth(t *testing.T) {
	s := NewServer(":0", dmp.DefaultConfig(), []byte("secret"))
	req := httptest.NewRequest(http.MethodPost, "/v1/diff", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleDiff(t *testing.T) {
	key := []byte("secret")
	s := NewServer(":0", dmp.DefaultConfig(), key)
	body, _ := json.Marshal(diffRequest{Text1: "hello world", Text2: "hello there"})
	req := httptest.NewRequest(http.MethodPost, "/v1/diff", bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer "+signToken(t, key))
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp diffResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Diffs)
}

func TestHandleDeltaRoundTrip(t *testing.T) {
	key := []byte("secret")
	s := NewServer(":0", dmp.DefaultConfig(), key)
	token := signToken(t, key)

	encBody, _ := json.Marshal(deltaEncodeRequest{Text1: "abc", Text2: "abd"})
	encReq := httptest.NewRequest(http.MethodPost, "/v1/delta/encode", bytes.NewBuffer(encBody))
	encReq.Header.Set("Authorization", "Bearer "+token)
	encRec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(encRec, encReq)
	require.Equal(t, http.StatusOK, encRec.Code)

	var encResp map[string]string
	require.NoError(t, json.Unmarshal(encRec.Body.Bytes(), &encResp))

	decBody, _ := json.Marshal(deltaDecodeRequest{Text1: "abc", Delta: encResp["delta"]})
	decReq := httptest.NewRequest(http.MethodPost, "/v1/delta/decode", bytes.NewBuffer(decBody))
	decReq.Header.Set("Authorization", "Bearer "+token)
	decRec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(decRec, decReq)
	require.Equal(t, http.StatusOK, decRec.Code)

	var decResp map[string]string
	require.NoError(t, json.Unmarshal(decRec.Body.Bytes(), &decResp))
	assert.Equal(t, "abd", decResp["text2"])
}

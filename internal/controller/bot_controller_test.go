package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"campportal/internal/config"
	"campportal/internal/controller"

	"gotest.tools/v3/assert"
)

func postIssueCode(portal *testPortal, key string, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/bot/link-code", strings.NewReader(body))
	if key != "" {
		req.Header.Set(config.BotKeyHeader, key)
	}
	portal.engine.ServeHTTP(recorder, req)
	return recorder
}

func TestIssueCodeHandler(t *testing.T) {
	portal := setupPortal(t)

	recorder := postIssueCode(portal, testBotKey, `{"user_id": 42, "username": "rex"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var res controller.IssueCodeResponse
	assert.NilError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Assert(t, regexp.MustCompile(`^[0-9A-F]{6}$`).MatchString(res.Code))
	assert.Equal(t, int64(config.CodeExpiry.Seconds()), res.ExpiresIn)

	// The minted code redeems.
	linkRecorder := postLink(portal, `{"code": "`+res.Code+`"}`)
	assert.Equal(t, http.StatusOK, linkRecorder.Code)
}

func TestIssueCodeHandlerBadKey(t *testing.T) {
	portal := setupPortal(t)

	recorder := postIssueCode(portal, "wrong-key", `{"user_id": 42, "username": "rex"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = postIssueCode(portal, "", `{"user_id": 42, "username": "rex"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestIssueCodeHandlerBadBody(t *testing.T) {
	portal := setupPortal(t)

	recorder := postIssueCode(portal, testBotKey, `not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postIssueCode(portal, testBotKey, `{"user_id": 0, "username": "rex"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postIssueCode(portal, testBotKey, `{"user_id": 42, "username": ""}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

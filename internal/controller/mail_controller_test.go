package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campportal/internal/config"
	"campportal/internal/controller"
	"campportal/internal/model"

	"gotest.tools/v3/assert"
)

func mailRequest(portal *testPortal, method string, path string, token string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(config.SessionTokenHeader, token)
	}
	portal.engine.ServeHTTP(recorder, req)
	return recorder
}

func seedMail(t *testing.T, portal *testPortal, userID int64, subject string) int64 {
	t.Helper()

	message := model.Mail{
		UserID:    userID,
		Sender:    "Chiron",
		Subject:   subject,
		Body:      "Report to the big house.",
		CreatedAt: time.Now(),
	}
	assert.NilError(t, portal.database.Create(&message).Error)
	return message.MailID
}

func TestMailList(t *testing.T) {
	portal := setupPortal(t)
	token := portal.login(t, 42, "rex")

	seedMail(t, portal, 42, "First")
	seedMail(t, portal, 42, "Second")
	seedMail(t, portal, 99, "Not yours")

	recorder := mailRequest(portal, "GET", "/api/mail", token)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var res struct {
		Mail []controller.MailResponse `json:"mail"`
	}
	assert.NilError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, 2, len(res.Mail))

	for _, message := range res.Mail {
		assert.Assert(t, message.Subject != "Not yours")
	}
}

func TestMailListUnauthenticated(t *testing.T) {
	portal := setupPortal(t)

	recorder := mailRequest(portal, "GET", "/api/mail", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = mailRequest(portal, "GET", "/api/mail", "bogus")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMailRead(t *testing.T) {
	portal := setupPortal(t)
	token := portal.login(t, 42, "rex")

	mailID := seedMail(t, portal, 42, "Quest assignment")

	recorder := mailRequest(portal, "POST", "/api/mail/read/"+itoa(mailID), token)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var message model.Mail
	assert.NilError(t, portal.database.First(&message, "mail_id = ?", mailID).Error)
	assert.Assert(t, message.IsRead)
}

// Mutating another player's mail must look exactly like a missing row.
func TestMailOwnership(t *testing.T) {
	portal := setupPortal(t)
	token := portal.login(t, 42, "rex")

	otherID := seedMail(t, portal, 99, "Private")

	recorder := mailRequest(portal, "POST", "/api/mail/read/"+itoa(otherID), token)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = mailRequest(portal, "DELETE", "/api/mail/"+itoa(otherID), token)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var message model.Mail
	assert.NilError(t, portal.database.First(&message, "mail_id = ?", otherID).Error)
	assert.Assert(t, !message.IsRead)
}

func TestMailDelete(t *testing.T) {
	portal := setupPortal(t)
	token := portal.login(t, 42, "rex")

	mailID := seedMail(t, portal, 42, "Old news")

	recorder := mailRequest(portal, "DELETE", "/api/mail/"+itoa(mailID), token)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	assert.NilError(t, portal.database.Model(&model.Mail{}).Where("mail_id = ?", mailID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Already gone.
	recorder = mailRequest(portal, "DELETE", "/api/mail/"+itoa(mailID), token)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestMailBadID(t *testing.T) {
	portal := setupPortal(t)
	token := portal.login(t, 42, "rex")

	recorder := mailRequest(portal, "POST", "/api/mail/read/abc", token)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = mailRequest(portal, "DELETE", "/api/mail/abc", token)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"mindease/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileAggregates(t *testing.T) {
	app, db := newTestApp(t)
	ayesha := seedUser(t, db, "ayesha")
	borhan := seedUser(t, db, "borhan")
	chitra := seedUser(t, db, "chitra")

	require.NoError(t, db.Create(&models.FriendRelation{
		UserID: ayesha.ID, FriendID: borhan.ID, Status: models.FriendStatusAccepted,
	}).Error)
	require.NoError(t, db.Create(&models.FriendRelation{
		UserID: chitra.ID, FriendID: ayesha.ID, Status: models.FriendStatusPending,
	}).Error)

	resp := jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/profile/%d", ayesha.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var profile struct {
		User struct {
			ID    uint   `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
		FriendsCount    int64 `json:"friendsCount"`
		PendingRequests []struct {
			RequestID     uint   `json:"request_id"`
			RequesterID   uint   `json:"requester_id"`
			RequesterName string `json:"requester_name"`
		} `json:"pendingRequests"`
	}
	decodeBody(t, resp, &profile)

	assert.Equal(t, ayesha.ID, profile.User.ID)
	assert.Equal(t, "ayesha", profile.User.Name)
	assert.Equal(t, int64(1), profile.FriendsCount)
	require.Len(t, profile.PendingRequests, 1)
	assert.Equal(t, chitra.ID, profile.PendingRequests[0].RequesterID)
	assert.Equal(t, "chitra", profile.PendingRequests[0].RequesterName)
}

func TestGetProfileUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	resp := jsonRequest(t, app, http.MethodGet, "/profile/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestUpdateProfileOverwrites(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "ayesha")
	require.NoError(t, db.Model(user).Updates(map[string]any{
		"nickname": "aye", "bio": "old bio",
	}).Error)

	resp := jsonRequest(t, app, http.MethodPut, "/profile", map[string]any{
		"userId": user.ID,
		"name":   "Ayesha R.",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Profile updated", body["message"])

	// PUT overwrites the whole profile: omitted fields become null.
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "Ayesha R.", reloaded.Name)
	assert.Nil(t, reloaded.Nickname)
	assert.Nil(t, reloaded.Bio)
}

func TestUpdateProfileWithoutName(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "ayesha")

	resp := jsonRequest(t, app, http.MethodPut, "/profile", map[string]any{
		"userId": user.ID,
		"bio":    "new bio",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Profile updated", body["message"])

	// Omitting name overwrites it to null like any other field.
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Empty(t, reloaded.Name)
	require.NotNil(t, reloaded.Bio)
	assert.Equal(t, "new bio", *reloaded.Bio)
}

func TestUpdateProfileRequiresUserID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := jsonRequest(t, app, http.MethodPut, "/profile", map[string]any{
		"name": "No One",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestUploadAvatar(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "ayesha")

	resp := formRequest(t, app, "/profile/upload", map[string]string{
		"userId": fmt.Sprint(user.ID),
	}, "avatar", "me.png", []byte("fake png"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	avatarURL := body["avatarUrl"]
	assert.True(t, strings.HasPrefix(avatarURL, fmt.Sprintf("/uploads/avatar_%d_", user.ID)),
		"unexpected avatar URL %q", avatarURL)
	assert.True(t, strings.HasSuffix(avatarURL, ".png"))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.NotNil(t, reloaded.AvatarURL)
	assert.Equal(t, avatarURL, *reloaded.AvatarURL)

	// Avatar is immediately retrievable through the static route.
	fileResp := jsonRequest(t, app, http.MethodGet, avatarURL, nil)
	assert.Equal(t, http.StatusOK, fileResp.StatusCode)
	_ = fileResp.Body.Close()
}

func TestUploadAvatarMissingFile(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "ayesha")

	resp := formRequest(t, app, "/profile/upload", map[string]string{
		"userId": fmt.Sprint(user.ID),
	}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"shopvid_backend/internal/models"
	"shopvid_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_AttachAndList(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	shop := helpers.UniqueShop()
	token := helpers.MintSessionToken(t, shop)

	video := helpers.CreateVideo(t, ts.DB, shop, "Taggable", "all", "https://cdn.example.com/t.mp4")

	body := map[string]interface{}{
		"products": []map[string]string{
			{"productId": "gid://shopify/Product/1", "handle": "red-shirt"},
			{"productId": "gid://shopify/Product/2", "handle": "blue-shirt", "variantId": "gid://shopify/ProductVariant/20"},
		},
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/videos/"+video.ID+"/tags", token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var out struct {
		Tags []models.ProductTag `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &out))
	require.Len(t, out.Tags, 2)
	assert.Equal(t, video.ID, out.Tags[0].VideoID)
}

func TestTag_DuplicateIsSkipped(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	shop := helpers.UniqueShop()
	token := helpers.MintSessionToken(t, shop)

	video := helpers.CreateVideo(t, ts.DB, shop, "Taggable", "all", "https://cdn.example.com/t.mp4")
	helpers.CreateTag(t, ts.DB, video.ID, "gid://shopify/Product/1", "red-shirt")

	// Tagging the same product again is a silent no-op; the tag list
	// stays a set
	body := map[string]interface{}{
		"products": []map[string]string{
			{"productId": "gid://shopify/Product/1", "handle": "red-shirt"},
		},
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/videos/"+video.ID+"/tags", token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var out struct {
		Tags []models.ProductTag `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &out))
	assert.Len(t, out.Tags, 1)
}

func TestTag_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	shop := helpers.UniqueShop()
	token := helpers.MintSessionToken(t, shop)

	video := helpers.CreateVideo(t, ts.DB, shop, "Taggable", "all", "https://cdn.example.com/t.mp4")
	tag := helpers.CreateTag(t, ts.DB, video.ID, "gid://shopify/Product/1", "red-shirt")

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/api/v1/videos/"+video.ID+"/tags/"+tag.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// Removing an already-removed tag still succeeds
	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/videos/"+video.ID+"/tags/"+tag.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
}

func TestTag_OwnershipChecked(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	ownerShop := helpers.UniqueShop()
	otherToken := helpers.MintSessionToken(t, helpers.UniqueShop())

	video := helpers.CreateVideo(t, ts.DB, ownerShop, "Private", "all", "https://cdn.example.com/p.mp4")
	tag := helpers.CreateTag(t, ts.DB, video.ID, "gid://shopify/Product/1", "red-shirt")

	// Tagging through another shop's video is a 404
	body := map[string]interface{}{
		"products": []map[string]string{{"productId": "gid://shopify/Product/2"}},
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/videos/"+video.ID+"/tags", otherToken, body)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/videos/"+video.ID+"/tags/"+tag.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestTag_EmptyProductsRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	shop := helpers.UniqueShop()
	token := helpers.MintSessionToken(t, shop)

	video := helpers.CreateVideo(t, ts.DB, shop, "Taggable", "all", "https://cdn.example.com/t.mp4")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/videos/"+video.ID+"/tags", token, map[string]interface{}{
		"products": []map[string]string{},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/videos/"+video.ID+"/tags", token, map[string]interface{}{
		"products": []map[string]string{{"handle": "no-id"}},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestTag_CascadeOnVideoDelete(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	shop := helpers.UniqueShop()
	token := helpers.MintSessionToken(t, shop)

	video := helpers.CreateVideo(t, ts.DB, shop, "Doomed", "all", "https://external.example.org/d.mp4")
	helpers.CreateTag(t, ts.DB, video.ID, "gid://shopify/Product/1", "red-shirt")

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/videos/"+video.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, ts.DB.Model(&models.ProductTag{}).Where("video_id = ?", video.ID).Count(&count).Error)
	assert.Zero(t, count)
}

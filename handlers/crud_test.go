package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales_demarcation_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type channelEnvelope struct {
	Payload models.Channel `json:"payload"`
	Message string         `json:"message"`
}

type channelListEnvelope struct {
	Payload []models.Channel `json:"payload"`
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestChannelCRUD(t *testing.T) {
	database := setupTestDB(t)
	e := setupRouter()

	country := &models.Country{CountryCode: "LKA", CountryName: "Sri Lanka"}
	assert.NoError(t, database.Create(country).Error)

	t.Run("Create", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/userDemarcation/channel",
			`{"channelCode":"CH01","channelName":"Retail","countryId":1}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var env channelEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.NotZero(t, env.Payload.ID)
		assert.Equal(t, "CH01", env.Payload.ChannelCode)
		assert.True(t, env.Payload.IsActive)
	})

	t.Run("CreateValidation", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/userDemarcation/channel",
			`{"channelName":"No Code","countryId":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var env struct {
			Payload map[string]string `json:"payload"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Contains(t, env.Payload, "channelCode")
	})

	t.Run("List", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/userDemarcation/channel", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var env channelListEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Len(t, env.Payload, 1)
	})

	t.Run("FindByID", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/userDemarcation/channel/findById/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var env channelEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "Retail", env.Payload.ChannelName)
	})

	t.Run("FindByIDMissing", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/userDemarcation/channel/findById/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Update", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, "/api/v1/userDemarcation/channel",
			`{"id":1,"channelCode":"CH01","channelName":"Modern Retail","countryId":1}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var env channelEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "Modern Retail", env.Payload.ChannelName)
	})

	t.Run("UpdateWithoutID", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, "/api/v1/userDemarcation/channel",
			`{"channelCode":"CH01","channelName":"Nameless","countryId":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ToggleStatus", func(t *testing.T) {
		rec := doJSON(e, http.MethodDelete, "/api/v1/userDemarcation/channel/deactivateChannel/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var env channelEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.False(t, env.Payload.IsActive)

		// Toggling again reactivates
		rec = doJSON(e, http.MethodDelete, "/api/v1/userDemarcation/channel/deactivateChannel/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.True(t, env.Payload.IsActive)
	})

	t.Run("TogglePinned", func(t *testing.T) {
		// Pinning to the current value is a no-op, not an inversion
		rec := doJSON(e, http.MethodDelete, "/api/v1/userDemarcation/channel/deactivateChannel/1?active=true", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var env channelEnvelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.True(t, env.Payload.IsActive)
	})

	t.Run("ToggleMissing", func(t *testing.T) {
		rec := doJSON(e, http.MethodDelete, "/api/v1/userDemarcation/channel/deactivateChannel/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDistributorUpdatePersistsClearedFields(t *testing.T) {
	database := setupTestDB(t)
	e := setupRouter()

	distributor := &models.Distributor{
		DistributorName: "Lanka Distributors",
		Email:           "info@lanka.lk",
		Address1:        "1 Main Street",
		Address2:        "Suite 4",
	}
	distributor.IsActive = true
	assert.NoError(t, database.Create(distributor).Error)

	// The edit form submits the whole DTO; an emptied field must stick
	rec := doJSON(e, http.MethodPut, "/api/v1/userDemarcation/distributor",
		`{"id":1,"distributorName":"Lanka Distributors","email":"info@lanka.lk","address1":"1 Main Street","address2":"","address3":"","mobileNo":""}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored models.Distributor
	assert.NoError(t, database.First(&stored, distributor.ID).Error)
	assert.Equal(t, "", stored.Address2)
	assert.Equal(t, "1 Main Street", stored.Address1)

	// Lifecycle stays with the toggle endpoint, never with PUT
	assert.True(t, stored.IsActive)
}

func TestAreaRegionBulkCreate(t *testing.T) {
	database := setupTestDB(t)
	e := setupRouter()

	for _, m := range []interface{}{
		&models.Area{AreaCode: "AR01", AreaName: "Colombo Metro"},
		&models.Region{RegionCode: "RG01", RegionName: "Western", ChannelID: 1, SubChannelID: 1},
		&models.Region{RegionCode: "RG02", RegionName: "Southern", ChannelID: 1, SubChannelID: 1},
	} {
		assert.NoError(t, database.Create(m).Error)
	}

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/userDemarcation/areaRegion",
			`[{"areaId":1,"regionId":1},{"areaId":1,"regionId":2}]`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var count int64
		database.Model(&models.AreaRegion{}).Count(&count)
		assert.Equal(t, int64(2), count)
	})

	t.Run("InvalidRowRejectsBatch", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/userDemarcation/areaRegion",
			`[{"areaId":1,"regionId":1},{"areaId":1}]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		// No partial writes
		var count int64
		database.Model(&models.AreaRegion{}).Count(&count)
		assert.Equal(t, int64(2), count)
	})

	t.Run("DuplicatePairIsFieldError", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/userDemarcation/areaRegion",
			`[{"areaId":1,"regionId":1}]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var env struct {
			Payload map[string]string `json:"payload"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Contains(t, env.Payload, "areaRegion")
		assert.Contains(t, env.Payload["areaRegion"], "already exists")

		var count int64
		database.Model(&models.AreaRegion{}).Count(&count)
		assert.Equal(t, int64(2), count)
	})
}

func TestByParentQueries(t *testing.T) {
	database := setupTestDB(t)
	e := setupRouter()

	channel := seedChannel(t, database)

	active := &models.SubChannel{SubChannelCode: "SC01", SubChannelName: "General Trade", ChannelID: channel.ID}
	active.IsActive = true
	assert.NoError(t, database.Create(active).Error)

	inactive := &models.SubChannel{SubChannelCode: "SC02", SubChannelName: "Wholesale", ChannelID: channel.ID}
	assert.NoError(t, database.Create(inactive).Error)
	assert.NoError(t, database.Model(inactive).Update("is_active", false).Error)

	other := &models.Channel{ChannelCode: "CH02", ChannelName: "Horeca", CountryID: 1}
	assert.NoError(t, database.Create(other).Error)
	stranger := &models.SubChannel{SubChannelCode: "SC03", SubChannelName: "Hotels", ChannelID: other.ID}
	assert.NoError(t, database.Create(stranger).Error)

	t.Run("ByParentReturnsAllChildren", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/userDemarcation/subChannel/byChannelId/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Payload []models.SubChannel `json:"payload"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Len(t, env.Payload, 2)
		for _, sc := range env.Payload {
			assert.Equal(t, channel.ID, sc.ChannelID)
		}
	})

	t.Run("OptionsSkipInactive", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/userDemarcation/options/subChannelsByChannel/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Payload []struct {
				Label string `json:"label"`
				Value uint   `json:"value"`
			} `json:"payload"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Len(t, env.Payload, 1)
		assert.Equal(t, "General Trade", env.Payload[0].Label)
		assert.Equal(t, active.ID, env.Payload[0].Value)
	})

	t.Run("EmptyParent", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/v1/userDemarcation/subChannel/byChannelId/999", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Payload []models.SubChannel `json:"payload"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Empty(t, env.Payload)
	})
}

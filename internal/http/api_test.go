package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"banyan-data/internal/config"
	"banyan-data/internal/repository"
	"banyan-data/internal/service"
)

type testAPI struct {
	router *Router
	stores repository.Stores
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	logger := zap.NewNop()
	stores := repository.NewMemoryStores()

	auth := service.NewAuthService(stores.Users, config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   1,
		AdminKey:   "letmein",
		BcryptCost: 4,
	}, logger)
	forms := service.NewFormService(stores, nil, logger)
	export := service.NewExportService(stores, nil, logger)

	mw := NewAuthMiddleware(auth, logger)
	router := NewRouter(logger)
	router.RegisterAuthRoutes(NewAuthHandler(auth, logger), mw)
	router.RegisterFormRoutes(NewFormsHandler(forms, logger), mw)
	router.RegisterExportRoutes(NewExportHandler(export, logger), mw)

	return &testAPI{router: router, stores: stores}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns a login token.
func (a *testAPI) register(t *testing.T, email, facility, role string) string {
	t.Helper()
	body := map[string]string{
		"name":     "Tester",
		"email":    email,
		"password": "secret123",
		"facility": facility,
		"role":     role,
	}
	if role == "admin" {
		body["adminKey"] = "letmein"
	}
	w := a.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func outreachBody(facility string) map[string]any {
	return map[string]any{
		"facility": facility,
		"sno":      1,
		"district": "Chengalpattu",
		"name":     "Kumar",
		"gender":   "Male",
	}
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "asha@example.org", "Chennai", "user")

	w := api.do(t, http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				Email    string `json:"email"`
				Facility string `json:"facility"`
				Role     string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "asha@example.org", resp.Data.User.Email)
	assert.Equal(t, "Chennai", resp.Data.User.Facility)
	assert.Equal(t, "user", resp.Data.User.Role)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "asha@example.org", "Chennai", "user")

	w := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Other", "email": "asha@example.org",
		"password": "secret123", "facility": "Madurai",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestLoginBadPassword(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "asha@example.org", "Chennai", "user")

	w := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@example.org", "password": "wrong-pass",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestFormRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{
		"/api/forms/outreach",
		"/api/forms/reintegration",
		"/api/forms/transactions",
		"/api/forms/awareness",
		"/api/forms/hospital-visits",
		"/api/forms/mastersheet",
		"/api/forms/export/all-facilities",
		"/api/forms/export/user-forms",
		"/api/forms/export/facility/Chennai",
	} {
		w := api.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestSubmitAndListOutreach(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "asha@example.org", "Chennai", "user")

	w := api.do(t, http.MethodPost, "/api/forms/outreach", token, outreachBody("Chennai"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Form submitted successfully")

	w = api.do(t, http.MethodGet, "/api/forms/outreach", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			Facility  string `json:"facility"`
			CreatedBy string `json:"createdBy"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Kumar", resp.Data[0].Name)
	assert.NotEmpty(t, resp.Data[0].ID)
	assert.NotEmpty(t, resp.Data[0].CreatedBy)
}

func TestSubmitValidationFailureReportsFirstMessage(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "asha@example.org", "Chennai", "user")

	body := outreachBody("Chennai")
	delete(body, "district")
	body["gender"] = "Unknown"
	w := api.do(t, http.MethodPost, "/api/forms/outreach", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "District is required", resp.Message)

	w = api.do(t, http.MethodGet, "/api/forms/outreach", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestNonAdminListIgnoresFacilityParam(t *testing.T) {
	api := newTestAPI(t)
	userTok := api.register(t, "user@example.org", "Chennai", "user")
	adminTok := api.register(t, "admin@example.org", "HQ", "admin")

	w := api.do(t, http.MethodPost, "/api/forms/outreach", userTok, outreachBody("Chennai"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = api.do(t, http.MethodPost, "/api/forms/outreach", adminTok, outreachBody("Madurai"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data []struct {
			Facility string `json:"facility"`
		} `json:"data"`
	}

	w = api.do(t, http.MethodGet, "/api/forms/outreach?facility=Madurai", userTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Chennai", resp.Data[0].Facility)

	w = api.do(t, http.MethodGet, "/api/forms/outreach?facility=Madurai", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Madurai", resp.Data[0].Facility)

	w = api.do(t, http.MethodGet, "/api/forms/outreach", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestInvalidRequestBody(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "asha@example.org", "Chennai", "user")

	req := httptest.NewRequest(http.MethodPost, "/api/forms/outreach", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportAllFacilitiesWorkbook(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "admin@example.org", "HQ", "admin")

	for i := 0; i < 3; i++ {
		w := api.do(t, http.MethodPost, "/api/forms/outreach", token, outreachBody(fmt.Sprintf("Facility-%d", i)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.do(t, http.MethodGet, "/api/forms/export/all-facilities", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "all_facilities_data.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Len(t, f.GetSheetList(), 6)
	rows, err := f.GetRows("Outreach")
	require.NoError(t, err)
	assert.Len(t, rows, 4) // header + 3 records
}

func TestExportFacilityScopesRecords(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "admin@example.org", "HQ", "admin")

	w := api.do(t, http.MethodPost, "/api/forms/outreach", token, outreachBody("Chennai"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = api.do(t, http.MethodPost, "/api/forms/outreach", token, outreachBody("Madurai"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodGet, "/api/forms/export/facility/Chennai", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "facility_Chennai_data.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Outreach")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestExportUserForms(t *testing.T) {
	api := newTestAPI(t)
	aliceTok := api.register(t, "alice@example.org", "Chennai", "user")
	bobTok := api.register(t, "bob@example.org", "Chennai", "user")

	w := api.do(t, http.MethodPost, "/api/forms/outreach", aliceTok, outreachBody("Chennai"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = api.do(t, http.MethodPost, "/api/forms/outreach", bobTok, outreachBody("Chennai"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodGet, "/api/forms/export/user-forms", aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "user_forms_data.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Outreach")
	require.NoError(t, err)
	assert.Len(t, rows, 2) // header + alice's single record
}

func TestRegisteredUserSubmitsAndReadsOwnOutreach(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "a@example.org", "adyar", "user")

	w := api.do(t, http.MethodPost, "/api/forms/outreach", token, map[string]any{
		"sno": 1, "district": "Chennai", "name": "Test",
		"gender": "Male", "facility": "adyar",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(t, http.MethodGet, "/api/forms/outreach", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			SNo      int    `json:"sno"`
			District string `json:"district"`
			Name     string `json:"name"`
			Facility string `json:"facility"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Data[0].SNo)
	assert.Equal(t, "Chennai", resp.Data[0].District)
	assert.Equal(t, "Test", resp.Data[0].Name)
	assert.Equal(t, "adyar", resp.Data[0].Facility)
}

// No cross-field date-order rule exists: a discharge date earlier than the
// visit date is accepted.
func TestHospitalVisitDischargeBeforeVisitAccepted(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "asha@example.org", "Chennai", "user")

	w := api.do(t, http.MethodPost, "/api/forms/hospital-visits", token, map[string]any{
		"facility": "Chennai", "fileNumber": "F-100", "name": "Kumar",
		"typeOfVisit": "IP", "hospitalName": "GH Chennai",
		"dateOfVisit": "2024-03-10", "dateOfDischarge": "2024-03-01",
		"reason": "Fracture",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestEmptySubmissionRejectedForEveryFormType(t *testing.T) {
	api := newTestAPI(t)
	token := api.register(t, "asha@example.org", "Chennai", "user")

	paths := []string{
		"/api/forms/outreach",
		"/api/forms/reintegration",
		"/api/forms/transactions",
		"/api/forms/awareness",
		"/api/forms/hospital-visits",
		"/api/forms/mastersheet",
	}
	for _, path := range paths {
		w := api.do(t, http.MethodPost, path, token, map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "Facility is required", path)

		w = api.do(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"data":[]`, path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/auth/register", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = api.do(t, http.MethodDelete, "/api/forms/outreach", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

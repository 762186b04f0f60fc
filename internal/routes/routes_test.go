package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/condomanager/condomanager-api/internal/ai"
	"github.com/condomanager/condomanager-api/internal/config"
	"github.com/condomanager/condomanager-api/internal/database"
	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/extract"
	"github.com/condomanager/condomanager-api/internal/handlers"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/condomanager/condomanager-api/internal/services"
	"github.com/condomanager/condomanager-api/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:routestest%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTExpiry:   120 * time.Minute,
		CORSOrigins: "*",
	}

	uploader := storage.NewBucketClient("", "", "")
	aiClient := ai.NewClient(cfg)
	googleVerifier := services.NewGoogleTokenInfoClient("")

	authService := services.NewAuthService(db, cfg, googleVerifier)
	userService := services.NewUserService(db)
	condominiumService := services.NewCondominiumService(db)
	providerService := services.NewProviderService(db)
	inspectionService := services.NewInspectionService(db)
	workOrderService := services.NewWorkOrderService(db)
	alertService := services.NewAlertService(db)
	financialService := services.NewFinancialService(db)
	documentService := services.NewDocumentService(db, uploader, extract.PlainText{}, aiClient)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(db),
		handlers.NewUserHandler(userService),
		handlers.NewCondominiumHandler(condominiumService),
		handlers.NewProviderHandler(providerService),
		handlers.NewInspectionHandler(inspectionService, uploader),
		handlers.NewWorkOrderHandler(workOrderService),
		handlers.NewAlertHandler(alertService),
		handlers.NewFinancialHandler(financialService),
		handlers.NewDocumentHandler(documentService),
		handlers.NewFileHandler(uploader),
	)

	return &testEnv{app: app, db: db, cfg: cfg}
}

func (e *testEnv) seedUser(t *testing.T, role models.Role, condoID *uuid.UUID) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		ID:            uuid.New(),
		Name:          "Test " + string(role),
		Email:         uuid.NewString() + "@example.com",
		Password:      string(hash),
		Role:          role,
		CondominiumID: condoID,
	}
	require.NoError(t, e.db.Create(&user).Error)
	return &user
}

func (e *testEnv) seedCondominium(t *testing.T) *models.Condominium {
	t.Helper()

	condo := models.Condominium{
		ID:             uuid.New(),
		Name:           "Residencial Aurora",
		TaxID:          uuid.NewString(),
		PrimaryColor:   "0xFF000000",
		SecondaryColor: "0xFFFFFFFF",
	}
	require.NoError(t, e.db.Create(&condo).Error)
	return &condo
}

// login exchanges credentials on POST /token for a bearer token.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()

	form := url.Values{"username": {email}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func (e *testEnv) request(t *testing.T, method, path, token string, body io.Reader, contentType string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/work-orders", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/users/me", "garbage-token", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHealthIsPublic(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInspectionUploadFlow(t *testing.T) {
	env := newTestEnv(t)
	condo := env.seedCondominium(t)
	inspector := env.seedUser(t, models.RoleInspector, &condo.ID)
	token := env.login(t, inspector.Email)

	me := env.request(t, http.MethodGet, "/users/me", token, nil, "")
	require.Equal(t, http.StatusOK, me.StatusCode)
	var current models.User
	require.NoError(t, json.NewDecoder(me.Body).Decode(&current))
	assert.Equal(t, inspector.Email, current.Email)

	items := `[{"name":"Elevator","status":"Ruim","observation":"door stuck"},{"name":"Pool","status":"bom"}]`
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("condominium_id", condo.ID.String()))
	require.NoError(t, writer.WriteField("is_custom", "false"))
	require.NoError(t, writer.WriteField("analysis", "monthly walkthrough"))
	require.NoError(t, writer.WriteField("items_json", items))
	require.NoError(t, writer.Close())

	resp := env.request(t, http.MethodPost, "/inspections/upload", token, &buf, writer.FormDataContentType())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var uploaded dto.InspectionUploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploaded))
	assert.Equal(t, "success", uploaded.Status)

	list := env.request(t, http.MethodGet, "/work-orders?sort=status", token, nil, "")
	require.Equal(t, http.StatusOK, list.StatusCode)
	var orders []models.WorkOrder
	require.NoError(t, json.NewDecoder(list.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "Immediate action: Elevator", orders[0].Title)
	assert.Equal(t, models.WorkOrderPending, orders[0].Status)
}

func TestAdminEndpointsAreRoleGated(t *testing.T) {
	env := newTestEnv(t)
	condo := env.seedCondominium(t)
	manager := env.seedUser(t, models.RoleManager, &condo.ID)
	admin := env.seedUser(t, models.RoleAdmin, nil)

	managerToken := env.login(t, manager.Email)
	resp := env.request(t, http.MethodGet, "/admin/users", managerToken, nil, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken := env.login(t, admin.Email)
	resp = env.request(t, http.MethodGet, "/admin/users", adminToken, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
}

func TestRegistrationAndApproval(t *testing.T) {
	env := newTestEnv(t)
	condo := env.seedCondominium(t)
	admin := env.seedUser(t, models.RoleAdmin, nil)

	body := `{"name":"Joana","email":"joana@example.com","password":"supersecret"}`
	resp := env.request(t, http.MethodPost, "/users", "", strings.NewReader(body), fiber.MIMEApplicationJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, models.RolePending, created.Role)

	adminToken := env.login(t, admin.Email)
	approve := fmt.Sprintf(`{"role":"manager","condominium_id":"%s"}`, condo.ID)
	resp = env.request(t, http.MethodPost, "/admin/users/"+created.ID.String()+"/approve", adminToken, strings.NewReader(approve), fiber.MIMEApplicationJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var approved models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&approved))
	assert.Equal(t, models.RoleManager, approved.Role)
}

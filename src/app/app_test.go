package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"Backend-Medical-Intake/src/config"
	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/ledger"
	"Backend-Medical-Intake/src/testutil"
	"Backend-Medical-Intake/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type client struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func newClient(t *testing.T, app *fiber.App, userID string) *client {
	utils.SetJWTSecret("test-secret")
	token, err := utils.GenerateJWT(userID, userID+"@clinic.test", time.Hour)
	require.NoError(t, err)
	return &client{t: t, app: app, token: token}
}

func (c *client) do(method, path string, body any, out any) int {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func str(s string) *string { return &s }

func localApp() *fiber.App {
	return New(Deps{Ledger: ledger.New(ledger.NewMemoryStorage())})
}

func TestAuthRequired(t *testing.T) {
	c := &client{t: t, app: localApp()}
	var errResp models.ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/forms", nil, &errResp))
	assert.Equal(t, http.StatusUnauthorized, errResp.Status)

	c.token = "garbage"
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/forms", nil, nil))
}

func TestMe(t *testing.T) {
	c := newClient(t, localApp(), "user-1")
	var me models.CurrentUser
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/auth/me", nil, &me))
	assert.Equal(t, models.CurrentUser{ID: "user-1", Email: "user-1@clinic.test"}, me)
}

func TestFormLifecycleLocal(t *testing.T) {
	app := localApp()
	c := newClient(t, app, "user-1")

	var forms []models.Form
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/forms", nil, &forms))
	require.Len(t, forms, 3, "first visit seeds sample forms")

	var created models.Form
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/forms", models.FormInput{
		Title: str("Allergy Screening"),
		Fields: models.Fields{
			{Type: models.FieldCheckbox, Label: "Known allergies", Options: []string{"Penicillin", "Latex"}},
		},
	}, &created))
	assert.Regexp(t, `^form_\d+$`, created.ID)
	assert.Equal(t, "user-1", created.OwnerID)
	assert.Equal(t, models.FormDraft, created.Status)
	require.Len(t, created.Fields, 1)
	assert.NotEmpty(t, created.Fields[0].ID)

	var updated models.Form
	require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/forms/"+created.ID,
		map[string]any{"description": "Before first visit"}, &updated))
	assert.Equal(t, "Allergy Screening", updated.Title)
	assert.Equal(t, "Before first visit", updated.Description)
	assert.Equal(t, created.Fields, updated.Fields)

	require.Equal(t, http.StatusOK, c.do(http.MethodPatch, "/forms/"+created.ID,
		map[string]any{"description": ""}, &updated))
	assert.Equal(t, "Allergy Screening", updated.Title)
	assert.Empty(t, updated.Description, "an explicit empty description clears it")

	var reloaded models.Form
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/forms/"+created.ID, nil, &reloaded))
	assert.Empty(t, reloaded.Description)

	var published models.Form
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/forms/"+created.ID+"/publish", nil, &published))
	assert.Equal(t, models.FormPublished, published.Status)

	var got models.Form
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/forms/"+created.ID, nil, &got))
	assert.Equal(t, models.FormPublished, got.Status)

	var sum models.DashboardSummary
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/dashboard/summary", nil, &sum))
	assert.Equal(t, 4, sum.TotalForms)
	assert.Equal(t, 3, sum.PublishedForms)

	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/forms/"+created.ID, nil, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/forms/"+created.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/forms/"+created.ID, nil, nil))
}

func TestCORSPreflight(t *testing.T) {
	app := localApp()

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/forms/abc", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", method)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusNoContent, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), method)
		})
	}
}

func TestFormValidation(t *testing.T) {
	c := newClient(t, localApp(), "user-1")

	var errResp models.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/forms", models.FormInput{}, &errResp))
	assert.Contains(t, errResp.Message, "Title is required")

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/forms", models.FormInput{
		Title:  str("Bad"),
		Fields: models.Fields{{Type: models.FieldRadio, Label: "Pick one"}},
	}, nil))
}

func TestFormsAreScopedToOwner(t *testing.T) {
	app := localApp()
	alice := newClient(t, app, "alice")
	bob := newClient(t, app, "bob")

	var created models.Form
	require.Equal(t, http.StatusCreated, alice.do(http.MethodPost, "/forms", models.FormInput{Title: str("Private")}, &created))

	assert.Equal(t, http.StatusNotFound, bob.do(http.MethodGet, "/forms/"+created.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, bob.do(http.MethodPut, "/forms/"+created.ID, models.FormInput{Title: str("Mine now")}, nil))

	// bob's delete is a no-op
	require.Equal(t, http.StatusOK, bob.do(http.MethodDelete, "/forms/"+created.ID, nil, nil))
	assert.Equal(t, http.StatusOK, alice.do(http.MethodGet, "/forms/"+created.ID, nil, nil))
}

func TestResponsesEndpoints(t *testing.T) {
	c := newClient(t, localApp(), "user-1")

	var page struct {
		Data  []models.Response `json:"data"`
		Total int64             `json:"total"`
	}
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/responses?status=completed", nil, &page))
	assert.Equal(t, int64(2), page.Total)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/responses?status=lost", nil, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/responses/response_1", nil, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/responses", nil, &page))
	assert.Equal(t, int64(2), page.Total)
}

func TestTemplateEndpoints(t *testing.T) {
	c := newClient(t, localApp(), "user-1")

	var list []models.FormTemplate
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/templates?category=Pediatric", nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, 18, list[0].FieldCount)

	var cats []string
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/templates/categories", nil, &cats))
	assert.Contains(t, cats, "Cardiology")

	var form models.Form
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/templates/cardiology-intake/use", nil, &form))
	assert.Equal(t, "Cardiology Intake", form.Title)
	assert.Len(t, form.Fields, 20)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/templates/nope/use", nil, nil))
}

func TestSettingsEndpoints(t *testing.T) {
	c := newClient(t, localApp(), "user-1")

	var s models.ClinicSettings
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/settings", nil, &s))
	assert.Equal(t, models.DefaultClinicSettings(), s)

	s.ClinicName = "Harbor Clinic"
	s.WeeklyReports = false
	require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/settings", s, nil))

	var got models.ClinicSettings
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/settings", nil, &got))
	assert.Equal(t, s, got)

	s.DefaultFormTheme = "neon"
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, "/settings", s, nil))
}

func TestStatusEndpoints(t *testing.T) {
	app := New(Deps{
		Ledger: ledger.New(ledger.NewMemoryStorage()),
		Probe:  testutil.StaticAvailability(false),
	})
	c := newClient(t, app, "user-1")

	var st models.DatabaseStatus
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/status", nil, &st))
	assert.Equal(t, models.ModeLocal, st.Mode)
	assert.True(t, st.ShowBanner)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/status/dismiss-banner", nil, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/status", nil, &st))
	assert.False(t, st.ShowBanner)
}

func TestRemoteMode(t *testing.T) {
	forms := testutil.NewMemoryCollection[models.Form]()
	responses := testutil.NewMemoryCollection[models.Response]()
	l := ledger.New(ledger.NewMemoryStorage())
	c := newClient(t, New(Deps{Forms: forms, Responses: responses, Ledger: l}), "user-1")

	var st models.DatabaseStatus
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/status", nil, &st))
	assert.Equal(t, models.ModeRemote, st.Mode)

	var created models.Form
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/forms", models.FormInput{Title: str("Remote")}, &created))
	assert.Equal(t, 1, forms.Len())
	assert.Empty(t, l.ListForms(context.Background()))

	// database goes away mid-session
	forms.Fail(testutil.ErrNotProvisioned)
	var list []models.Form
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/forms", nil, &list))
	assert.Len(t, list, 3, "falls back to the seeded ledger")
}

func TestOpenLedgerStorage(t *testing.T) {
	ctx := context.Background()

	s, closer := OpenLedgerStorage(ctx, configFor("memory", ""))
	defer closer.Close()
	assert.IsType(t, &ledger.MemoryStorage{}, s)

	s, closer = OpenLedgerStorage(ctx, configFor("sqlite", t.TempDir()))
	defer closer.Close()
	assert.IsType(t, &ledger.SQLiteStorage{}, s)

	// no redis configured: falls back to sqlite
	s, closer = OpenLedgerStorage(ctx, configFor("redis", t.TempDir()))
	defer closer.Close()
	assert.IsType(t, &ledger.SQLiteStorage{}, s)
}

func configFor(driver, dir string) config.Config {
	return config.Config{LedgerDriver: driver, LedgerDir: dir}
}

package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/curricuforge/internal/app/controllers"
	"github.com/yigit/curricuforge/internal/app/curriculum/curriculumtest"
	"github.com/yigit/curricuforge/internal/app/export"
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/app/routes"
	"github.com/yigit/curricuforge/internal/app/services"
	"github.com/yigit/curricuforge/internal/app/session"
	"github.com/yigit/curricuforge/internal/app/trends"
)

type stubGenerator struct {
	raw string
	err error
}

func (g *stubGenerator) Name() string { return "stub" }

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	return g.raw, g.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code  string `json:"code"`
		Field string `json:"field"`
	} `json:"error"`
}

func newRouter(t *testing.T, gen *stubGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewStore(zerolog.Nop())
	charts, err := trends.NewChartRenderer(400, 240)
	if err != nil {
		t.Fatal(err)
	}
	sessionSvc := services.NewSessionService(store, nil, zerolog.Nop())
	curriculumSvc := services.NewCurriculumService(store, gen, export.NewExporter("CurricuForge"), nil, zerolog.Nop())
	trendSvc := services.NewTrendService(trends.NewStaticProvider(), charts, zerolog.Nop())

	r := gin.New()
	routes.SetupRouter(r, routes.Controllers{
		Session:    controllers.NewSessionController(sessionSvc),
		Curriculum: controllers.NewCurriculumController(curriculumSvc, 1<<20),
		Trend:      controllers.NewTrendController(trendSvc),
		Health:     controllers.NewHealthController("stub", true, store.Len),
	})
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func createSession(t *testing.T, r http.Handler) string {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/sessions", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create session status = %d", w.Code)
	}
	var snap struct {
		ID      string `json:"id"`
		Options struct {
			Branches []string `json:"branches"`
		} `json:"options"`
	}
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatal(err)
	}
	if len(snap.Options.Branches) == 0 {
		t.Error("session response missing form options")
	}
	return snap.ID
}

const generateBody = `{"accreditation":"NBA","degree":"B.Tech","duration":"4 Years","totalCredits":160,"industryAlignment":80,"branch":"CSE","specialization":"AI/ML","mode":"external"}`

func TestGenerateEditExportFlow(t *testing.T) {
	r := newRouter(t, &stubGenerator{raw: curriculumtest.SampleJSON(models.ModeExternal)})
	id := createSession(t, r)
	base := "/api/sessions/" + id

	w, env := do(t, r, http.MethodPost, base+"/generate", generateBody)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("generate status = %d body = %s", w.Code, w.Body)
	}

	w, env = do(t, r, http.MethodPatch, base+"/semesters/0/subjects/0", `{"field":"credits","value":10}`)
	if w.Code != http.StatusOK {
		t.Fatalf("edit status = %d body = %s", w.Code, w.Body)
	}
	var res struct {
		SemesterTotal int `json:"semesterTotal"`
		Warnings      []struct {
			Rule string `json:"rule"`
		} `json:"warnings"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.SemesterTotal != 25 || len(res.Warnings) == 0 {
		t.Errorf("edit result = %+v", res)
	}

	w, _ = do(t, r, http.MethodGet, base+"/validation", "")
	if w.Code != http.StatusOK {
		t.Errorf("validation status = %d", w.Code)
	}

	w, _ = do(t, r, http.MethodGet, base+"/export?format=pdf", "")
	if w.Code != http.StatusOK || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("export status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "CurricuForge_CSE_AI-ML.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	w, _ = do(t, r, http.MethodGet, base+"/export?format=yaml", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "semesters:") {
		t.Errorf("yaml export status = %d", w.Code)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		body   string
		status int
		code   string
	}{
		{"unparseable output", "{invalid json", generateBody, http.StatusUnprocessableEntity, "GEN_001"},
		{"bad accreditation", "", strings.Replace(generateBody, `"NBA"`, `"ABET"`, 1), http.StatusBadRequest, "VAL_001"},
		{"no mode", "", strings.Replace(generateBody, `,"mode":"external"`, "", 1), http.StatusBadRequest, "VAL_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, &stubGenerator{raw: tt.raw})
			id := createSession(t, r)
			w, env := do(t, r, http.MethodPost, "/api/sessions/"+id+"/generate", tt.body)
			if w.Code != tt.status || env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("status = %d body = %s", w.Code, w.Body)
			}
		})
	}
}

func TestSessionErrors(t *testing.T) {
	r := newRouter(t, &stubGenerator{})
	id := createSession(t, r)

	tests := []struct {
		name, method, path, body string
		status                   int
		code                     string
	}{
		{"unknown session", http.MethodGet, "/api/sessions/nope", "", http.StatusNotFound, "SES_001"},
		{"export without curriculum", http.MethodGet, "/api/sessions/" + id + "/export", "", http.StatusConflict, "RES_002"},
		{"bad format", http.MethodGet, "/api/sessions/" + id + "/export?format=docx", "", http.StatusBadRequest, "RES_004"},
		{"bad index", http.MethodDelete, "/api/sessions/" + id + "/semesters/x/subjects/0", "", http.StatusBadRequest, "VAL_001"},
		{"toggle edit on landing", http.MethodPost, "/api/sessions/" + id + "/navigate", `{"event":"toggle_edit"}`, http.StatusConflict, "SES_002"},
		{"internal event", http.MethodPost, "/api/sessions/" + id + "/navigate", `{"event":"submit"}`, http.StatusBadRequest, "VAL_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, tt.method, tt.path, tt.body)
			if w.Code != tt.status || env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("status = %d body = %s", w.Code, w.Body)
			}
		})
	}
}

func TestNavigate(t *testing.T) {
	r := newRouter(t, &stubGenerator{})
	id := createSession(t, r)
	path := "/api/sessions/" + id + "/navigate"

	for _, body := range []string{`{"event":"open_generate"}`, `{"event":"select_mode","mode":"institutional"}`} {
		if w, _ := do(t, r, http.MethodPost, path, body); w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d body = %s", body, w.Code, w.Body)
		}
	}

	_, env := do(t, r, http.MethodGet, "/api/sessions/"+id, "")
	var snap struct {
		State session.State `json:"state"`
	}
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatal(err)
	}
	want := session.State{View: session.ViewGenerate, Phase: session.PhaseForm, Mode: models.ModeInstitutional}
	if snap.State != want {
		t.Errorf("state = %+v, want %+v", snap.State, want)
	}
}

func TestIndustryTrends(t *testing.T) {
	r := newRouter(t, &stubGenerator{})

	w, _ := do(t, r, http.MethodGet, "/api/industry-trends", "")
	var trend models.IndustryTrend
	if err := json.Unmarshal(w.Body.Bytes(), &trend); err != nil {
		t.Fatal(err)
	}
	if len(trend.Stable) == 0 || len(trend.GrowthData) == 0 {
		t.Errorf("trend = %+v", trend)
	}

	w, _ = do(t, r, http.MethodGet, "/api/industry-trends/charts/adoption.png", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Errorf("chart status = %d type = %q", w.Code, w.Header().Get("Content-Type"))
	}
	w, _ = do(t, r, http.MethodGet, "/api/industry-trends/charts/pie.png", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown chart status = %d", w.Code)
	}
}

func TestUploadPreviousCurriculum(t *testing.T) {
	r := newRouter(t, &stubGenerator{})
	id := createSession(t, r)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "old.txt")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write([]byte("Semester 1: Engineering Drawing"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+id+"/previous-curriculum", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Engineering Drawing") {
		t.Fatalf("status = %d body = %s", w.Code, w.Body)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/sessions/"+id+"/previous-curriculum", strings.NewReader(""))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing file status = %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := newRouter(t, &stubGenerator{})
	w, env := do(t, r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || !env.Success {
		t.Errorf("health status = %d", w.Code)
	}
}

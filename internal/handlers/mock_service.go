package handlers

import (
	"context"
	"net/http"
	"time"

	"moodgarden/internal/models"
	"moodgarden/internal/period"
	"moodgarden/internal/registry"
	"moodgarden/internal/service"
	"moodgarden/internal/timesource"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockJournal struct {
	entry     models.EmotionEntry
	submitErr error
	history   []models.EmotionEntry
	histErr   error

	lastUserID   int
	lastEmotions []models.EmotionWithStrength
	lastMemo     string
	lastFrom     time.Time
	lastTo       time.Time
}

func (m *mockJournal) Submit(_ context.Context, userID int, emotions []models.EmotionWithStrength, memo string) (models.EmotionEntry, error) {
	m.lastUserID = userID
	m.lastEmotions = emotions
	m.lastMemo = memo
	return m.entry, m.submitErr
}
func (m *mockJournal) History(_ context.Context, userID int, from, to time.Time) ([]models.EmotionEntry, error) {
	m.lastUserID = userID
	m.lastFrom = from
	m.lastTo = to
	return m.history, m.histErr
}

type mockFlowerView struct {
	state models.FlowerState
	err   error
}

func (m *mockFlowerView) State(context.Context, int) (models.FlowerState, error) {
	return m.state, m.err
}
func (m *mockFlowerView) Watch(func(time.Time)) (func(), bool) { return nil, false }

type mockReports struct {
	weekly  models.EmotionReport
	monthly models.EmotionReport
	err     error

	lastRef time.Time
}

func (m *mockReports) Weekly(_ context.Context, _ int, ref time.Time) (models.EmotionReport, error) {
	m.lastRef = ref
	return m.weekly, m.err
}
func (m *mockReports) Monthly(_ context.Context, _ int, ref time.Time) (models.EmotionReport, error) {
	m.lastRef = ref
	return m.monthly, m.err
}
func (m *mockReports) ListSaved(context.Context, int, string) ([]models.EmotionReport, error) {
	return nil, nil
}
func (m *mockReports) GenerateDue(context.Context, time.Time) (int, error) { return 0, nil }

type mockTimePolicy struct {
	resolved  map[string]timesource.Config
	lastPatch registry.Patch
	calls     int
}

func (m *mockTimePolicy) Configure(p registry.Patch) {
	m.calls++
	m.lastPatch = p
}
func (m *mockTimePolicy) Resolved() map[string]timesource.Config { return m.resolved }

type mockMyWebPeriods struct {
	curWeek, doneWeek   period.Range
	curMonth, doneMonth period.Range
}

func (m *mockMyWebPeriods) WeeklyPeriods() (period.Range, period.Range) {
	return m.curWeek, m.doneWeek
}
func (m *mockMyWebPeriods) MonthlyPeriods() (period.Range, period.Range) {
	return m.curMonth, m.doneMonth
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

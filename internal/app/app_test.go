package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"go-employees/internal/app"
	"go-employees/internal/bootstrap"
	"go-employees/internal/employee"
	"go-employees/internal/salaryhistory"
	"go-employees/internal/shared/connection"
	"go-employees/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingAuditLogger struct {
	mu      sync.Mutex
	actions []string
}

func (r *recordingAuditLogger) Log(ctx context.Context, entry bootstrap.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, entry.Action)
}

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	audit  *recordingAuditLogger
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := app.Config{
		Port:          app.DefaultPort,
		SessionSecret: "test-secret",
		Database:      connection.Config{Driver: connection.DriverSQLite, DSN: ":memory:"},
		WriteRate:     100,
		WriteBurst:    100,
	}

	router := gin.New()
	audit := &recordingAuditLogger{}
	db, err := app.BuildApp(context.Background(), router, cfg, zap.NewNop(), audit)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return &testApp{router: router, db: db, audit: audit}
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (a *testApp) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) employeeCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.Model(&employee.Employee{}).Count(&n).Error)
	return n
}

func (a *testApp) summaries(t *testing.T) []employee.EmployeeSummaryResponse {
	t.Helper()
	w := a.get("/api/employees")
	require.Equal(t, http.StatusOK, w.Code)

	var out []employee.EmployeeSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func newEmployeeForm(email string) url.Values {
	return url.Values{
		"first_name":    {"Meera"},
		"last_name":     {"Iyer"},
		"email":         {email},
		"phone":         {"+91-9876500004"},
		"hire_date":     {"2024-03-01"},
		"department_id": {"2"},
		"role_id":       {"3"},
		"manager_id":    {"3"},
		"salary":        {"60000"},
	}
}

func hasFlash(w *httptest.ResponseRecorder) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == flash.CookieName && c.Value != "" {
			return true
		}
	}
	return false
}

func TestBuildApp_SeedsAndAudits(t *testing.T) {
	a := newTestApp(t)

	assert.EqualValues(t, 3, a.employeeCount(t))
	assert.Contains(t, a.audit.actions, bootstrap.ActionDatabaseReset)
}

func TestAPIEmployees(t *testing.T) {
	a := newTestApp(t)

	got := a.summaries(t)

	want := []struct {
		name, email, department, role string
	}{
		{"Anita Sharma", "anita.sharma@example.com", "Engineering", "Software Engineer"},
		{"Rohit Patel", "rohit.patel@example.com", "Engineering", "Senior Software Engineer"},
		{"Sonia Kapoor", "sonia.kapoor@example.com", "HR", "HR Executive"},
	}

	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, uint(i+1), got[i].ID)
		assert.Equal(t, w.name, got[i].Name)
		assert.Equal(t, w.email, got[i].Email)
		if assert.NotNil(t, got[i].Department, w.name) {
			assert.Equal(t, w.department, *got[i].Department)
		}
		if assert.NotNil(t, got[i].Role, w.name) {
			assert.Equal(t, w.role, *got[i].Role)
		}
	}
}

func TestIndexListsEmployees(t *testing.T) {
	a := newTestApp(t)

	w := a.get("/")

	assert.Equal(t, http.StatusOK, w.Code)
	for _, name := range []string{"Anita Sharma", "Rohit Patel", "Sonia Kapoor"} {
		assert.Contains(t, w.Body.String(), name)
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Run("persists employee and joining salary", func(t *testing.T) {
		a := newTestApp(t)

		w := a.post("/employee/new", newEmployeeForm("meera.iyer@example.com"))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.True(t, hasFlash(w))
		assert.EqualValues(t, 4, a.employeeCount(t))

		var created employee.Employee
		require.NoError(t, a.db.Where("email = ?", "meera.iyer@example.com").First(&created).Error)
		require.NotNil(t, created.ManagerID)
		assert.Equal(t, uint(3), *created.ManagerID)

		var rows []salaryhistory.SalaryHistory
		require.NoError(t, a.db.Where("employee_id = ?", created.ID).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, 60000.0, rows[0].Salary)
		assert.Equal(t, "Joining salary", rows[0].Note)
		assert.Equal(t, "2024-03-01", rows[0].EffectiveDate.Format(employee.DateLayout))
	})

	t.Run("no salary means no salary row", func(t *testing.T) {
		a := newTestApp(t)
		form := newEmployeeForm("no.salary@example.com")
		form.Del("salary")

		w := a.post("/employee/new", form)
		require.Equal(t, http.StatusFound, w.Code)

		var created employee.Employee
		require.NoError(t, a.db.Where("email = ?", "no.salary@example.com").First(&created).Error)
		var n int64
		require.NoError(t, a.db.Model(&salaryhistory.SalaryHistory{}).Where("employee_id = ?", created.ID).Count(&n).Error)
		assert.Zero(t, n)
	})

	t.Run("duplicate email changes nothing", func(t *testing.T) {
		a := newTestApp(t)

		w := a.post("/employee/new", newEmployeeForm("anita.sharma@example.com"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, hasFlash(w))
		assert.EqualValues(t, 3, a.employeeCount(t))
	})

	t.Run("unknown references are rejected", func(t *testing.T) {
		for field, value := range map[string]string{
			"department_id": "99",
			"role_id":       "99",
			"manager_id":    "999",
		} {
			t.Run(field, func(t *testing.T) {
				a := newTestApp(t)
				form := newEmployeeForm("ghost@example.com")
				form.Set(field, value)

				w := a.post("/employee/new", form)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.False(t, hasFlash(w))
				assert.EqualValues(t, 3, a.employeeCount(t))

				var n int64
				require.NoError(t, a.db.Model(&salaryhistory.SalaryHistory{}).Count(&n).Error)
				assert.EqualValues(t, 3, n)
			})
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		a := newTestApp(t)
		form := newEmployeeForm("late@example.com")
		form.Set("hire_date", "March 1st")

		w := a.post("/employee/new", form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.EqualValues(t, 3, a.employeeCount(t))
	})
}

func TestShowEmployee(t *testing.T) {
	a := newTestApp(t)

	w := a.get("/employee/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Anita Sharma")
	assert.Contains(t, w.Body.String(), "50000.00")

	assert.Equal(t, http.StatusNotFound, a.get("/employee/999").Code)
	assert.Equal(t, http.StatusNotFound, a.get("/employee/abc").Code)
	assert.Equal(t, http.StatusNotFound, a.get("/nowhere").Code)
}

func TestDeleteEmployee(t *testing.T) {
	t.Run("removes employee and salary history", func(t *testing.T) {
		a := newTestApp(t)

		w := a.post("/employee/1/delete", url.Values{})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.True(t, hasFlash(w))
		assert.EqualValues(t, 2, a.employeeCount(t))

		var n int64
		require.NoError(t, a.db.Model(&salaryhistory.SalaryHistory{}).Where("employee_id = ?", 1).Count(&n).Error)
		assert.Zero(t, n)
		assert.Equal(t, http.StatusNotFound, a.get("/employee/1").Code)
	})

	t.Run("direct reports lose their manager", func(t *testing.T) {
		a := newTestApp(t)
		require.Equal(t, http.StatusFound, a.post("/employee/new", newEmployeeForm("report@example.com")).Code)

		w := a.post("/employee/3/delete", url.Values{})
		require.Equal(t, http.StatusFound, w.Code)

		var report employee.Employee
		require.NoError(t, a.db.Where("email = ?", "report@example.com").First(&report).Error)
		assert.Nil(t, report.ManagerID)
	})

	t.Run("unknown id", func(t *testing.T) {
		a := newTestApp(t)

		w := a.post("/employee/999/delete", url.Values{})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.EqualValues(t, 3, a.employeeCount(t))
	})
}

func TestWriteRoutesAreRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := app.Config{
		SessionSecret: "test-secret",
		Database:      connection.Config{Driver: connection.DriverSQLite, DSN: ":memory:"},
		WriteRate:     0.001,
		WriteBurst:    1,
	}
	router := gin.New()
	_, err := app.BuildApp(context.Background(), router, cfg, zap.NewNop(), nil)
	require.NoError(t, err)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/employee/999/delete", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNotFound, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employees/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCookie(t *testing.T, store *flash.Store, kind, text string) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	require.NoError(t, store.Set(c, kind, text))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, flash.CookieName, cookies[0].Name)
	return cookies[0]
}

func TestStore_SetThenPop(t *testing.T) {
	store := flash.NewStore("test-secret")
	cookie := setCookie(t, store, flash.KindSuccess, "Employee created")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(cookie)

	msg := store.Pop(c)

	require.NotNil(t, msg)
	assert.Equal(t, flash.KindSuccess, msg.Kind)
	assert.Equal(t, "Employee created", msg.Text)

	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestStore_PopWithoutCookie(t *testing.T) {
	store := flash.NewStore("test-secret")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, store.Pop(c))
	assert.Empty(t, w.Result().Cookies())
}

func TestStore_RejectsForeignSignature(t *testing.T) {
	cookie := setCookie(t, flash.NewStore("other-secret"), flash.KindWarning, "Employee deleted")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(cookie)

	assert.Nil(t, flash.NewStore("test-secret").Pop(c))
}

package menu_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"menu-manager/feature/menu"
	"menu-manager/feature/menu/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db := newTestDB(t)
	feature := menu.NewFeature(db, newMemStore(), zap.NewNop(), time.Minute)

	app := fiber.New()
	api := app.Group("/api/v1")
	require.NoError(t, feature.Load(api))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandler_MenuLifecycle(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/menus", fiber.Map{
		"title": "Drinks", "description": "Hot and cold drinks",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var created models.Menu
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Drinks", created.Title)

	status, body = doJSON(t, app, "GET", "/api/v1/menus/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, status)

	var detail models.MenuDetail
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, created.ID, detail.ID)
	assert.Zero(t, detail.SubmenusCount)

	status, body = doJSON(t, app, "PATCH", "/api/v1/menus/"+created.ID, fiber.Map{
		"title": "Beverages", "description": "Updated",
	})
	require.Equal(t, fiber.StatusOK, status)
	var updated models.Menu
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Beverages", updated.Title)

	status, _ = doJSON(t, app, "DELETE", "/api/v1/menus/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, status)

	// Cache invalidation after the delete runs in the background.
	assert.Eventually(t, func() bool {
		status, body = doJSON(t, app, "GET", "/api/v1/menus/"+created.ID, nil)
		return status == fiber.StatusNotFound
	}, time.Second, 10*time.Millisecond)
	assert.JSONEq(t, `{"detail": "menu not found"}`, string(body))
}

func TestHandler_NotFoundBodies(t *testing.T) {
	app := newTestApp(t)
	missing := "00000000-0000-0000-0000-000000000000"

	tests := []struct {
		name   string
		method string
		path   string
		detail string
	}{
		{"menu", "GET", "/api/v1/menus/" + missing, "menu not found"},
		{"submenu", "GET", "/api/v1/menus/" + missing + "/submenus/" + missing, "submenu not found"},
		{"dish", "GET", "/api/v1/menus/" + missing + "/submenus/" + missing + "/dishes/" + missing, "dish not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, tt.method, tt.path, nil)
			assert.Equal(t, fiber.StatusNotFound, status)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, tt.detail, payload["detail"])
		})
	}
}

func TestHandler_NestedCreation(t *testing.T) {
	app := newTestApp(t)

	_, body := doJSON(t, app, "POST", "/api/v1/menus", fiber.Map{
		"title": "Drinks", "description": "Desc",
	})
	var m models.Menu
	require.NoError(t, json.Unmarshal(body, &m))

	status, body := doJSON(t, app, "POST", "/api/v1/menus/"+m.ID+"/submenus", fiber.Map{
		"title": "Coffee", "description": "Desc",
	})
	require.Equal(t, fiber.StatusCreated, status)
	var s models.Submenu
	require.NoError(t, json.Unmarshal(body, &s))
	assert.Equal(t, m.ID, s.MenuID)

	status, body = doJSON(t, app, "POST",
		"/api/v1/menus/"+m.ID+"/submenus/"+s.ID+"/dishes", fiber.Map{
			"title": "Latte", "description": "Desc", "price": "4.50",
		})
	require.Equal(t, fiber.StatusCreated, status)
	var d models.Dish
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Equal(t, s.ID, d.SubmenuID)

	status, body = doJSON(t, app, "GET",
		"/api/v1/menus/"+m.ID+"/submenus/"+s.ID+"/dishes", nil)
	require.Equal(t, fiber.StatusOK, status)
	var dishes []models.DishView
	require.NoError(t, json.Unmarshal(body, &dishes))
	require.Len(t, dishes, 1)
	assert.Nil(t, dishes[0].Discount)
}

func TestHandler_CreateUnderMissingParent(t *testing.T) {
	app := newTestApp(t)
	missing := "00000000-0000-0000-0000-000000000000"

	status, _ := doJSON(t, app, "POST", "/api/v1/menus/"+missing+"/submenus", fiber.Map{
		"title": "Coffee", "description": "Desc",
	})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doJSON(t, app, "POST",
		"/api/v1/menus/"+missing+"/submenus/"+missing+"/dishes", fiber.Map{
			"title": "Latte", "description": "Desc", "price": "4.50",
		})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_FullHierarchyRoute(t *testing.T) {
	app := newTestApp(t)

	// "full" must route to the hierarchy handler, not match as a menu id.
	status, body := doJSON(t, app, "GET", "/api/v1/menus/full", nil)
	require.Equal(t, fiber.StatusOK, status)

	var trees []models.MenuTree
	require.NoError(t, json.Unmarshal(body, &trees))
	assert.Empty(t, trees)

	status, _ = doJSON(t, app, "POST", "/api/v1/menus", fiber.Map{
		"title": "Drinks", "description": "Desc",
	})
	require.Equal(t, fiber.StatusCreated, status)

	assert.Eventually(t, func() bool {
		status, body = doJSON(t, app, "GET", "/api/v1/menus/full", nil)
		if status != fiber.StatusOK {
			return false
		}
		trees = nil
		return json.Unmarshal(body, &trees) == nil && len(trees) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestHandler_InvalidBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/menus", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

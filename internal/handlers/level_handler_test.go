// internal/handlers/level_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupLevelRouter(h *LevelHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/path", h.GetPath)
	r.Route("/levels/{level}", func(r chi.Router) {
		r.Get("/", h.GetLevel)
		r.Post("/complete", h.CompleteLevel)
		r.Route("/items/{index}", func(r chi.Router) {
			r.Get("/", h.GetLevelItem)
			r.Post("/reveal", h.RevealLevelItem)
		})
	})
	return r
}

func levelTestItems() []model.Item {
	return []model.Item{
		{ID: 1, Front: "kot", Back: "кот", Example: "Ala ma kota."},
		{ID: 2, Front: "dom", Back: "дом"},
	}
}

func TestLevelHandler_GetPath(t *testing.T) {
	mockProg := mocks.NewProgressService(t)
	mockLevel := mocks.NewLevelService(t)

	progress := model.DefaultProgress()
	progress.CompletedLevels[1] = true

	mockProg.On("Get", mock.Anything).Return(progress, nil).Once()
	mockLevel.On("NextAvailableLevel", progress).Return(2).Once()
	mockLevel.On("VisibleLevels", progress).Return([]int{1, 2, 3}).Once()
	mockLevel.On("IsLevelCompleted", progress, 1).Return(true).Once()
	mockLevel.On("IsLevelCompleted", progress, 2).Return(false).Once()
	mockLevel.On("IsLevelCompleted", progress, 3).Return(false).Once()

	h := NewLevelHandler(mockProg, mockLevel, NewRevealTracker())
	router := setupLevelRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/path", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.PathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.NextAvailableLevel)
	require.Len(t, resp.Levels, 3)
	assert.True(t, resp.Levels[0].Completed)
	assert.True(t, resp.Levels[0].Available)
	assert.True(t, resp.Levels[1].Available)
	// 開放済みの次より先のレベルは遷移不可として返る
	assert.False(t, resp.Levels[2].Available)
	assert.Equal(t, "10", resp.SrsLimit)
}

func TestLevelHandler_GetLevel(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMocks func(mockProg *mocks.ProgressService, mockLevel *mocks.LevelService)
		wantStatus int
	}{
		{
			name: "正常系: 開放済みレベルのアイテム一覧",
			path: "/levels/1",
			setupMocks: func(mockProg *mocks.ProgressService, mockLevel *mocks.LevelService) {
				progress := model.DefaultProgress()
				mockLevel.On("MaxLevel").Return(3)
				mockProg.On("Get", mock.Anything).Return(progress, nil)
				mockLevel.On("IsLevelNavigable", progress, 1).Return(true)
				mockLevel.On("IsLevelCompleted", progress, 1).Return(false)
				mockLevel.On("ItemsForLevel", 1).Return(levelTestItems())
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: レベル番号が数値でない",
			path:       "/levels/abc",
			setupMocks: func(mockProg *mocks.ProgressService, mockLevel *mocks.LevelService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 存在しないレベルは404",
			path: "/levels/9",
			setupMocks: func(mockProg *mocks.ProgressService, mockLevel *mocks.LevelService) {
				mockLevel.On("MaxLevel").Return(3)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "異常系: 未開放のレベルは403",
			path: "/levels/3",
			setupMocks: func(mockProg *mocks.ProgressService, mockLevel *mocks.LevelService) {
				progress := model.DefaultProgress()
				mockLevel.On("MaxLevel").Return(3)
				mockProg.On("Get", mock.Anything).Return(progress, nil)
				mockLevel.On("IsLevelNavigable", progress, 3).Return(false)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProg := mocks.NewProgressService(t)
			mockLevel := mocks.NewLevelService(t)
			tt.setupMocks(mockProg, mockLevel)

			h := NewLevelHandler(mockProg, mockLevel, NewRevealTracker())
			router := setupLevelRouter(h)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLevelHandler_GetLevelItem(t *testing.T) {
	mockProg := mocks.NewProgressService(t)
	mockLevel := mocks.NewLevelService(t)

	progress := model.DefaultProgress()
	mockLevel.On("MaxLevel").Return(3)
	mockProg.On("Get", mock.Anything).Return(progress, nil)
	mockLevel.On("IsLevelNavigable", progress, 1).Return(true)
	mockLevel.On("ItemsForLevel", 1).Return(levelTestItems())

	h := NewLevelHandler(mockProg, mockLevel, NewRevealTracker())
	router := setupLevelRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/levels/1/items/0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ItemCardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ItemID)
	assert.Equal(t, "кот", resp.Back)
	// 例文は初期表示ではマスクされている
	assert.Equal(t, "*** ** ****.", resp.MaskedExample)
	assert.Equal(t, 1, resp.Position)
	assert.Equal(t, 2, resp.Total)
	assert.False(t, resp.IsLast)
}

func TestLevelHandler_GetLevelItem_IndexOutOfRange(t *testing.T) {
	mockProg := mocks.NewProgressService(t)
	mockLevel := mocks.NewLevelService(t)

	progress := model.DefaultProgress()
	mockLevel.On("MaxLevel").Return(3)
	mockProg.On("Get", mock.Anything).Return(progress, nil)
	mockLevel.On("IsLevelNavigable", progress, 1).Return(true)
	mockLevel.On("ItemsForLevel", 1).Return(levelTestItems())

	h := NewLevelHandler(mockProg, mockLevel, NewRevealTracker())
	router := setupLevelRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/levels/1/items/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLevelHandler_RevealLevelItem(t *testing.T) {
	mockProg := mocks.NewProgressService(t)
	mockLevel := mocks.NewLevelService(t)

	progress := model.DefaultProgress()
	mockLevel.On("MaxLevel").Return(3)
	mockProg.On("Get", mock.Anything).Return(progress, nil)
	mockLevel.On("IsLevelNavigable", progress, 1).Return(true)
	mockLevel.On("ItemsForLevel", 1).Return(levelTestItems())

	h := NewLevelHandler(mockProg, mockLevel, NewRevealTracker())
	router := setupLevelRouter(h)

	// 1語ずつ公開され、同じカードの状態はリクエストをまたいで保持される
	req := httptest.NewRequest(http.MethodPost, "/levels/1/items/0/reveal", strings.NewReader(`{"step":"word"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.RevealResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ala ** ****.", resp.MaskedExample)
	assert.False(t, resp.FullyRevealed)
	assert.Equal(t, 3, resp.RevealedUnits)
	assert.Equal(t, 9, resp.MaskableUnits)

	req = httptest.NewRequest(http.MethodPost, "/levels/1/items/0/reveal", strings.NewReader(`{"step":"all"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ala ma kota.", resp.MaskedExample)
	assert.True(t, resp.FullyRevealed)
}

func TestLevelHandler_RevealLevelItem_InvalidStep(t *testing.T) {
	mockProg := mocks.NewProgressService(t)
	mockLevel := mocks.NewLevelService(t)

	progress := model.DefaultProgress()
	mockLevel.On("MaxLevel").Return(3)
	mockProg.On("Get", mock.Anything).Return(progress, nil)
	mockLevel.On("IsLevelNavigable", progress, 1).Return(true)
	mockLevel.On("ItemsForLevel", 1).Return(levelTestItems())

	h := NewLevelHandler(mockProg, mockLevel, NewRevealTracker())
	router := setupLevelRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/levels/1/items/0/reveal", strings.NewReader(`{"step":"letter"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLevelHandler_CompleteLevel(t *testing.T) {
	mockProg := mocks.NewProgressService(t)
	mockLevel := mocks.NewLevelService(t)

	progress := model.DefaultProgress()
	mockLevel.On("MaxLevel").Return(3)
	mockProg.On("Get", mock.Anything).Return(progress, nil)
	mockLevel.On("IsLevelNavigable", progress, 1).Return(true)
	mockProg.On("MarkLevelCompleted", mock.Anything, 1).Return(nil).Once()

	h := NewLevelHandler(mockProg, mockLevel, NewRevealTracker())
	router := setupLevelRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/levels/1/complete", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// internal/handlers/progress_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_vocab_path/internal/config"
	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgressHandler_Restore(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.ProgressService)
		wantStatus int
	}{
		{
			name: "正常系: レベル3まで開放",
			body: `{"level":3}`,
			setupMock: func(m *mocks.ProgressService) {
				m.On("RestoreThroughLevel", mock.Anything, 3).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "異常系: レベル0はバリデーションエラー",
			body:       `{"level":0}`,
			setupMock:  func(m *mocks.ProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "異常系: ボディが壊れている",
			body:       `{level`,
			setupMock:  func(m *mocks.ProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProg := mocks.NewProgressService(t)
			tt.setupMock(mockProg)
			h := NewProgressHandler(mockProg)

			req := httptest.NewRequest(http.MethodPost, "/progress/restore", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Restore(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestProgressHandler_IgnoreUntil(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.ProgressService)
		wantStatus int
	}{
		{
			name: "正常系: レベル4までSRS除外",
			body: `{"level":4}`,
			setupMock: func(m *mocks.ProgressService) {
				m.On("IgnoreThroughLevel", mock.Anything, 4).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "異常系: レベル1では何も除外できない",
			body:       `{"level":1}`,
			setupMock:  func(m *mocks.ProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProg := mocks.NewProgressService(t)
			tt.setupMock(mockProg)
			h := NewProgressHandler(mockProg)

			req := httptest.NewRequest(http.MethodPost, "/progress/ignore-until", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.IgnoreUntil(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestProgressHandler_ResetIgnored(t *testing.T) {
	mockProg := mocks.NewProgressService(t)
	mockProg.On("ResetIgnoredItems", mock.Anything).Return(nil).Once()
	h := NewProgressHandler(mockProg)

	req := httptest.NewRequest(http.MethodPost, "/progress/reset-ignored", nil)
	rec := httptest.NewRecorder()
	h.ResetIgnored(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProgressHandler_GetSrsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit string
	}{
		{name: "正常系: 数値の上限", limit: 15, wantLimit: "15"},
		{name: "正常系: 無制限はallとして返る", limit: config.UnboundedSrsLimit, wantLimit: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProg := mocks.NewProgressService(t)
			progress := model.DefaultProgress()
			progress.Settings.SrsLimit = tt.limit
			mockProg.On("Get", mock.Anything).Return(progress, nil).Once()
			h := NewProgressHandler(mockProg)

			req := httptest.NewRequest(http.MethodGet, "/settings/srs-limit", nil)
			rec := httptest.NewRecorder()
			h.GetSrsLimit(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp model.SrsLimitResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantLimit, resp.Limit)
		})
	}
}

func TestProgressHandler_SetSrsLimit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.ProgressService)
		wantStatus int
		wantLimit  string
	}{
		{
			name: "正常系: 数値の上限",
			body: `{"limit":"15"}`,
			setupMock: func(m *mocks.ProgressService) {
				m.On("SetSrsLimit", mock.Anything, 15).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantLimit:  "15",
		},
		{
			name: "正常系: allは番兵値として保存される",
			body: `{"limit":"all"}`,
			setupMock: func(m *mocks.ProgressService) {
				m.On("SetSrsLimit", mock.Anything, config.UnboundedSrsLimit).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantLimit:  "all",
		},
		{
			name:       "異常系: 数値でもallでもない",
			body:       `{"limit":"abc"}`,
			setupMock:  func(m *mocks.ProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "異常系: 0は不正",
			body:       `{"limit":"0"}`,
			setupMock:  func(m *mocks.ProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProg := mocks.NewProgressService(t)
			tt.setupMock(mockProg)
			h := NewProgressHandler(mockProg)

			req := httptest.NewRequest(http.MethodPut, "/settings/srs-limit", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.SetSrsLimit(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp model.SrsLimitResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantLimit, resp.Limit)
			}
		})
	}
}

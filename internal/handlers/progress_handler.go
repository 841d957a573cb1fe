// internal/handlers/progress_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"go_5_vocab_path/internal/config"
	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/service"
	"go_5_vocab_path/internal/webutil"
)

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// Restore は「レベルNまで開放」の一括操作です (レベル1..N-1を完了扱いにする)
func (h *ProgressHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var req model.RestoreRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	if err := h.progressService.RestoreThroughLevel(r.Context(), req.Level); err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// IgnoreUntil は「レベルNまでSRS除外」の一括操作です。
// レベル1..N-1を完了扱いにし、その範囲の全アイテムを除外リストに入れます
func (h *ProgressHandler) IgnoreUntil(w http.ResponseWriter, r *http.Request) {
	var req model.IgnoreUntilRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	if err := h.progressService.IgnoreThroughLevel(r.Context(), req.Level); err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetIgnored はSRS除外リストを空にします
func (h *ProgressHandler) ResetIgnored(w http.ResponseWriter, r *http.Request) {
	if err := h.progressService.ResetIgnoredItems(r.Context()); err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSrsLimit は現在のセッション上限を返します
func (h *ProgressHandler) GetSrsLimit(w http.ResponseWriter, r *http.Request) {
	progress, err := h.progressService.Get(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.SrsLimitResponse{
		Limit: formatSrsLimit(progress.Settings.SrsLimit),
	})
}

// SetSrsLimit はセッション上限を設定します。正の整数か "all" を受け付けます
func (h *ProgressHandler) SetSrsLimit(w http.ResponseWriter, r *http.Request) {
	var req model.SrsLimitRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	limit, err := parseSrsLimit(req.Limit)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	if err := h.progressService.SetSrsLimit(r.Context(), limit); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SrsLimitResponse{
		Limit: formatSrsLimit(limit),
	})
}

// formatSrsLimit は番兵値を "all"、それ以外を数値文字列にします
func formatSrsLimit(limit int) string {
	if limit >= config.UnboundedSrsLimit {
		return config.UnboundedSrsLimitLabel
	}
	return strconv.Itoa(limit)
}

func parseSrsLimit(value string) (int, error) {
	if value == config.UnboundedSrsLimitLabel {
		return config.UnboundedSrsLimit, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 1 {
		return 0, model.NewAppError("INVALID_INPUT", "セッション上限が不正です。", "limit", model.ErrInvalidInput)
	}
	return limit, nil
}

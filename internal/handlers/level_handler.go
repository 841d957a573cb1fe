// internal/handlers/level_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/service"
	"go_5_vocab_path/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type LevelHandler struct {
	progressService service.ProgressService
	levelService    service.LevelService
	tracker         *RevealTracker
}

func NewLevelHandler(progressService service.ProgressService, levelService service.LevelService, tracker *RevealTracker) *LevelHandler {
	return &LevelHandler{
		progressService: progressService,
		levelService:    levelService,
		tracker:         tracker,
	}
}

// GetPath はパス画面用の表示状態を返します。空レベルは含まれません
func (h *LevelHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	progress, err := h.progressService.Get(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	next := h.levelService.NextAvailableLevel(progress)
	visible := h.levelService.VisibleLevels(progress)

	levels := make([]model.PathLevel, 0, len(visible))
	for _, lvl := range visible {
		levels = append(levels, model.PathLevel{
			Level:     lvl,
			Completed: h.levelService.IsLevelCompleted(progress, lvl),
			Available: lvl <= next,
		})
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.PathResponse{
		Levels:             levels,
		NextAvailableLevel: next,
		SrsLimit:           formatSrsLimit(progress.Settings.SrsLimit),
	})
}

// GetLevel はレベル内のアイテム一覧を返します。未開放のレベルは403
func (h *LevelHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	level, progress, err := h.navigableLevel(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.LevelItemsResponse{
		Level:     level,
		Completed: h.levelService.IsLevelCompleted(progress, level),
		Items:     h.levelService.ItemsForLevel(level),
	})
}

// GetLevelItem はレベル内の1枚のカードをマスク済み例文付きで返します
func (h *LevelHandler) GetLevelItem(w http.ResponseWriter, r *http.Request) {
	level, _, err := h.navigableLevel(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	item, index, total, err := h.levelItem(r, level)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	key := levelCardKey(level, index)
	webutil.RespondWithJSON(w, http.StatusOK, model.ItemCardResponse{
		ItemID:        item.ID,
		Back:          item.Back,
		MaskedExample: h.tracker.Render(key, item.Sentence()),
		Position:      index + 1,
		Total:         total,
		IsLast:        index >= total-1,
	})
}

// RevealLevelItem は表示中のカードの例文に公開操作を1つ適用します
func (h *LevelHandler) RevealLevelItem(w http.ResponseWriter, r *http.Request) {
	level, _, err := h.navigableLevel(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	item, index, _, err := h.levelItem(r, level)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	var req model.RevealRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	key := levelCardKey(level, index)
	webutil.RespondWithJSON(w, http.StatusOK, h.tracker.Apply(key, item.Sentence(), req.Step))
}

// CompleteLevel はレベルを完了としてマークします
func (h *LevelHandler) CompleteLevel(w http.ResponseWriter, r *http.Request) {
	level, _, err := h.navigableLevel(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	if err := h.progressService.MarkLevelCompleted(r.Context(), level); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// navigableLevel はURLのレベル番号を検証し、遷移可能であることを確認します
func (h *LevelHandler) navigableLevel(r *http.Request) (int, *model.Progress, error) {
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil || level < 1 {
		return 0, nil, model.NewAppError("INVALID_INPUT", "レベル番号が不正です。", "level", model.ErrInvalidInput)
	}
	if level > h.levelService.MaxLevel() {
		return 0, nil, model.NewAppError("NOT_FOUND", "レベルが存在しません。", "level", model.ErrNotFound)
	}

	progress, err := h.progressService.Get(r.Context())
	if err != nil {
		return 0, nil, err
	}
	if !h.levelService.IsLevelNavigable(progress, level) {
		return 0, nil, model.NewAppError("FORBIDDEN", "このレベルはまだ開放されていません。", "level", model.ErrForbidden)
	}
	return level, progress, nil
}

// levelItem はURLのインデックスでレベル内のアイテムを特定します (0始まり)
func (h *LevelHandler) levelItem(r *http.Request, level int) (model.Item, int, int, error) {
	items := h.levelService.ItemsForLevel(level)
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		return model.Item{}, 0, 0, model.NewAppError("INVALID_INPUT", "アイテム位置が不正です。", "index", model.ErrInvalidInput)
	}
	if index >= len(items) {
		return model.Item{}, 0, 0, model.NewAppError("NOT_FOUND", "アイテムが存在しません。", "index", model.ErrNotFound)
	}
	return items[index], index, len(items), nil
}

func levelCardKey(level, index int) string {
	return fmt.Sprintf("level/%d/%d", level, index)
}

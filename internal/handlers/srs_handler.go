// internal/handlers/srs_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/service"
	"go_5_vocab_path/internal/webutil"
)

type SrsHandler struct {
	srsService      service.SrsService
	progressService service.ProgressService
	tracker         *RevealTracker
}

func NewSrsHandler(srsService service.SrsService, progressService service.ProgressService, tracker *RevealTracker) *SrsHandler {
	return &SrsHandler{
		srsService:      srsService,
		progressService: progressService,
		tracker:         tracker,
	}
}

// StartSession は新しいレビューセッションを開始します。
// 進行中の未完了セッションがあれば破棄されます
func (h *SrsHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.srsService.StartSession(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, h.card(session))
}

// GetSession は保存済みセッションの現在のカードを返します (リロード後の再開用)
func (h *SrsHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.srsService.CurrentSession(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.card(session))
}

// AbandonSession はセッションを黙って破棄します
func (h *SrsHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	if err := h.srsService.Abandon(r.Context()); err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Advance は今日のレビューを記録してカーソルを進めます
func (h *SrsHandler) Advance(w http.ResponseWriter, r *http.Request) {
	session, finished, err := h.srsService.Advance(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	h.respondAdvance(w, session, finished)
}

// IgnoreCurrent は現在のカードを恒久的にSRS除外し、セッションから取り除きます
func (h *SrsHandler) IgnoreCurrent(w http.ResponseWriter, r *http.Request) {
	session, finished, err := h.srsService.IgnoreCurrent(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	h.respondAdvance(w, session, finished)
}

// Reveal は現在のカードの例文に公開操作を1つ適用します
func (h *SrsHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	session, err := h.srsService.CurrentSession(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	item, ok := session.Current()
	if !ok {
		webutil.HandleError(w, r, model.NewAppError("SESSION_NOT_FOUND", "進行中のセッションがありません。", "", model.ErrSessionNotFound))
		return
	}

	var req model.RevealRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	key := srsCardKey(session, item)
	webutil.RespondWithJSON(w, http.StatusOK, h.tracker.Apply(key, item.Sentence(), req.Step))
}

// Calendar は1ヶ月分のSRSアクティビティを返します (month=YYYY-MM、省略時は今月)
func (h *SrsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	var first time.Time
	if month == "" {
		now := time.Now()
		first = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	} else {
		parsed, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			webutil.HandleError(w, r, model.NewAppError("INVALID_INPUT", "月の指定が不正です。", "month", model.ErrInvalidInput))
			return
		}
		first = parsed
	}

	progress, err := h.progressService.Get(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	// 月曜始まりのグリッド。日曜は7列目として扱う
	weekday := int(first.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	days := make([]model.CalendarDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		days = append(days, model.CalendarDay{
			Date:  date,
			Count: progress.SrsHistory[date],
		})
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.CalendarResponse{
		Month:            first.Format("2006-01"),
		LeadingEmptyDays: weekday - 1,
		Days:             days,
	})
}

func (h *SrsHandler) respondAdvance(w http.ResponseWriter, session *model.SrsSession, finished bool) {
	if finished {
		webutil.RespondWithJSON(w, http.StatusOK, model.SrsAdvanceResponse{Finished: true})
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.SrsAdvanceResponse{
		Finished: false,
		Card:     h.card(session),
	})
}

// card は現在のカーソル位置のカード表示DTOを組み立てます
func (h *SrsHandler) card(session *model.SrsSession) *model.SrsCardResponse {
	item, ok := session.Current()
	if !ok {
		return nil
	}
	key := srsCardKey(session, item)
	return &model.SrsCardResponse{
		SessionID:     session.SessionID,
		ItemID:        item.ID,
		Back:          item.Back,
		MaskedExample: h.tracker.Render(key, item.Sentence()),
		Position:      session.Index + 1,
		Total:         len(session.Items),
		IsLast:        session.Index >= len(session.Items)-1,
	}
}

// srsCardKey はカーソル位置ではなくアイテムでキーを決めます。
// 除外操作では同じインデックスに別のカードが来るため
func srsCardKey(session *model.SrsSession, item model.Item) string {
	return fmt.Sprintf("srs/%s/%d", session.SessionID, item.ID)
}

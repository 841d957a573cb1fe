// internal/handlers/speech_handler.go
package handlers

import (
	"net/http"

	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/service"
	"go_5_vocab_path/internal/webutil"
)

type SpeechHandler struct {
	speaker service.Speaker
}

func NewSpeechHandler(speaker service.Speaker) *SpeechHandler {
	return &SpeechHandler{speaker: speaker}
}

// Speak はテキストを音声出力コラボレータに渡します。
// コアが消費する戻り値はないので202を返すだけです
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req model.SpeakRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	if err := h.speaker.Speak(r.Context(), req.Text); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

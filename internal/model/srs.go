// internal/model/srs.go
package model

import "github.com/google/uuid"

// SrsSession はレビューセッションの一時状態です。`srs_session` レコードに
// JSONとして保存されるのは、リロード後に途中再開できるようにするためだけで、
// 完了・放棄時にはレコードごと削除されます。
type SrsSession struct {
	SessionID uuid.UUID `json:"session_id"`
	Items     []Item    `json:"chars"`
	Index     int       `json:"index"`
}

// Current はカーソル位置のアイテムを返します (範囲外ならfalse)
func (s *SrsSession) Current() (Item, bool) {
	if s.Index < 0 || s.Index >= len(s.Items) {
		return Item{}, false
	}
	return s.Items[s.Index], true
}

// SrsCardResponse はセッション中の1枚のカード表示用DTO
type SrsCardResponse struct {
	SessionID     uuid.UUID `json:"session_id"`
	ItemID        int       `json:"item_id"`
	Back          string    `json:"back"`
	MaskedExample string    `json:"masked_example"`
	Position      int       `json:"position"` // 1始まり
	Total         int       `json:"total"`
	IsLast        bool      `json:"is_last"`
}

// SrsAdvanceResponse は advance / ignore 操作の結果
type SrsAdvanceResponse struct {
	// セッションが終了したかどうか。終了時 Card は nil
	Finished bool             `json:"finished"`
	Card     *SrsCardResponse `json:"card,omitempty"`
}

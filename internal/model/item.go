// internal/model/item.go
package model

// Item は学習アイテム1件を表します。カタログ(コンテンツプロバイダ)が所有する
// 不変データで、IDは1から始まる連番であることが前提です。
type Item struct {
	ID    int    `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
	// 段階的公開に使う例文。空の場合は Front を例文として扱う
	Example string `json:"example,omitempty"`
}

// Sentence は段階的公開の対象となる文章を返します
func (i Item) Sentence() string {
	if i.Example != "" {
		return i.Example
	}
	return i.Front
}

// ItemCardResponse はレベル内の1枚のカード表示用DTO
type ItemCardResponse struct {
	ItemID int    `json:"item_id"`
	Back   string `json:"back"`
	// マスク済みの例文 (公開操作で徐々に開く)
	MaskedExample string `json:"masked_example"`
	Position      int    `json:"position"`
	Total         int    `json:"total"`
	IsLast        bool   `json:"is_last"`
}

// RevealRequest は公開操作リクエストのDTO
type RevealRequest struct {
	Step string `json:"step" validate:"required,oneof=unit word all"`
}

// RevealResponse は公開操作後の文章の状態
type RevealResponse struct {
	MaskedExample string `json:"masked_example"`
	FullyRevealed bool   `json:"fully_revealed"`
	RevealedUnits int    `json:"revealed_units"`
	MaskableUnits int    `json:"maskable_units"`
}

// SpeakRequest は読み上げリクエストのDTO
type SpeakRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

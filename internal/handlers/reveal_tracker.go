// internal/handlers/reveal_tracker.go
package handlers

import (
	"sync"

	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/reveal"
)

// RevealTracker は表示中のカード1枚分の公開状態をメモリ上に保持します。
// 表示カードが切り替わる (キーが変わる) と状態は作り直されます。
// 単一ユーザーのローカルアプリ前提なので永続化はしません
type RevealTracker struct {
	mu    sync.Mutex
	key   string
	state *reveal.State
}

func NewRevealTracker() *RevealTracker {
	return &RevealTracker{}
}

// stateForLocked はキーに対応する状態を返します (必要なら作り直す)。
// 呼び出し側がロックを保持していること
func (t *RevealTracker) stateForLocked(key, sentence string) *reveal.State {
	if t.state == nil || t.key != key {
		t.key = key
		t.state = reveal.NewState(sentence)
	}
	return t.state
}

// Render はカード表示用のマスク済み文字列を返します
func (t *RevealTracker) Render(key, sentence string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateForLocked(key, sentence).Render()
}

// Apply は公開操作を1つ適用し、操作後の状態を返します。
// 全公開済みの状態に対する追加の公開操作はno-opです
func (t *RevealTracker) Apply(key, sentence, step string) *model.RevealResponse {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := t.stateForLocked(key, sentence)
	switch step {
	case "unit":
		state.RevealNextUnit()
	case "word":
		state.RevealNextWord()
	case "all":
		state.RevealAll()
	}

	return &model.RevealResponse{
		MaskedExample: state.Render(),
		FullyRevealed: state.IsFullyRevealed(),
		RevealedUnits: state.RevealedCount(),
		MaskableUnits: state.MaskableCount(),
	}
}

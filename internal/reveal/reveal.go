// Package reveal は例文の段階的公開エンジンです。
// 文章を書記素クラスタ (利用者が1文字と知覚する単位) に分割し、
// 区切り文字は常に表示、それ以外は公開されるまでマスク文字で描画します。
package reveal

import (
	"strings"

	"github.com/rivo/uniseg"

	"go_5_vocab_path/internal/config"
)

// Unit は公開単位1つ分です。区切り文字は常に表示扱いで、
// カーソルの前進時にスキップされます
type Unit struct {
	Glyph     string `json:"glyph"`
	Delimiter bool   `json:"delimiter"`
	Revealed  bool   `json:"revealed"`
}

// State は1つの文章に対する公開状態です。カーソルは次に公開できる位置を指し、
// 後退することはありません
type State struct {
	Units []Unit `json:"units"`
	Index int    `json:"index"`
}

// 常に表示する区切り文字 (スペース・カンマ・ピリオド・疑問符)
func isDelimiter(glyph string) bool {
	switch glyph {
	case " ", ",", ".", "?":
		return true
	}
	return false
}

// NewState は文章を書記素クラスタ単位に分割して初期状態を作ります。
// 多バイトの1文字 (表語文字や結合文字列) も1単位として扱われます
func NewState(sentence string) *State {
	var units []Unit
	gr := uniseg.NewGraphemes(sentence)
	for gr.Next() {
		glyph := gr.Str()
		units = append(units, Unit{
			Glyph:     glyph,
			Delimiter: isDelimiter(glyph),
		})
	}
	return &State{Units: units}
}

// skipDelimiters はカーソル位置から区切り文字を読み飛ばします
func (s *State) skipDelimiters() {
	for s.Index < len(s.Units) && s.Units[s.Index].Delimiter {
		s.Index++
	}
}

// RevealNextUnit は次の1単位を公開します。カーソルが末尾を過ぎていればno-op
func (s *State) RevealNextUnit() {
	s.skipDelimiters()
	if s.Index >= len(s.Units) {
		return
	}
	s.Units[s.Index].Revealed = true
	s.Index++
}

// RevealNextWord は次の単語 (区切り文字まで連続するマスク対象単位の並び) を
// まとめて公開します
func (s *State) RevealNextWord() {
	s.skipDelimiters()
	for s.Index < len(s.Units) && !s.Units[s.Index].Delimiter {
		s.Units[s.Index].Revealed = true
		s.Index++
	}
}

// RevealAll は全てのマスク対象単位を公開し、カーソルを末尾に移動します
func (s *State) RevealAll() {
	for i := range s.Units {
		if !s.Units[i].Delimiter {
			s.Units[i].Revealed = true
		}
	}
	s.Index = len(s.Units)
}

// IsFullyRevealed は全てのマスク対象単位が公開済みなら true
func (s *State) IsFullyRevealed() bool {
	for _, u := range s.Units {
		if !u.Delimiter && !u.Revealed {
			return false
		}
	}
	return true
}

// RevealedCount は公開済みのマスク対象単位の数を返します
func (s *State) RevealedCount() int {
	n := 0
	for _, u := range s.Units {
		if !u.Delimiter && u.Revealed {
			n++
		}
	}
	return n
}

// MaskableCount はマスク対象単位の総数を返します
func (s *State) MaskableCount() int {
	n := 0
	for _, u := range s.Units {
		if !u.Delimiter {
			n++
		}
	}
	return n
}

// Render は表示用文字列を組み立てます。区切り文字と公開済み単位はそのまま、
// 未公開単位はマスク文字1つに置き換えられ、並び順と単位数は保存されます
func (s *State) Render() string {
	var b strings.Builder
	for _, u := range s.Units {
		if u.Delimiter || u.Revealed {
			b.WriteString(u.Glyph)
		} else {
			b.WriteString(config.MaskGlyph)
		}
	}
	return b.String()
}

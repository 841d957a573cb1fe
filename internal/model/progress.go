// internal/model/progress.go
package model

import "go_5_vocab_path/internal/config"

// Progress は学習状態の単一の永続化集約です。`progress` レコードに
// JSONとして丸ごと保存され、更新は常に load → mutate → save で行います。
type Progress struct {
	// 完了済みレベル番号の集合。連続している必要はない (一括開放で穴が空く)
	CompletedLevels map[int]bool `json:"completedLevels"`
	// SRS対象から恒久的に除外したアイテムIDの集合
	IgnoredItems map[int]bool `json:"ignoredFromSrs"`
	// 日付(YYYY-MM-DD) → その日のレビュー回数
	SrsHistory map[string]int `json:"srsHistory"`
	Settings   Settings       `json:"settings"`
}

type Settings struct {
	// セッションの上限枚数。UnboundedSrsLimit なら無制限
	SrsLimit int `json:"srsLimit"`
}

// DefaultProgress は未保存・破損時のデフォルト状態を返します
func DefaultProgress() *Progress {
	return &Progress{
		CompletedLevels: map[int]bool{},
		IgnoredItems:    map[int]bool{},
		SrsHistory:      map[string]int{},
		Settings:        Settings{SrsLimit: config.DefaultSrsLimit},
	}
}

// Normalize はnilマップや不正値をデフォルトに補正します (破損レコード対策)
func (p *Progress) Normalize() {
	if p.CompletedLevels == nil {
		p.CompletedLevels = map[int]bool{}
	}
	if p.IgnoredItems == nil {
		p.IgnoredItems = map[int]bool{}
	}
	if p.SrsHistory == nil {
		p.SrsHistory = map[string]int{}
	}
	if p.Settings.SrsLimit <= 0 {
		p.Settings.SrsLimit = config.DefaultSrsLimit
	}
}

// MaxCompletedLevel は完了済みレベルの最大値を返します (なければ0)
func (p *Progress) MaxCompletedLevel() int {
	max := 0
	for lvl := range p.CompletedLevels {
		if lvl > max {
			max = lvl
		}
	}
	return max
}

// --- リクエスト/レスポンスDTO ---

// RestoreRequest は「レベルNまで開放」リクエスト
type RestoreRequest struct {
	Level int `json:"level" validate:"required,min=1"`
}

// IgnoreUntilRequest は「レベルNまでSRS除外」リクエスト
// レベル1..N-1を完了扱いにし、その範囲のアイテムを除外リストに入れる
type IgnoreUntilRequest struct {
	Level int `json:"level" validate:"required,min=2"`
}

// SrsLimitRequest はセッション上限の設定リクエスト。
// 正の整数の文字列、または "all" (無制限) を受け付ける
type SrsLimitRequest struct {
	Limit string `json:"limit" validate:"required"`
}

// SrsLimitResponse は現在のセッション上限
type SrsLimitResponse struct {
	Limit string `json:"limit"`
}

// CalendarDay はアクティビティカレンダーの1日分
type CalendarDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CalendarResponse は1ヶ月分のSRSアクティビティ
type CalendarResponse struct {
	Month string `json:"month"`
	// 月初より前の空セル数 (月曜始まりのグリッド用)
	LeadingEmptyDays int           `json:"leading_empty_days"`
	Days             []CalendarDay `json:"days"`
}

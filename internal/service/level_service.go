// internal/service/level_service.go
package service

import (
	"go_5_vocab_path/internal/catalog"
	"go_5_vocab_path/internal/model"
)

// LevelService はProgressスナップショットとカタログから導出される
// 純粋な問い合わせ群です。副作用はなく、レベル完了の記録は
// ProgressService.MarkLevelCompleted の責務です
type LevelService interface {
	ItemsForLevel(level int) []model.Item
	IsLevelEmpty(progress *model.Progress, level int) bool
	VisibleLevels(progress *model.Progress) []int
	NextAvailableLevel(progress *model.Progress) int
	IsLevelCompleted(progress *model.Progress, level int) bool
	IsLevelNavigable(progress *model.Progress, level int) bool
	MaxLevel() int
}

type levelService struct {
	cat *catalog.Catalog
}

func NewLevelService(cat *catalog.Catalog) LevelService {
	return &levelService{cat: cat}
}

func (s *levelService) ItemsForLevel(level int) []model.Item {
	return s.cat.ItemsForLevel(level)
}

func (s *levelService) MaxLevel() int {
	return s.cat.MaxLevel()
}

// IsLevelEmpty はレンジ内の全アイテムが除外済みのときtrue。
// 空レベルはナビゲーションから隠れるが、レベル番号は占有し続ける
func (s *levelService) IsLevelEmpty(progress *model.Progress, level int) bool {
	for _, item := range s.cat.ItemsForLevel(level) {
		if !progress.IgnoredItems[item.ID] {
			return false
		}
	}
	return true
}

// VisibleLevels は1..MaxLevelのうち空でないレベルを昇順で返します
func (s *levelService) VisibleLevels(progress *model.Progress) []int {
	levels := make([]int, 0, s.cat.MaxLevel())
	for lvl := 1; lvl <= s.cat.MaxLevel(); lvl++ {
		if !s.IsLevelEmpty(progress, lvl) {
			levels = append(levels, lvl)
		}
	}
	return levels
}

// NextAvailableLevel は完了済みレベルが無ければ1、あれば最大値+1を返します。
// 最大値より下の穴は何も再ロックしません
func (s *levelService) NextAvailableLevel(progress *model.Progress) int {
	max := progress.MaxCompletedLevel()
	if max == 0 {
		return 1
	}
	return max + 1
}

func (s *levelService) IsLevelCompleted(progress *model.Progress, level int) bool {
	return progress.CompletedLevels[level]
}

// IsLevelNavigable はレベルLに遷移できるか (L <= NextAvailableLevel) を返します
func (s *levelService) IsLevelNavigable(progress *model.Progress, level int) bool {
	return level >= 1 && level <= s.NextAvailableLevel(progress)
}

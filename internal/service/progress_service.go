// internal/service/progress_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go_5_vocab_path/internal/catalog"
	"go_5_vocab_path/internal/config"
	"go_5_vocab_path/internal/middleware"
	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/repository"

	"gorm.io/gorm"
)

// ProgressService は学習状態の集約 (Progress) の読み書きを担います。
// 各更新操作は1つのGORMトランザクション内で load → mutate → save を行うため、
// 同一プロセス内の書き込みは直列化されます
type ProgressService interface {
	Get(ctx context.Context) (*model.Progress, error)
	MarkLevelCompleted(ctx context.Context, level int) error
	SetSrsLimit(ctx context.Context, limit int) error
	IgnoreItem(ctx context.Context, itemID int) error
	IgnoreThroughLevel(ctx context.Context, level int) error
	RestoreThroughLevel(ctx context.Context, level int) error
	ResetIgnoredItems(ctx context.Context) error
	RecordReviewToday(ctx context.Context) error
}

type progressService struct {
	db        *gorm.DB
	stateRepo repository.StateRepository
	cat       *catalog.Catalog
}

func NewProgressService(db *gorm.DB, stateRepo repository.StateRepository, cat *catalog.Catalog) ProgressService {
	return &progressService{
		db:        db,
		stateRepo: stateRepo,
		cat:       cat,
	}
}

// loadProgress は永続化レコードからProgressを復元します。
// 未保存・破損レコードはエラーにせずデフォルト状態を返します
func loadProgress(ctx context.Context, db *gorm.DB, stateRepo repository.StateRepository) (*model.Progress, error) {
	value, err := stateRepo.Load(ctx, db, config.ProgressRecordKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.DefaultProgress(), nil
		}
		return nil, err
	}

	var progress model.Progress
	if err := json.Unmarshal([]byte(value), &progress); err != nil {
		logger := middleware.GetLogger(ctx)
		logger.Warn("Malformed progress record, falling back to defaults", "error", err)
		return model.DefaultProgress(), nil
	}
	progress.Normalize()
	return &progress, nil
}

func saveProgress(ctx context.Context, tx *gorm.DB, stateRepo repository.StateRepository, progress *model.Progress) error {
	value, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return stateRepo.Save(ctx, tx, config.ProgressRecordKey, string(value))
}

// mutate は1トランザクション内で load → mutate → save を実行します
func (s *progressService) mutate(ctx context.Context, fn func(progress *model.Progress) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := loadProgress(ctx, tx, s.stateRepo)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の読み込みに失敗しました。", "", err)
		}
		if err := fn(progress); err != nil {
			return err
		}
		if err := saveProgress(ctx, tx, s.stateRepo, progress); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の保存に失敗しました。", "", err)
		}
		return nil
	})
}

func (s *progressService) Get(ctx context.Context) (*model.Progress, error) {
	progress, err := loadProgress(ctx, s.db, s.stateRepo)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の読み込みに失敗しました。", "", err)
	}
	return progress, nil
}

func (s *progressService) MarkLevelCompleted(ctx context.Context, level int) error {
	if level < 1 || level > s.cat.MaxLevel() {
		return model.NewAppError("INVALID_INPUT", "レベル番号が不正です。", "level", model.ErrInvalidInput)
	}
	return s.mutate(ctx, func(progress *model.Progress) error {
		progress.CompletedLevels[level] = true
		return nil
	})
}

func (s *progressService) SetSrsLimit(ctx context.Context, limit int) error {
	if limit <= 0 {
		return model.NewAppError("INVALID_INPUT", "セッション上限が不正です。", "limit", model.ErrInvalidInput)
	}
	return s.mutate(ctx, func(progress *model.Progress) error {
		progress.Settings.SrsLimit = limit
		return nil
	})
}

func (s *progressService) IgnoreItem(ctx context.Context, itemID int) error {
	if itemID < 1 {
		return model.NewAppError("INVALID_INPUT", "アイテムIDが不正です。", "item_id", model.ErrInvalidInput)
	}
	return s.mutate(ctx, func(progress *model.Progress) error {
		progress.IgnoredItems[itemID] = true
		return nil
	})
}

// IgnoreThroughLevel はレベル1..level-1を完了扱いにし、その範囲の全アイテムを
// SRS除外リストに入れます。「永久にスキップ」と「学習済み」を同時に記録する
// 一括操作で、カレンダー・履歴上も完了として扱われます
func (s *progressService) IgnoreThroughLevel(ctx context.Context, level int) error {
	if level < 2 {
		// 部分的な変更は行わない
		return model.NewAppError("INVALID_INPUT", "レベル番号が不正です。", "level", model.ErrInvalidInput)
	}
	return s.mutate(ctx, func(progress *model.Progress) error {
		for lvl := 1; lvl < level; lvl++ {
			progress.CompletedLevels[lvl] = true
			for _, item := range s.cat.ItemsForLevel(lvl) {
				progress.IgnoredItems[item.ID] = true
			}
		}
		return nil
	})
}

// RestoreThroughLevel はレベル1..level-1を完了扱いにします。除外リストは触りません
func (s *progressService) RestoreThroughLevel(ctx context.Context, level int) error {
	if level < 1 {
		return model.NewAppError("INVALID_INPUT", "レベル番号が不正です。", "level", model.ErrInvalidInput)
	}
	return s.mutate(ctx, func(progress *model.Progress) error {
		for lvl := 1; lvl < level; lvl++ {
			progress.CompletedLevels[lvl] = true
		}
		return nil
	})
}

func (s *progressService) ResetIgnoredItems(ctx context.Context) error {
	return s.mutate(ctx, func(progress *model.Progress) error {
		progress.IgnoredItems = map[int]bool{}
		return nil
	})
}

func (s *progressService) RecordReviewToday(ctx context.Context) error {
	return s.mutate(ctx, func(progress *model.Progress) error {
		recordReview(progress, time.Now())
		return nil
	})
}

// recordReview はレビュー回数を1増やします。履歴の日付キーはUTC日付で
// 固定し、サーバーのタイムゾーンに依存しないようにする
func recordReview(progress *model.Progress, now time.Time) {
	day := now.UTC().Format("2006-01-02")
	progress.SrsHistory[day]++
}

//go:generate mockery --name StateRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_path/internal/middleware"
	"go_5_vocab_path/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository はキー・バリュー形式の永続化ポートです。
// 値は集約をJSONシリアライズした文字列で、部分更新のプリミティブは持ちません
// (呼び出し側が load → mutate → save を行う)
type StateRepository interface {
	Load(ctx context.Context, db *gorm.DB, key string) (string, error)
	Save(ctx context.Context, tx *gorm.DB, key, value string) error
	Delete(ctx context.Context, tx *gorm.DB, key string) error
}

type gormStateRepository struct{}

func NewGormStateRepository() StateRepository {
	return &gormStateRepository{}
}

func (r *gormStateRepository) Load(ctx context.Context, db *gorm.DB, key string) (string, error) {
	var record model.StateRecord
	result := db.WithContext(ctx).Where("key = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", model.ErrNotFound
		}
		logger := middleware.GetLogger(ctx)
		logger.Error("Error loading state record from DB",
			"error", result.Error,
			"key", key,
		)
		return "", fmt.Errorf("gormStateRepository.Load: %w", result.Error)
	}
	return record.Value, nil
}

func (r *gormStateRepository) Save(ctx context.Context, tx *gorm.DB, key, value string) error {
	record := model.StateRecord{Key: key, Value: value}
	// レコード全体の上書き保存 (last save wins)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record)
	if result.Error != nil {
		logger := middleware.GetLogger(ctx)
		logger.Error("Error saving state record to DB",
			"error", result.Error,
			"key", key,
		)
		return fmt.Errorf("gormStateRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormStateRepository) Delete(ctx context.Context, tx *gorm.DB, key string) error {
	// 存在しないキーの削除はno-op (放棄操作を冪等にするため)
	result := tx.WithContext(ctx).Where("key = ?", key).Delete(&model.StateRecord{})
	if result.Error != nil {
		logger := middleware.GetLogger(ctx)
		logger.Error("Error deleting state record from DB",
			"error", result.Error,
			"key", key,
		)
		return fmt.Errorf("gormStateRepository.Delete: %w", result.Error)
	}
	return nil
}

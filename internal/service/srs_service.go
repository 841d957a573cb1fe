// internal/service/srs_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"sort"
	"time"

	"go_5_vocab_path/internal/catalog"
	"go_5_vocab_path/internal/config"
	"go_5_vocab_path/internal/middleware"
	"go_5_vocab_path/internal/model"
	"go_5_vocab_path/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SrsService はレビューセッションの構築と進行を担います。
// 状態遷移は NoSession → Active → NoSession のみで、セッションは
// 途中再開のためだけに永続化され、終了・放棄時にレコードごと消えます
type SrsService interface {
	// StartSession は適格アイテムから新しいセッションを作ります。
	// 既存の未完了セッションは破棄されます
	StartSession(ctx context.Context) (*model.SrsSession, error)
	// CurrentSession は保存済みセッションを返します (無ければ ErrSessionNotFound)
	CurrentSession(ctx context.Context) (*model.SrsSession, error)
	// Advance は今日のレビューを記録しカーソルを進めます。
	// 末尾に達したらセッションは終了し finished=true を返します
	Advance(ctx context.Context) (*model.SrsSession, bool, error)
	// IgnoreCurrent はカーソル位置のアイテムを恒久除外し、列から取り除きます。
	// カーソルは進まず、次のアイテムが同じ位置に詰められます
	IgnoreCurrent(ctx context.Context) (*model.SrsSession, bool, error)
	// Abandon はセッションを黙って破棄します (未閲覧分のレビュー記録は残らない)
	Abandon(ctx context.Context) error
}

type srsService struct {
	db        *gorm.DB
	stateRepo repository.StateRepository
	cat       *catalog.Catalog
}

func NewSrsService(db *gorm.DB, stateRepo repository.StateRepository, cat *catalog.Catalog) SrsService {
	return &srsService{
		db:        db,
		stateRepo: stateRepo,
		cat:       cat,
	}
}

// loadSession は保存済みセッションを復元します。未保存・破損は ErrSessionNotFound
func loadSession(ctx context.Context, db *gorm.DB, stateRepo repository.StateRepository) (*model.SrsSession, error) {
	value, err := stateRepo.Load(ctx, db, config.SrsSessionRecordKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.SrsSession
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		logger := middleware.GetLogger(ctx)
		logger.Warn("Malformed srs session record, treating as no session", "error", err)
		return nil, model.ErrSessionNotFound
	}
	if len(session.Items) == 0 || session.Index < 0 || session.Index >= len(session.Items) {
		return nil, model.ErrSessionNotFound
	}
	return &session, nil
}

func saveSession(ctx context.Context, tx *gorm.DB, stateRepo repository.StateRepository, session *model.SrsSession) error {
	value, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return stateRepo.Save(ctx, tx, config.SrsSessionRecordKey, string(value))
}

// eligibleItems は完了済みレベルに属し、かつ除外されていないアイテムを
// カタログ順で集めます
func (s *srsService) eligibleItems(progress *model.Progress) []model.Item {
	levels := make([]int, 0, len(progress.CompletedLevels))
	for lvl := range progress.CompletedLevels {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)

	var items []model.Item
	for _, lvl := range levels {
		for _, item := range s.cat.ItemsForLevel(lvl) {
			if !progress.IgnoredItems[item.ID] {
				items = append(items, item)
			}
		}
	}
	return items
}

func (s *srsService) StartSession(ctx context.Context) (*model.SrsSession, error) {
	logger := middleware.GetLogger(ctx)

	var session *model.SrsSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := loadProgress(ctx, tx, s.stateRepo)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の読み込みに失敗しました。", "", err)
		}

		items := s.eligibleItems(progress)
		if len(items) == 0 {
			return model.NewAppError("NOT_FOUND", "復習対象のアイテムがありません。", "", model.ErrNotFound)
		}

		// 一様なランダム順列 (Fisher–Yates)。比較関数ベースの偏った
		// シャッフルは使わないこと
		rand.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})

		if limit := progress.Settings.SrsLimit; limit < config.UnboundedSrsLimit && limit < len(items) {
			items = items[:limit]
		}

		session = &model.SrsSession{
			SessionID: uuid.New(),
			Items:     items,
			Index:     0,
		}
		// 既存の未完了セッションがあればここで上書きされる
		if err := saveSession(ctx, tx, s.stateRepo, session); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("SRS session started",
		"session_id", session.SessionID.String(),
		"size", len(session.Items),
	)
	return session, nil
}

func (s *srsService) CurrentSession(ctx context.Context) (*model.SrsSession, error) {
	session, err := loadSession(ctx, s.db, s.stateRepo)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "進行中のセッションがありません。", "", model.ErrSessionNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの読み込みに失敗しました。", "", err)
	}
	return session, nil
}

func (s *srsService) Advance(ctx context.Context) (*model.SrsSession, bool, error) {
	var session *model.SrsSession
	finished := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		session, err = loadSession(ctx, tx, s.stateRepo)
		if err != nil {
			if errors.Is(err, model.ErrSessionNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "進行中のセッションがありません。", "", model.ErrSessionNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの読み込みに失敗しました。", "", err)
		}

		// カーソルを進める前に、表示したカードのレビューを今日の履歴に記録する
		progress, err := loadProgress(ctx, tx, s.stateRepo)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の読み込みに失敗しました。", "", err)
		}
		recordReview(progress, time.Now())
		if err := saveProgress(ctx, tx, s.stateRepo, progress); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の保存に失敗しました。", "", err)
		}

		session.Index++
		if session.Index >= len(session.Items) {
			// 終端状態。セッションレコードは破棄される
			finished = true
			if err := s.stateRepo.Delete(ctx, tx, config.SrsSessionRecordKey); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの破棄に失敗しました。", "", err)
			}
			return nil
		}
		if err := saveSession(ctx, tx, s.stateRepo, session); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if finished {
		return nil, true, nil
	}
	return session, false, nil
}

func (s *srsService) IgnoreCurrent(ctx context.Context) (*model.SrsSession, bool, error) {
	var session *model.SrsSession
	finished := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		session, err = loadSession(ctx, tx, s.stateRepo)
		if err != nil {
			if errors.Is(err, model.ErrSessionNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "進行中のセッションがありません。", "", model.ErrSessionNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの読み込みに失敗しました。", "", err)
		}

		current, ok := session.Current()
		if !ok {
			return model.NewAppError("SESSION_NOT_FOUND", "進行中のセッションがありません。", "", model.ErrSessionNotFound)
		}

		progress, err := loadProgress(ctx, tx, s.stateRepo)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の読み込みに失敗しました。", "", err)
		}
		progress.IgnoredItems[current.ID] = true
		if err := saveProgress(ctx, tx, s.stateRepo, progress); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の保存に失敗しました。", "", err)
		}

		// カーソルは進めずに列から取り除く。直後のアイテムが同じ位置に来る
		session.Items = append(session.Items[:session.Index], session.Items[session.Index+1:]...)
		if session.Index >= len(session.Items) {
			finished = true
			if err := s.stateRepo.Delete(ctx, tx, config.SrsSessionRecordKey); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの破棄に失敗しました。", "", err)
			}
			return nil
		}
		if err := saveSession(ctx, tx, s.stateRepo, session); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if finished {
		return nil, true, nil
	}
	return session, false, nil
}

func (s *srsService) Abandon(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.stateRepo.Delete(ctx, tx, config.SrsSessionRecordKey); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの破棄に失敗しました。", "", err)
		}
		return nil
	})
}

// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"go_5_vocab_path/internal/model"
)

// Catalog は起動時に一度だけ読み込まれる順序付きアイテム一覧です。
// レベルは保存されるエンティティではなく、IDレンジによる仮想的なグルーピング:
// レベルLは [(L-1)*K+1, L*K] のIDを持つアイテムを所有します。
type Catalog struct {
	itemsPerLevel int
	items         []model.Item
	maxItemID     int
}

// Load はカタログJSONファイルを読み込み検証します。読み込み失敗・検証失敗は
// 「カタログ利用不可」としてエラーを返します。空のカタログを黙って返すことは
// ありません (呼び出し側は起動を中断すべき)。
func Load(path string, itemsPerLevel int) (*Catalog, error) {
	if itemsPerLevel <= 0 {
		return nil, fmt.Errorf("%w: items per level must be positive, got %d", model.ErrCatalogUnavailable, itemsPerLevel)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", model.ErrCatalogUnavailable, path, err)
	}

	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", model.ErrCatalogUnavailable, path, err)
	}

	return New(items, itemsPerLevel)
}

// New はアイテム一覧からカタログを構築します。IDは1から始まる隙間のない連番で
// なければなりません (レベルレンジ計算がカタログを漏れなく分割できる条件)
func New(items []model.Item, itemsPerLevel int) (*Catalog, error) {
	if itemsPerLevel <= 0 {
		return nil, fmt.Errorf("%w: items per level must be positive, got %d", model.ErrCatalogUnavailable, itemsPerLevel)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", model.ErrCatalogUnavailable)
	}

	seen := make(map[int]bool, len(items))
	maxID := 0
	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("%w: item id must be positive, got %d", model.ErrCatalogUnavailable, it.ID)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: duplicate item id %d", model.ErrCatalogUnavailable, it.ID)
		}
		seen[it.ID] = true
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	if maxID != len(items) {
		return nil, fmt.Errorf("%w: item ids must be dense starting at 1 (max id %d, count %d)", model.ErrCatalogUnavailable, maxID, len(items))
	}

	// IDは隙間のない連番なので、ID順に並べておけば
	// レベルのIDレンジがそのままスライス範囲になる
	ordered := make([]model.Item, len(items))
	for _, it := range items {
		ordered[it.ID-1] = it
	}

	return &Catalog{
		itemsPerLevel: itemsPerLevel,
		items:         ordered,
		maxItemID:     maxID,
	}, nil
}

// ItemsPerLevel は1レベルあたりのアイテム数Kを返します
func (c *Catalog) ItemsPerLevel() int {
	return c.itemsPerLevel
}

// Len はアイテム総数を返します
func (c *Catalog) Len() int {
	return len(c.items)
}

// MaxLevel は最終レベル番号 ceil(maxItemId / K) を返します
func (c *Catalog) MaxLevel() int {
	return (c.maxItemID + c.itemsPerLevel - 1) / c.itemsPerLevel
}

// ItemsForLevel はレベルのIDレンジに含まれるアイテムをID順で返します。
// 範囲外のレベルに対しては空スライスを返します
func (c *Catalog) ItemsForLevel(level int) []model.Item {
	if level < 1 {
		return nil
	}
	start := (level - 1) * c.itemsPerLevel
	if start >= len(c.items) {
		return nil
	}
	end := start + c.itemsPerLevel
	if end > len(c.items) {
		end = len(c.items)
	}
	return c.items[start:end]
}

// internal/catalog/catalog_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"go_5_vocab_path/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []model.Item {
	items := make([]model.Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, model.Item{ID: i, Front: "front", Back: "back"})
	}
	return items
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		items         []model.Item
		itemsPerLevel int
		wantErr       bool
		wantMaxLevel  int
	}{
		{
			name:          "正常系: K=5で10アイテム",
			items:         makeItems(10),
			itemsPerLevel: 5,
			wantMaxLevel:  2,
		},
		{
			name:          "正常系: 最終レベルは端数でも良い",
			items:         makeItems(7),
			itemsPerLevel: 3,
			wantMaxLevel:  3,
		},
		{
			name:          "異常系: 空のカタログ",
			items:         nil,
			itemsPerLevel: 5,
			wantErr:       true,
		},
		{
			name:          "異常系: レベルあたりのアイテム数が不正",
			items:         makeItems(3),
			itemsPerLevel: 0,
			wantErr:       true,
		},
		{
			name:          "異常系: IDの重複",
			items:         []model.Item{{ID: 1}, {ID: 1}},
			itemsPerLevel: 5,
			wantErr:       true,
		},
		{
			name:          "異常系: IDに穴がある",
			items:         []model.Item{{ID: 1}, {ID: 3}},
			itemsPerLevel: 5,
			wantErr:       true,
		},
		{
			name:          "異常系: IDが正でない",
			items:         []model.Item{{ID: 0}},
			itemsPerLevel: 5,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := New(tt.items, tt.itemsPerLevel)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrCatalogUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMaxLevel, cat.MaxLevel())
			assert.Equal(t, len(tt.items), cat.Len())
		})
	}
}

func TestCatalog_ItemsForLevel(t *testing.T) {
	cat, err := New(makeItems(7), 3)
	require.NoError(t, err)

	level1 := cat.ItemsForLevel(1)
	require.Len(t, level1, 3)
	assert.Equal(t, 1, level1[0].ID)
	assert.Equal(t, 3, level1[2].ID)

	level2 := cat.ItemsForLevel(2)
	require.Len(t, level2, 3)
	assert.Equal(t, 4, level2[0].ID)

	// 最終レベルは端数になる
	level3 := cat.ItemsForLevel(3)
	require.Len(t, level3, 1)
	assert.Equal(t, 7, level3[0].ID)

	// 範囲外のレベル
	assert.Empty(t, cat.ItemsForLevel(0))
	assert.Empty(t, cat.ItemsForLevel(4))
}

func TestCatalog_ItemsForLevel_UnorderedInput(t *testing.T) {
	// 入力の並び順に関わらず、レベル内のアイテムはID順で返る
	items := []model.Item{
		{ID: 3, Front: "c"},
		{ID: 1, Front: "a"},
		{ID: 4, Front: "d"},
		{ID: 2, Front: "b"},
	}
	cat, err := New(items, 2)
	require.NoError(t, err)

	level1 := cat.ItemsForLevel(1)
	require.Len(t, level1, 2)
	assert.Equal(t, 1, level1[0].ID)
	assert.Equal(t, 2, level1[1].ID)

	level2 := cat.ItemsForLevel(2)
	require.Len(t, level2, 2)
	assert.Equal(t, 3, level2[0].ID)
	assert.Equal(t, 4, level2[1].ID)
}

func TestLoad(t *testing.T) {
	t.Run("正常系: JSONファイルから読み込み", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		data := `[
			{"id": 1, "front": "dom", "back": "дом", "example": "To jest dom."},
			{"id": 2, "front": "kot", "back": "кот"}
		]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cat, err := Load(path, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, cat.Len())
		assert.Equal(t, 1, cat.MaxLevel())

		items := cat.ItemsForLevel(1)
		require.Len(t, items, 2)
		assert.Equal(t, "To jest dom.", items[0].Sentence())
		// example未設定の場合はfrontが例文になる
		assert.Equal(t, "kot", items[1].Sentence())
	})

	t.Run("異常系: ファイルが存在しない", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"), 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrCatalogUnavailable)
	})

	t.Run("異常系: JSONが壊れている", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := Load(path, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrCatalogUnavailable)
	})
}

// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "VocabPath"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort    = ":8080"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	DefaultDatabaseURL   = "data/vocab_path.db"
	DefaultCatalogPath   = "data/catalog.json"
	DefaultItemsPerLevel = 5
)

// SRSセッション関連の定数
const (
	// デフォルトのセッション上限 (カード枚数)
	DefaultSrsLimit = 10
	// 「無制限」を表す番兵値。永続化形式もこの値 (画面上は "all" と表示する)
	UnboundedSrsLimit = 9999999
	// 無制限を表すAPI上の文字列表現
	UnboundedSrsLimitLabel = "all"
)

// 文章の段階的公開で使うマスク文字
const MaskGlyph = "*"

// 永続化レコードのキー
const (
	ProgressRecordKey   = "progress"
	SrsSessionRecordKey = "srs_session"
)

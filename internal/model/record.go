// internal/model/record.go
package model

import "time"

// StateRecord はキー・バリュー形式の永続化ポートの1行です。
// 値は各集約をJSONシリアライズしたもの (キー: progress / srs_session)
type StateRecord struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (StateRecord) TableName() string {
	return "state_records"
}

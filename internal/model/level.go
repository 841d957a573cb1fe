// internal/model/level.go
package model

// PathLevel はパス画面の1レベル分の表示状態
type PathLevel struct {
	Level     int  `json:"level"`
	Completed bool `json:"completed"`
	// NextAvailableLevel 以下なら遷移可能
	Available bool `json:"available"`
}

// PathResponse はパス画面全体のDTO。空レベルは含まれない
type PathResponse struct {
	Levels             []PathLevel `json:"levels"`
	NextAvailableLevel int         `json:"next_available_level"`
	SrsLimit           string      `json:"srs_limit"`
}

// LevelItemsResponse はレベル内アイテム一覧のDTO
type LevelItemsResponse struct {
	Level     int    `json:"level"`
	Completed bool   `json:"completed"`
	Items     []Item `json:"items"`
}

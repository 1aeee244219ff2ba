package models

// InvalidRow is a CSV row that failed validation during ingest. Kept
// around so the dashboard can show what was rejected and why. The CSV
// header counts as row 1, so data rows start at 2.
type InvalidRow struct {
	ID        uint   `gorm:"primarykey" json:"-"`
	RowNumber int    `gorm:"not null" json:"row_number"`
	RawRow    JSON   `gorm:"type:jsonb" json:"raw_row"`
	Error     string `gorm:"not null" json:"error"`
}

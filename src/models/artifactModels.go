package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is stored as a JSON-encoded text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// ArtifactModel is catalogue reference data: created by the seeder or the
// Excel importer, never mutated through the public API.
type ArtifactModel struct {
	ID              int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string     `json:"title" gorm:"type:varchar(255);not null"`
	Category        string     `json:"category" gorm:"type:varchar(100)"`
	Period          string     `json:"period" gorm:"type:varchar(100)"`
	Culture         string     `json:"culture" gorm:"type:varchar(100)"`
	Material        string     `json:"material" gorm:"type:varchar(100)"`
	Dimensions      string     `json:"dimensions" gorm:"type:varchar(100)"`
	Location        string     `json:"location" gorm:"type:varchar(255)"`
	Description     string     `json:"description" gorm:"type:text"`
	Provenance      string     `json:"provenance" gorm:"type:text"`
	Significance    string     `json:"significance" gorm:"type:text"`
	ImageURL        string     `json:"imageUrl" gorm:"type:varchar(255)"`
	AccessionNumber string     `json:"accessionNumber" gorm:"type:varchar(50);uniqueIndex"`
	DateAcquired    string     `json:"dateAcquired" gorm:"type:varchar(20)"`
	Condition       string     `json:"condition" gorm:"type:varchar(100)"`
	Exhibitions     StringList `json:"exhibitions" gorm:"type:text"`
	Bibliography    StringList `json:"bibliography" gorm:"type:text"`
}

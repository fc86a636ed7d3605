package models

const LocationsTableName = "locations"

// Location is read-only reference data; only the import job writes this table.
type Location struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Zipcode    string  `gorm:"index;not null" json:"zipcode"`
	City       string  `gorm:"index;not null" json:"city"`
	Lat        float64 `gorm:"column:lat" json:"lat"`
	Long       float64 `gorm:"column:long" json:"long"`
	Population int64   `json:"population"`
}

func (Location) TableName() string {
	return LocationsTableName
}

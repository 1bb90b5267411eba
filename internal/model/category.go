package model

// Category groups products under a unique label.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

func (Category) TableName() string { return "categories" }

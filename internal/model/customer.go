package model

// Customer is a buyer that can place orders.
type Customer struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:255;not null"`
	Email string `json:"email" gorm:"size:255;not null;uniqueIndex"`
}

func (Customer) TableName() string { return "customers" }

// Order is a purchase placed by a customer.
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"column:customer_id;not null;index"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

package model

// SedeProductAssociation holds how many units of a product exist at a sede.
// The composite primary key enforces at most one row per (sede, product)
// pair, so aggregate stock can never be double-counted by duplicate rows.
type SedeProductAssociation struct {
	SedeID      uint `gorm:"primaryKey;autoIncrement:false"`
	ProductID   uint `gorm:"primaryKey;autoIncrement:false"`
	StockAtSede int  `gorm:"not null;default:0"`

	Sede    *Sede    `gorm:"foreignKey:SedeID"`
	Product *Product `gorm:"foreignKey:ProductID"`
}

func (SedeProductAssociation) TableName() string { return "sede_product_associations" }

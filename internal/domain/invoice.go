package domain

import (
	"fmt"
	"math"
	"time"
)

type InvoiceItem struct {
	Description string  `json:"descripcion"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precioUnitario"`
	Total       float64 `json:"total"`
}

type Invoice struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	PaymentID int64         `json:"pagoId" gorm:"column:payment_id;uniqueIndex;not null"`
	Sequence  int64         `json:"-" gorm:"column:sequence;uniqueIndex;not null"`
	Number    string        `json:"numero" gorm:"column:number;uniqueIndex;size:32;not null"`
	Subtotal  float64       `json:"subtotal" gorm:"column:subtotal;not null"`
	Tax       float64       `json:"impuesto" gorm:"column:tax;not null"`
	Total     float64       `json:"total" gorm:"column:total;not null"`
	Items     []InvoiceItem `json:"items" gorm:"column:items;serializer:json"`
	IssuedAt  time.Time     `json:"fechaEmision" gorm:"column:issued_at;not null"`
	CreatedAt time.Time     `json:"createdAt"`

	Payment *Payment `json:"pago,omitempty" gorm:"foreignKey:PaymentID"`
}

func (Invoice) TableName() string { return "invoices" }

// FormatInvoiceNumber renders sequence 12 with prefix FAC as FAC-000012.
func FormatInvoiceNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%06d", prefix, seq)
}

// SplitTaxInclusive splits a tax-inclusive total into subtotal and tax so that
// subtotal + tax == total to the cent.
func SplitTaxInclusive(total, rate float64) (subtotal, tax float64) {
	total = math.Round(total*100) / 100
	subtotal = math.Round(total/(1+rate)*100) / 100
	tax = math.Round((total-subtotal)*100) / 100
	return subtotal, tax
}

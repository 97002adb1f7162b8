package domain

import "time"

type ContactStatus string

const (
	ContactNew      ContactStatus = "NUEVO"
	ContactRead     ContactStatus = "LEIDO"
	ContactReplied  ContactStatus = "RESPONDIDO"
	ContactArchived ContactStatus = "ARCHIVADO"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactRead, ContactReplied, ContactArchived:
		return true
	}
	return false
}

type Contact struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Name      string        `json:"nombre" gorm:"column:name;not null"`
	Email     string        `json:"email" gorm:"column:email;not null"`
	Phone     string        `json:"telefono,omitempty" gorm:"column:phone"`
	Subject   string        `json:"asunto" gorm:"column:subject;not null"`
	Message   string        `json:"mensaje" gorm:"column:message;type:text;not null"`
	Status    ContactStatus `json:"estado" gorm:"column:status;type:varchar(20);index;not null"`
	Reply     string        `json:"respuesta,omitempty" gorm:"column:reply;type:text"`
	RepliedAt *time.Time    `json:"respondidoAt,omitempty" gorm:"column:replied_at"`
	RepliedBy *int64        `json:"respondidoPor,omitempty" gorm:"column:replied_by"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (Contact) TableName() string { return "contacts" }

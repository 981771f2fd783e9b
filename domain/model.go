package domain

import "time"

type PassageType string

const (
	PassageSalmos    PassageType = "salmos"
	PassageOracao    PassageType = "oracao"
	PassageVersiculo PassageType = "versiculo"
)

// MessageRecord is one persisted voice message. Rows are created once and never
// updated or deleted; AudioURL is always set before the row is inserted.
type MessageRecord struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	ShareID       string    `gorm:"column:share_id;type:uuid;uniqueIndex" json:"share_id"`
	Message       string    `gorm:"column:message" json:"message"`
	SenderName    string    `gorm:"column:sender_name" json:"sender_name"`
	ReceiverName  string    `gorm:"column:receiver_name" json:"receiver_name"`
	PhoneNumber   string    `gorm:"column:phone_number" json:"phone_number"`
	GeneratedText string    `gorm:"column:generated_text" json:"generated_text"`
	AudioURL      string    `gorm:"column:audio_url" json:"audio_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MessageRecord) TableName() string {
	return "messages"
}

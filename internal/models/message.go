package models

import "time"

// Message - сообщение координационного канала, только добавление (без обновления и удаления)
type Message struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	SenderID    string    `json:"sender_id,omitempty"`
	IncidentID  string    `json:"incident_id,omitempty"`
	IsEmergency bool      `json:"is_emergency"`
	CreatedAt   time.Time `json:"created_at"`
}

// MessageWithUser - сообщение, обогащенное полной идентичностью отправителя
type MessageWithUser struct {
	Message
	Sender *UserSummary `json:"sender,omitempty"`
}

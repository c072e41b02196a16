package domain

import (
	"time"
)

// ContactMessage representa uma mensagem enviada pelo formulário de contato
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=4000"`
}

// ContactReceipt é a confirmação devolvida ao remetente após o encaminhamento
type ContactReceipt struct {
	ID     string    `json:"id"`
	SentAt time.Time `json:"sent_at"`
}

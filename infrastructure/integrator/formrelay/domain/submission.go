package domain

// Submission é o payload enviado ao endpoint AJAX do FormSubmit.
// Os campos com prefixo "_" são opções do serviço, não dados do remetente.
type Submission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Subject  string `json:"_subject"`
	Captcha  string `json:"_captcha"`
	Template string `json:"_template"`
}

// RelayResponse é a resposta do FormSubmit; Success vem como string ("true"/"false")
type RelayResponse struct {
	Success string `json:"success"`
	Message string `json:"message"`
}

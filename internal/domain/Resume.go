package domain

// Resume representa o currículo em PDF servido pela aplicação.
// Quando o arquivo local não existe, Available é falso e PublicURL
// aponta para a cópia pública do documento.
type Resume struct {
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
	PublicURL string `json:"public_url,omitempty"`
	Available bool   `json:"available"`
	Content   []byte `json:"-"`
}

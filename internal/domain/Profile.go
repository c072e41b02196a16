package domain

// Profile representa os dados pessoais exibidos na página inicial do portfólio
type Profile struct {
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Location   string      `json:"location"`
	About      string      `json:"about"`
	Links      []Link      `json:"links"`
	Highlights []Highlight `json:"highlights"`
}

// Link é um link externo do perfil (LinkedIn, GitHub, email)
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Highlight é um indicador exibido em destaque na página inicial
type Highlight struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Project representa um estudo de caso do portfólio
type Project struct {
	Title    string   `json:"title"`
	Role     string   `json:"role"`
	Stack    []string `json:"stack"`
	Summary  string   `json:"summary"`
	Impact   string   `json:"impact"`
	Links    []Link   `json:"links,omitempty"`
	Featured bool     `json:"featured"`
}

// SkillGroup agrupa habilidades por categoria para a página de currículo
type SkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

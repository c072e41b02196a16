package profiling

import (
	"github.com/E-man85/portfolio-api/internal/domain"
)

// ContentProvider define a interface de leitura do conteúdo estático do portfólio
type ContentProvider interface {
	Profile() *domain.Profile
	Projects() []*domain.Project
	Skills() []domain.SkillGroup
}

// Service serve o conteúdo do portfólio. O conteúdo é compilado na aplicação
// e imutável durante a sessão; não há persistência nem edição.
type Service struct {
	profile  *domain.Profile
	projects []*domain.Project
	skills   []domain.SkillGroup
}

// NewService cria o provedor de conteúdo com os dados do portfólio
func NewService() ContentProvider {
	return &Service{
		profile:  defaultProfile(),
		projects: defaultProjects(),
		skills:   defaultSkills(),
	}
}

func (s *Service) Profile() *domain.Profile {
	return s.profile
}

func (s *Service) Projects() []*domain.Project {
	return s.projects
}

func (s *Service) Skills() []domain.SkillGroup {
	return s.skills
}

func defaultProfile() *domain.Profile {
	return &domain.Profile{
		Name:     "Emanuel Gomes",
		Title:    "Data Analyst · Data Scientist",
		Location: "Porto, PT",
		About:    "I transform data into actionable insights and automated solutions that empower businesses to decide faster and work smarter.",
		Links: []domain.Link{
			{Label: "LinkedIn", URL: "https://linkedin.com/in/emanuel-gomes-001b16108"},
			{Label: "GitHub", URL: "https://github.com/E-man85"},
			{Label: "Email", URL: "mailto:eman-gomes@hotmail.com"},
		},
		Highlights: []domain.Highlight{
			{Label: "Years of experience", Value: "5"},
			{Label: "Projects shipped", Value: "12"},
			{Label: "Tech I use", Value: "Python · SQL · Power BI"},
		},
	}
}

func defaultProjects() []*domain.Project {
	return []*domain.Project{
		{
			Title:    "Optimising OOH placement with POIs and reach modelling",
			Role:     "Lead Data Analyst",
			Stack:    []string{"Python", "Pandas", "GeoPandas", "scikit-learn", "Streamlit"},
			Summary:  "Scored locations by proximity to business POIs (SME decision-makers) and modelled reach vs. cost to propose an optimal network.",
			Impact:   "-12% cost for the same reach; faster planning cycle.",
			Featured: true,
			Links: []domain.Link{
				{Label: "View code", URL: "https://github.com"},
				{Label: "Open notebook", URL: "https://github.com"},
			},
		},
		{
			Title:   "Mobility insights with TomTom Traffic Stats",
			Role:    "Data Analyst",
			Stack:   []string{"Python", "Pandas", "Plotly", "GeoJSON"},
			Summary: "Analysed peak times and corridors in Matosinhos to inform placement decisions and campaign pacing.",
			Impact:  "Identified 3 prime corridors; +8% uplift in uniques.",
		},
		{
			Title:   "Forecasting inventory occupancy (OOH)",
			Role:    "Data Scientist (post-grad)",
			Stack:   []string{"Python", "scikit-learn", "pandas"},
			Summary: "Built a simple baseline model to forecast weekly occupancy and guide pricing.",
			Impact:  "Baseline adopted as reference for pricing reviews.",
		},
	}
}

func defaultSkills() []domain.SkillGroup {
	return []domain.SkillGroup{
		{
			Name:   "Data",
			Skills: []string{"Python (pandas, numpy)", "SQL", "Power BI / DAX", "Linguagem M"},
		},
		{
			Name:   "ML",
			Skills: []string{"scikit-learn", "Forecasting", "Model evaluation"},
		},
		{
			Name:   "Other",
			Skills: []string{"Git & GitHub", "Streamlit", "Geospatial (GeoPandas)"},
		},
	}
}

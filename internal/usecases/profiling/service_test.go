package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Profile(t *testing.T) {
	service := NewService()

	profile := service.Profile()
	require.NotNil(t, profile)

	assert.Equal(t, "Emanuel Gomes", profile.Name)
	assert.Equal(t, "Porto, PT", profile.Location)
	assert.Len(t, profile.Links, 3)
	assert.Len(t, profile.Highlights, 3)
}

func TestService_Projects(t *testing.T) {
	service := NewService()

	projects := service.Projects()
	require.Len(t, projects, 3)

	// O primeiro estudo de caso é o destacado na página inicial
	assert.True(t, projects[0].Featured)
	for _, project := range projects {
		assert.NotEmpty(t, project.Title)
		assert.NotEmpty(t, project.Role)
		assert.NotEmpty(t, project.Stack)
		assert.NotEmpty(t, project.Summary)
	}
}

func TestService_Skills(t *testing.T) {
	service := NewService()

	skills := service.Skills()
	require.Len(t, skills, 3)

	names := make([]string, 0, len(skills))
	for _, group := range skills {
		names = append(names, group.Name)
		assert.NotEmpty(t, group.Skills)
	}
	assert.Equal(t, []string{"Data", "ML", "Other"}, names)
}

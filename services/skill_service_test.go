package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms/mocks"
	"portfolio-cms/models"
	"portfolio-cms/services"
)

func TestSkillCategoryAppendsAfterHighestOrder(t *testing.T) {
	repo := mocks.NewMockSkillCategoryRepository()
	svc := services.NewSkillCategoryService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, models.SkillCategoryRequest{Name: "Programming", Icon: "Code"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.DisplayOrder)

	pinned := 7
	_, err = svc.Create(ctx, models.SkillCategoryRequest{Name: "Databases", DisplayOrder: &pinned})
	require.NoError(t, err)

	next, err := svc.Create(ctx, models.SkillCategoryRequest{Name: "Frameworks", Icon: "none"})
	require.NoError(t, err)
	assert.Equal(t, 8, next.DisplayOrder)
	assert.Empty(t, next.Icon)
}

func TestSkillIconsAreChecked(t *testing.T) {
	svc := services.NewSkillService(&mocks.MockCollection[models.Skill]{})
	ctx := context.Background()

	_, err := svc.Create(ctx, models.SkillRequest{Category: "Programming", Name: "Go", Icon: "NotAnIcon"})
	assert.IsType(t, models.ErrorValidation{}, err)

	skill, err := svc.Create(ctx, models.SkillRequest{Category: " Programming ", Name: "Go", Icon: "Code"})
	require.NoError(t, err)
	assert.Equal(t, "Programming", skill.Category)
	assert.Equal(t, "Code", skill.Icon)
}

func TestEducationStatusIsChecked(t *testing.T) {
	svc := services.NewEducationService(&mocks.MockCollection[models.Education]{})
	ctx := context.Background()

	_, err := svc.Create(ctx, models.EducationRequest{Course: "BSc", Institution: "Uni", Status: "Dropped"})
	assert.IsType(t, models.ErrorValidation{}, err)

	row, err := svc.Create(ctx, models.EducationRequest{Course: "BSc", Institution: "Uni", Status: models.EducationInProgress})
	require.NoError(t, err)
	assert.Equal(t, models.EducationInProgress, row.Status)
}

func TestContactIconsAndUsername(t *testing.T) {
	svc := services.NewContactService(&mocks.MockCollection[models.Contact]{})
	ctx := context.Background()

	blank := "   "
	contact, err := svc.Create(ctx, models.ContactRequest{Platform: "Email", Value: "me@example.com", Username: &blank, Icon: "Mail"})
	require.NoError(t, err)
	assert.Nil(t, contact.Username)

	_, err = svc.Create(ctx, models.ContactRequest{Platform: "Email", Value: "me@example.com", Icon: "Code"})
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestProjectTechnologiesNeverNil(t *testing.T) {
	svc := services.NewProjectService(&mocks.MockCollection[models.Project]{})

	project, err := svc.Create(context.Background(), models.ProjectRequest{Title: "CMS", Description: "d", Technologies: []string{" Go ", ""}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, []string(project.Technologies))

	empty, err := svc.Create(context.Background(), models.ProjectRequest{Title: "Empty", Description: "d"})
	require.NoError(t, err)
	assert.NotNil(t, empty.Technologies)
}

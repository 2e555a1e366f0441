package catalog_test

import (
	"testing"

	"github.com/fwojciec/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		note        string
		wantKind    catalog.RequirementKind
		wantPayload string
	}{
		{"prerequisite", "Prerequisite: MATH 133, MATH 140", catalog.RequirementPrerequisite, "MATH 133, MATH 140"},
		{"plural with (s)", "Prerequisite(s): COMP 202", catalog.RequirementPrerequisite, "COMP 202"},
		{"plural", "Prerequisites: COMP 250", catalog.RequirementPrerequisite, "COMP 250"},
		{"hyphenated", "Pre-requisite - MATH 141", catalog.RequirementPrerequisite, "MATH 141"},
		{"lowercase", "corequisite: MATH 133", catalog.RequirementCorequisite, "MATH 133"},
		{"corequisite", "Corequisite: MATH 133.", catalog.RequirementCorequisite, "MATH 133."},
		{"restriction", "Restriction: Not open to students who have taken MATH 235.", catalog.RequirementRestriction, "Not open to students who have taken MATH 235."},
		{"uppercase", "RESTRICTIONS: Honours students only.", catalog.RequirementRestriction, "Honours students only."},
		{"unrecognized", "Offered in alternate years.", catalog.RequirementUnrecognized, "Offered in alternate years."},
		{"label in the middle", "See prerequisite list.", catalog.RequirementUnrecognized, "See prerequisite list."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := catalog.ClassifyNote(tt.note)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantPayload, got.Payload)
		})
	}
}

func TestRequirementKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "prerequisite", catalog.RequirementPrerequisite.String())
	assert.Equal(t, "corequisite", catalog.RequirementCorequisite.String())
	assert.Equal(t, "restriction", catalog.RequirementRestriction.String())
	assert.Equal(t, "unrecognized", catalog.RequirementUnrecognized.String())
}

func TestParseCourseCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		payload string
		want    []string
	}{
		{"MATH 133, MATH 140", []string{"MATH 133", "MATH 140"}},
		{"MATH 133 and MATH 140; COMP 202", []string{"MATH 133", "MATH 140", "COMP 202"}},
		{"AERO 460D1 or AERO 460D2", []string{"AERO 460D1", "AERO 460D2"}},
		{"MATH  133,MATH 133", []string{"MATH 133", "MATH 133"}},
		{"permission of the instructor", nil},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, catalog.ParseCourseCodes(tt.payload))
		})
	}
}

func TestParseRequirements(t *testing.T) {
	t.Parallel()

	t.Run("sorts notes into prerequisites and corequisites", func(t *testing.T) {
		t.Parallel()

		got := catalog.ParseRequirements([]string{
			"Prerequisite: MATH 133, MATH 140",
			"Corequisite: MATH 133",
		})

		assert.Equal(t, []string{"MATH 133", "MATH 140"}, got.Prerequisites)
		assert.Equal(t, []string{"MATH 133"}, got.Corequisites)
		assert.Nil(t, got.Restrictions)
	})

	t.Run("concatenates restriction notes in order", func(t *testing.T) {
		t.Parallel()

		got := catalog.ParseRequirements([]string{
			"Restriction: For students in Computer Science programs.",
			"Offered by the Department of Mathematics.",
			"Restriction: Not open to students who have taken MATH 235.",
		})

		require.NotNil(t, got.Restrictions)
		assert.Equal(t, "For students in Computer Science programs. Not open to students who have taken MATH 235.", *got.Restrictions)
		assert.Empty(t, got.Prerequisites)
		assert.Empty(t, got.Corequisites)
	})

	t.Run("unrecognized notes contribute nothing", func(t *testing.T) {
		t.Parallel()

		got := catalog.ParseRequirements([]string{"Fall and Winter", "3 hours lecture"})

		assert.Equal(t, catalog.Requirements{}, got)
	})

	t.Run("no notes yields empty requirements", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, catalog.Requirements{}, catalog.ParseRequirements(nil))
	})
}

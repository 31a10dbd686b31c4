package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSkills(t *testing.T) {
	skills := DefaultSkills()
	require.Len(t, skills, 4)

	byID := make(map[string]*Skill)
	for _, s := range skills {
		assert.True(t, s.Ready)
		byID[s.ID] = s
	}

	ps := byID["power_strike"]
	require.NotNil(t, ps)
	assert.Equal(t, 5, ps.UnlockLevel)
	assert.Equal(t, 1.4, ps.Multiplier)
	assert.Equal(t, 10, ps.ManaCost)
	assert.Equal(t, 5*time.Second, ps.Cooldown)

	ds := byID["divine_smite"]
	require.NotNil(t, ds)
	assert.Equal(t, 30, ds.UnlockLevel)
	assert.Equal(t, 2.8, ds.Multiplier)
}

func TestDefaultSkillsIndependentCopies(t *testing.T) {
	a := DefaultSkills()
	a[0].Ready = false

	b := DefaultSkills()
	assert.True(t, b[0].Ready)
}

func TestCloneSkills(t *testing.T) {
	original := DefaultSkills()
	cloned := CloneSkills(original)

	cloned[0].Ready = false
	assert.True(t, original[0].Ready)
}

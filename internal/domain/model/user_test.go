package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRole_In(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		allowed  []Role
		expected bool
	}{
		{name: "admin allowed for admin routes", role: RoleAdmin, allowed: []Role{RoleAdmin}, expected: true},
		{name: "laborer denied for admin routes", role: RoleLaborer, allowed: []Role{RoleAdmin}, expected: false},
		{name: "laborer allowed when listed", role: RoleLaborer, allowed: []Role{RoleAdmin, RoleLaborer}, expected: true},
		{name: "any valid role when nothing listed", role: RoleLaborer, allowed: nil, expected: true},
		{name: "unknown role always denied", role: Role("engineer"), allowed: nil, expected: false},
		{name: "empty role denied", role: Role(""), allowed: []Role{RoleAdmin}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.In(tt.allowed...))
		})
	}
}

func TestJob_AssignedTo(t *testing.T) {
	owner := primitive.NewObjectID()
	job := &Job{User: owner.Hex()}

	assert.True(t, job.AssignedTo(owner))
	assert.False(t, job.AssignedTo(primitive.NewObjectID()))
}

func TestJobUpdate_Empty(t *testing.T) {
	done := true

	assert.True(t, JobUpdate{}.Empty())
	assert.False(t, JobUpdate{IsComplete: &done}.Empty())
}

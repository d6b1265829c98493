package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleLearner = "learner"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Name                   string `gorm:"not null"`
	Email                  string `gorm:"unique;not null"`
	PasswordHash           string `gorm:"not null" json:"-"`
	Role                   string `gorm:"default:learner"` // learner, admin
	Phone                  string
	Address                string
	FinancialLiteracyLevel string                      `gorm:"default:Beginner"`
	TechSkills             datatypes.JSONSlice[string] `gorm:"type:json"`
	JobPreferences         datatypes.JSONSlice[string] `gorm:"type:json"`
	Progress               int                         `gorm:"default:0"` // overall progress percentage
	CoursesCompleted       datatypes.JSONSlice[uint]   `gorm:"type:json"` // Course IDs, no FK
}

// HasCompleted reports whether courseID is already in the completed set.
func (u *User) HasCompleted(courseID uint) bool {
	for _, id := range u.CoursesCompleted {
		if id == courseID {
			return true
		}
	}
	return false
}

// CompleteCourse appends courseID to the completed set if absent and
// reports whether the set changed.
func (u *User) CompleteCourse(courseID uint) bool {
	if u.HasCompleted(courseID) {
		return false
	}
	u.CoursesCompleted = append(u.CoursesCompleted, courseID)
	return true
}

package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"not null"` // finance, tech
	Level       string `gorm:"not null"` // beginner, intermediate, advanced
	Modules     []Module
}

type Module struct {
	gorm.Model
	CourseID      uint
	Title         string `gorm:"not null"`
	ContentURL    string `gorm:"not null"` // link to video or text
	Type          string `gorm:"not null"` // video, text, quiz
	SequenceOrder int
}

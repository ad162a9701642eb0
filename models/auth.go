package models

type UserRole string

const (
	RoleDirector UserRole = "director"
)

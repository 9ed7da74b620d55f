package constants

const (
	TagNameMaxLength        = 100
	TagDescriptionMaxLength = 255
)

const PasswordMinLength = 6

const (
	ListDefaultPage     = 1
	ListDefaultPageSize = 10
	ListMaxPageSize     = 50
)

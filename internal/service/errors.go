package service

import "errors"

var (
	// ErrEmergencyNotFound - вызов с таким id не существует
	ErrEmergencyNotFound = errors.New("emergency not found")

	// ErrStaleDecision - claim пришел, когда вызов уже покинул PENDING_OWNERSHIP.
	// Окончательный отказ, вызывающая сторона не должна повторять попытку.
	ErrStaleDecision = errors.New("emergency already left pending ownership")

	// ErrDecisionWindowOpen - попытка применить дефолт до истечения дедлайна
	ErrDecisionWindowOpen = errors.New("decision window has not expired yet")

	// ErrInvalidEmergencyFor - claim обязан выбрать SELF или OTHER
	ErrInvalidEmergencyFor = errors.New("emergency_for must be SELF or OTHER")
)

package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidColumn is returned when an invalid column is provided.
	ErrInvalidColumn = errors.New("invalid column")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidEstimate is returned when an estimate is not positive.
	ErrInvalidEstimate = errors.New("estimate must be a positive integer")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateColumn checks if the column is one of the five stages.
func ValidateColumn(column Column) error {
	if !column.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}
	return nil
}

// ValidatePriority checks if the priority is one of the three levels.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	return nil
}

// ValidateEstimate checks an estimate value; zero means unset.
func ValidateEstimate(estimate int) error {
	if estimate < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidEstimate, estimate)
	}
	return nil
}

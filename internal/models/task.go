package models

import "time"

const (
	// DateLayout is how a task's creation date is stored and shown.
	DateLayout = "January 02, 2006"
	// TimeLayout is how a task's start and end are stored and shown.
	TimeLayout = "January 02, 2006 | 15:04"
	// InputTimeLayout is the layout of a datetime-local form field.
	InputTimeLayout = "2006-01-02T15:04"
)

type Task struct {
	ID        int64   `db:"id"`
	UserID    int64   `db:"user_id"`
	Text      string  `db:"task"`
	Date      string  `db:"date"`
	Start     *string `db:"start_time"`
	End       *string `db:"end_time"`
	Completed bool    `db:"completed"`
	Details   *string `db:"details"`
	Everyday  bool    `db:"everyday"`
	AllDay    bool    `db:"all_day"`
}

// HasTimeRange reports whether both start and end are set.
func (t *Task) HasTimeRange() bool {
	return t.Start != nil && t.End != nil
}

// InputStart returns the start in InputTimeLayout, or "" if it is unset.
func (t *Task) InputStart() string {
	return inputTime(t.Start)
}

// InputEnd returns the end in InputTimeLayout, or "" if it is unset.
func (t *Task) InputEnd() string {
	return inputTime(t.End)
}

func inputTime(value *string) string {
	if value == nil {
		return ""
	}
	ts, err := time.Parse(TimeLayout, *value)
	if err != nil {
		return ""
	}
	return ts.Format(InputTimeLayout)
}

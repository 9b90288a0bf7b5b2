package tui

// OutlineCopiedMsg reports a successful clipboard copy of the form outline.
type OutlineCopiedMsg struct {
	Lines int
}

// ErrorMsg surfaces a failed side effect in the status line.
type ErrorMsg struct {
	Err error
}

// ClearNoticeMsg clears the status line if it still shows notice number Seq.
type ClearNoticeMsg struct {
	Seq int
}

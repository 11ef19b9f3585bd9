package vetro

// ListAction represents user actions that can occur within a list component.
type ListAction int

const (
	ListActionSelected  ListAction = iota // User selected an item (A button)
	ListActionTriggered                   // User triggered the action button (X button)
	ListActionConfirmed                   // User confirmed with Start
)

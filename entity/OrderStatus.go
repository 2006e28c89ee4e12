package entity

// Order lifecycle. Transitions are merchant actions only; completed and
// cancelled are terminal.
const (
	StatusPendingConfirmation = "pending_messenger_confirmation"
	StatusConfirmed           = "confirmed"
	StatusInProgress          = "in_progress"
	StatusCompleted           = "completed"
	StatusCancelled           = "cancelled"
)

var orderTransitions = map[string][]string{
	StatusPendingConfirmation: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusInProgress, StatusCancelled},
	StatusInProgress:          {StatusCompleted, StatusCancelled},
	StatusCompleted:           {},
	StatusCancelled:           {},
}

func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

func CanTransition(from, to string) bool {
	for _, t := range orderTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

package engine

// IsWallCollision reports whether head has left the board.
func IsWallCollision(head Cell, grid Grid) bool {
	return !grid.Contains(head)
}

// IsSelfCollision reports whether the head overlaps any later segment.
func IsSelfCollision(body []Cell) bool {
	if len(body) < 2 {
		return false
	}
	head := body[0]
	for _, seg := range body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// IsTerminal reports a wall or self collision for the committed head.
func IsTerminal(body []Cell, grid Grid) bool {
	if len(body) == 0 {
		return false
	}
	return IsWallCollision(body[0], grid) || IsSelfCollision(body)
}

// classify returns the outcome of a terminal body, or OutcomeNone.
func classify(body []Cell, grid Grid) Outcome {
	switch {
	case len(body) == 0:
		return OutcomeNone
	case IsWallCollision(body[0], grid):
		return OutcomeWall
	case IsSelfCollision(body):
		return OutcomeSelf
	}
	return OutcomeNone
}

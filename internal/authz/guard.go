// Package authz holds the pure access decision logic for notes. It has no
// database or HTTP dependencies so the rules can be tested with plain
// in-memory fixtures.
package authz

import "github.com/internet-kid/notes-api/internal/models"

// Action is something an actor wants to do with a note.
type Action string

const (
	ActionView                Action = "view"
	ActionUpdate              Action = "update"
	ActionDelete              Action = "delete"
	ActionManageCollaborators Action = "manage_collaborators"
)

// Decision is the outcome of an access check.
type Decision struct {
	Allowed bool
	Reason  string
}

func permit() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Decide returns whether actorID may perform action on note. View and update
// are permitted to the owner and to collaborators; delete and collaborator
// management are owner-only. The note's Collaborations must be loaded by the
// caller.
func Decide(actorID uint64, note *models.Note, action Action) Decision {
	if note == nil {
		return deny("note does not exist")
	}

	isOwner := note.UserID == actorID

	switch action {
	case ActionView, ActionUpdate:
		if isOwner || isCollaborator(actorID, note) {
			return permit()
		}
		return deny("not authorized")
	case ActionDelete, ActionManageCollaborators:
		if isOwner {
			return permit()
		}
		return deny("not authorized")
	default:
		return deny("unknown action")
	}
}

// CanView reports whether the note is part of actorID's visible set.
func CanView(actorID uint64, note *models.Note) bool {
	return Decide(actorID, note, ActionView).Allowed
}

func isCollaborator(actorID uint64, note *models.Note) bool {
	for _, collab := range note.Collaborations {
		if collab.UserID == actorID {
			return true
		}
	}
	return false
}

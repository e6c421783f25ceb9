package service

import "github.com/guilhermerodrigues17/messages-backend/models"

// AuthorizeOwner reports whether the authenticated requester owns the
// resource. Equality is exact on the record ids.
func AuthorizeOwner(ownerID, requesterID models.UserID) bool {
	return ownerID == requesterID
}

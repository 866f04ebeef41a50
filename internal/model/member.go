package model

// Member is a team member tasks can be assigned to. Members are static
// reference data; the core never creates or deletes them.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

// FindMember returns the member with the given id, or nil.
func FindMember(members []Member, id string) *Member {
	for i := range members {
		if members[i].ID == id {
			return &members[i]
		}
	}
	return nil
}

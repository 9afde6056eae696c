package domain

// RoleAdmin is the role that receives every new join request notification.
const RoleAdmin = "admin"

// UserProfile mirrors a document in the users collection. Read-only from this
// system's perspective except for role grants, which append to Roles.
type UserProfile struct {
	ID          string   `firestore:"-" json:"id"`
	DisplayName string   `firestore:"displayName" json:"display_name"`
	Email       string   `firestore:"email" json:"email"`
	Roles       []string `firestore:"roles" json:"roles"`
	// LeadershipMinistries holds ministry display names, not IDs. The source
	// data is denormalized this way, so leadership matching is by name and
	// breaks if a ministry is renamed while profiles still carry the old name.
	LeadershipMinistries []string `firestore:"leadershipMinistries" json:"leadership_ministries"`
	LinkedMemberID       string   `firestore:"linkedMemberId" json:"linked_member_id"`
	LinkedProfileID      string   `firestore:"linkedProfileId" json:"linked_profile_id"`
	PushToken            string   `firestore:"pushToken" json:"push_token"`
}

// HasRole reports whether the profile carries the given role.
func (u *UserProfile) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
